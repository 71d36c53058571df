package finbook

import (
	"errors"
	"testing"
	"time"
)

func newTestBook(t *testing.T) *Book {
	t.Helper()
	book := NewBook()
	book.SetCurrency("EUR")

	add := func(id string, date Date, typ TransactionType, amount float64, description, category string) {
		t.Helper()
		if _, err := book.AppendTransaction(Transaction{
			ID:          ID(id),
			Date:        date,
			Type:        typ,
			Amount:      M(amount, "EUR"),
			Description: description,
			Category:    category,
		}); err != nil {
			t.Fatal(err)
		}
	}

	add("aaaaaaaa-0000-0000-0000-000000000001", NewDate(2025, time.January, 5), Income, 2500, "salary", "salary")
	add("aaaaaaaa-0000-0000-0000-000000000002", NewDate(2025, time.January, 10), Expense, 120, "groceries", "food")
	add("bbbbbbbb-0000-0000-0000-000000000003", NewDate(2025, time.January, 20), Expense, 60, "fuel", "transport")
	add("cccccccc-0000-0000-0000-000000000004", NewDate(2025, time.February, 3), Expense, 80, "groceries", "food")
	return book
}

func TestAppendTransactionSortsByDate(t *testing.T) {
	book := NewBook()
	// Append out of order.
	for _, day := range []int{20, 5, 10} {
		if _, err := book.AppendTransaction(NewTransaction(
			NewDate(2025, time.March, day), Expense, M(10, "EUR"), "x")); err != nil {
			t.Fatal(err)
		}
	}
	var days []int
	for _, tx := range book.Transactions() {
		days = append(days, tx.Date.Day())
	}
	if len(days) != 3 || days[0] != 5 || days[1] != 10 || days[2] != 20 {
		t.Errorf("transactions out of chronological order: %v", days)
	}
}

func TestAppendTransactionValidates(t *testing.T) {
	book := NewBook()
	tx, err := book.AppendTransaction(Transaction{
		Type:        Expense,
		Amount:      M(10, "EUR"),
		Description: "coffee",
	})
	if err != nil {
		t.Fatal(err)
	}
	if tx.ID == "" {
		t.Error("validated transaction must carry a fresh id")
	}
	if !tx.Date.IsToday() {
		t.Errorf("zero date must resolve to today, got %s", tx.Date)
	}
	if tx.Category != DefaultCategory || tx.Account != DefaultAccount || tx.Payment != Cash {
		t.Errorf("empty labels must resolve to defaults, got %q %q %q", tx.Category, tx.Account, tx.Payment)
	}

	if _, err := book.AppendTransaction(Transaction{Type: Expense, Amount: M(-5, "EUR"), Description: "x"}); err == nil {
		t.Error("negative amount must be rejected")
	}
	if _, err := book.AppendTransaction(Transaction{Type: Expense, Amount: M(5, "EUR")}); err == nil {
		t.Error("missing description must be rejected")
	}
	// Semicolons would corrupt the CSV tag list on a round trip.
	if _, err := book.AppendTransaction(Transaction{
		Type: Expense, Amount: M(5, "EUR"), Description: "x", Tags: []string{"a;b"},
	}); err == nil {
		t.Error("a tag containing a semicolon must be rejected")
	}
}

func TestFindByPrefix(t *testing.T) {
	book := newTestBook(t)

	// A valid unambiguous prefix resolves.
	tx, err := book.FindTransaction("bbbbbbbb")
	if err != nil {
		t.Fatal(err)
	}
	if tx.Description != "fuel" {
		t.Errorf("resolved the wrong transaction: %q", tx.Description)
	}

	// Too short.
	if _, err := book.FindTransaction("bbbb"); err == nil {
		t.Error("a prefix shorter than 8 characters must be rejected")
	}

	// Ambiguous.
	if _, err := book.FindTransaction("aaaaaaaa"); !errors.Is(err, ErrAmbiguousID) {
		t.Errorf("ambiguous prefix: got %v, want ErrAmbiguousID", err)
	}

	// Not found.
	if _, err := book.FindTransaction("dddddddd"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown prefix: got %v, want ErrNotFound", err)
	}
}

func TestDeleteTransaction(t *testing.T) {
	book := newTestBook(t)
	tx, err := book.DeleteTransaction("cccccccc")
	if err != nil {
		t.Fatal(err)
	}
	if tx.Date != NewDate(2025, time.February, 3) {
		t.Errorf("deleted the wrong transaction: %s", tx.Date)
	}
	if _, err := book.FindTransaction("cccccccc"); !errors.Is(err, ErrNotFound) {
		t.Error("deleted transaction must not be found anymore")
	}
}

func TestTransactionFilters(t *testing.T) {
	book := newTestBook(t)

	count := func(filters ...func(Transaction) bool) int {
		n := 0
		for range book.Transactions(filters...) {
			n++
		}
		return n
	}

	if got := count(ByCategory("food")); got != 2 {
		t.Errorf("ByCategory(food) = %d, want 2", got)
	}
	if got := count(ByType(Expense), InRange(MonthRange(2025, time.January))); got != 2 {
		t.Errorf("expenses in January = %d, want 2", got)
	}
	if got := count(ByText("GROCER")); got != 2 {
		t.Errorf("ByText is case-insensitive, got %d, want 2", got)
	}
	if got := count(ByAmountRange(M(100, "EUR"), M(200, "EUR"))); got != 1 {
		t.Errorf("ByAmountRange = %d, want 1", got)
	}
}

func TestBudgetScopeUniqueness(t *testing.T) {
	book := NewBook()
	if _, err := book.AppendBudget(NewBudget("august", Monthly, 2025, time.August)); err != nil {
		t.Fatal(err)
	}
	// Same scope, different name: rejected.
	if _, err := book.AppendBudget(NewBudget("other", Monthly, 2025, time.August)); err == nil {
		t.Error("a second budget on the same period scope must be rejected")
	}
	// Different month: accepted.
	if _, err := book.AppendBudget(NewBudget("september", Monthly, 2025, time.September)); err != nil {
		t.Errorf("a budget on a different scope must be accepted: %v", err)
	}
	// A yearly budget does not clash with monthly ones.
	if _, err := book.AppendBudget(NewBudget("year", Yearly, 2025, 0)); err != nil {
		t.Errorf("a yearly budget must not clash with monthly ones: %v", err)
	}
}

func TestAllocate(t *testing.T) {
	book := NewBook()
	budget, err := book.AppendBudget(NewBudget("august", Monthly, 2025, time.August))
	if err != nil {
		t.Fatal(err)
	}
	prefix := budget.ID.Short()

	if _, err := book.Allocate(prefix, "food", M(400, "EUR"), ""); err != nil {
		t.Fatal(err)
	}
	// Same category twice: rejected.
	if _, err := book.Allocate(prefix, "food", M(100, "EUR"), ""); err == nil {
		t.Error("allocating the same category twice must be rejected")
	}
	// Non-positive amount: rejected.
	if _, err := book.Allocate(prefix, "transport", M(0, "EUR"), ""); err == nil {
		t.Error("a zero allocation must be rejected")
	}

	budget, err = book.FindBudget(prefix)
	if err != nil {
		t.Fatal(err)
	}
	if !budget.TotalAllocated().Equal(M(400, "EUR")) {
		t.Errorf("TotalAllocated = %s, want 400 EUR", budget.TotalAllocated())
	}
}

func TestBudgetFor(t *testing.T) {
	book := NewBook()
	if _, err := book.AppendBudget(NewBudget("august", Monthly, 2025, time.August)); err != nil {
		t.Fatal(err)
	}
	if _, ok := book.BudgetFor(2025, 8); !ok {
		t.Error("BudgetFor(2025, 8) must find the august budget")
	}
	if _, ok := book.BudgetFor(2025, 9); ok {
		t.Error("BudgetFor(2025, 9) must find nothing")
	}
	if _, ok := book.BudgetForYear(2025); ok {
		t.Error("BudgetForYear must not return monthly budgets")
	}
}

func TestRevalue(t *testing.T) {
	book := NewBook()
	inv, err := book.AppendInvestment(NewInvestment("World ETF", Fund, M(5000, "EUR"), NewDate(2025, time.January, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Current.Equal(inv.Initial) {
		t.Error("a fresh investment must be valued at its initial amount")
	}

	on := NewDate(2025, time.June, 1)
	inv, err = book.Revalue(inv.ID.Short(), M(5400, "EUR"), on)
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Current.Equal(M(5400, "EUR")) || inv.ValuedOn != on {
		t.Errorf("Revalue = %s on %s, want 5400 EUR on %s", inv.Current, inv.ValuedOn, on)
	}
	if !inv.Gain().Equal(M(400, "EUR")) {
		t.Errorf("Gain = %s, want 400 EUR", inv.Gain())
	}

	// Non-positive values are rejected.
	if _, err := book.Revalue(inv.ID.Short(), M(0, "EUR"), on); err == nil {
		t.Error("a zero revaluation must be rejected")
	}
}

func TestBookRejectsForeignCurrency(t *testing.T) {
	book := NewBook() // reporting currency defaults to EUR
	if _, err := book.AppendTransaction(NewTransaction(
		NewDate(2025, time.March, 1), Expense, M(10, "EUR"), "coffee")); err != nil {
		t.Fatal(err)
	}

	// A transaction in another currency cannot be aggregated with the book
	// and must be rejected at append time.
	if _, err := book.AppendTransaction(NewTransaction(
		NewDate(2025, time.March, 2), Expense, M(10, "USD"), "coffee abroad")); err == nil {
		t.Fatal("a USD transaction must be rejected by an EUR book")
	}

	// The book stays aggregable: summaries never see a mixed currency.
	s := NewSummary(book, Range{})
	if s.Count != 1 || !s.Expense.Equal(M(10, "EUR")) {
		t.Errorf("summary = %+v", s)
	}

	if _, err := book.AppendInvestment(NewInvestment(
		"Foreign", Stock, M(1000, "USD"), NewDate(2025, time.January, 1))); err == nil {
		t.Error("a USD investment must be rejected by an EUR book")
	}

	budget, err := book.AppendBudget(NewBudget("march", Monthly, 2025, time.March))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := book.Allocate(budget.ID.Short(), "food", M(100, "USD"), ""); err == nil {
		t.Error("a USD allocation must be rejected by an EUR book")
	}

	inv, err := book.AppendInvestment(NewInvestment(
		"World ETF", Fund, M(5000, "EUR"), NewDate(2025, time.January, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := book.Revalue(inv.ID.Short(), M(5500, "USD"), Date{}); err == nil {
		t.Error("a USD revaluation must be rejected by an EUR book")
	}
}

func TestCategoriesAndAccounts(t *testing.T) {
	book := newTestBook(t)
	var categories []string
	for c := range book.Categories() {
		categories = append(categories, c)
	}
	want := []string{"food", "salary", "transport"}
	if len(categories) != len(want) {
		t.Fatalf("Categories = %v, want %v", categories, want)
	}
	for i := range want {
		if categories[i] != want[i] {
			t.Errorf("Categories[%d] = %q, want %q", i, categories[i], want[i])
		}
	}
}
