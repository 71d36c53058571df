package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/finbook"
)

func testBook(t *testing.T) *finbook.Book {
	t.Helper()
	book := finbook.NewBook()
	book.SetCurrency("EUR")

	add := func(date finbook.Date, typ finbook.TransactionType, amount float64, description, category string) {
		t.Helper()
		if _, err := book.AppendTransaction(finbook.NewTransaction(
			date, typ, finbook.M(amount, "EUR"), description).
			WithDetails(category, "", "", nil, "")); err != nil {
			t.Fatal(err)
		}
	}
	add(finbook.NewDate(2025, time.January, 5), finbook.Income, 2500, "salary", "salary")
	add(finbook.NewDate(2025, time.January, 10), finbook.Expense, 120, "groceries", "food")
	return book
}

func TestSummaryMarkdown(t *testing.T) {
	book := testBook(t)
	md := SummaryMarkdown(finbook.NewSummary(book, finbook.MonthRange(2025, time.January)))

	for _, want := range []string{"# Summary 2025-January", "Income", "Top Expense Categories", "food"} {
		if !strings.Contains(md, want) {
			t.Errorf("summary misses %q:\n%s", want, md)
		}
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	book := testBook(t)
	var transactions []finbook.Transaction
	for _, tx := range book.Transactions() {
		transactions = append(transactions, tx)
	}

	md := TransactionsMarkdown("Transactions", transactions)
	if !strings.Contains(md, "groceries") || !strings.Contains(md, "| ID |") {
		t.Errorf("table misses content:\n%s", md)
	}
	// Ids are displayed short.
	if !strings.Contains(md, transactions[0].ID.Short()) {
		t.Error("table must display short ids")
	}

	if md := TransactionsMarkdown("Transactions", nil); !strings.Contains(md, "No transactions.") {
		t.Errorf("empty table = %q", md)
	}
}

func TestBudgetMarkdownFlagsOverspend(t *testing.T) {
	book := testBook(t)
	budget := finbook.NewBudget("january", finbook.Monthly, 2025, time.January)
	if err := budget.Allocate("food", finbook.M(100, "EUR"), ""); err != nil {
		t.Fatal(err)
	}
	if _, err := book.AppendBudget(budget); err != nil {
		t.Fatal(err)
	}

	md := BudgetMarkdown(finbook.NewBudgetReport(book, budget))
	if !strings.Contains(md, "⚠ food") {
		t.Errorf("over-budget category not flagged:\n%s", md)
	}
	if !strings.Contains(md, "120%") {
		t.Errorf("usage percent missing:\n%s", md)
	}
}

func TestCashFlowMarkdown(t *testing.T) {
	book := testBook(t)
	flow := finbook.NewCashFlow(book, finbook.MonthRange(2025, time.January), finbook.Weekly)
	md := CashFlowMarkdown(flow)
	if !strings.Contains(md, "# Cash Flow 2025-January, by week") {
		t.Errorf("title missing:\n%s", md)
	}
	if !strings.Contains(md, "Balance") {
		t.Errorf("running balance column missing:\n%s", md)
	}
}

func TestPortfolioMarkdown(t *testing.T) {
	book := testBook(t)
	inv, err := book.AppendInvestment(finbook.NewInvestment(
		"World ETF", finbook.Fund, finbook.M(5000, "EUR"), finbook.NewDate(2024, time.June, 1)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := book.Revalue(inv.ID.Short(), finbook.M(5500, "EUR"), finbook.NewDate(2025, time.January, 1)); err != nil {
		t.Fatal(err)
	}

	md := PortfolioMarkdown(finbook.NewPortfolioReport(book, ""))
	for _, want := range []string{"# Portfolio", "World ETF", "+10.0%"} {
		if !strings.Contains(md, want) {
			t.Errorf("portfolio misses %q:\n%s", want, md)
		}
	}

	perf := finbook.NewInvestmentPerformance(inv, finbook.NewDate(2025, time.January, 1))
	md = PerformanceMarkdown(perf)
	if !strings.Contains(md, "Annualized") || !strings.Contains(md, "days") {
		t.Errorf("performance misses content:\n%s", md)
	}
}

func TestMonthlyMarkdown(t *testing.T) {
	book := testBook(t)
	md := MonthlyMarkdown(finbook.NewMonthlyReport(book, 2025, time.January))
	for _, want := range []string{"# Monthly Report January 2025", "Trend vs 2024-December"} {
		if !strings.Contains(md, want) {
			t.Errorf("monthly report misses %q:\n%s", want, md)
		}
	}
}
