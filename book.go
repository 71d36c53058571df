package finbook

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

// DefaultCurrency is the reporting currency of a book that never declared one.
const DefaultCurrency = "EUR"

// Book is the in-memory store of all records: transactions, budgets and
// investments. Transactions are always kept in chronological order.
//
// A Book is loaded from and saved to a single JSONL file; it is not safe for
// concurrent use, which is fine for a single-user, single-process tool.
type Book struct {
	name         string
	currency     string
	transactions []Transaction
	budgets      []Budget
	investments  []Investment
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{}
}

// Name returns the book's name, derived from its file path by the loader.
func (b *Book) Name() string { return b.name }

// SetName sets the book's name.
func (b *Book) SetName(name string) { b.name = name }

// Currency returns the book's reporting currency.
func (b *Book) Currency() string {
	if b.currency == "" {
		return DefaultCurrency
	}
	return b.currency
}

// SetCurrency sets the book's reporting currency.
func (b *Book) SetCurrency(cur string) { b.currency = cur }

// checkCurrency rejects an amount whose currency differs from the book's
// reporting currency. Reports aggregate amounts across records, so a book
// holds a single currency; the empty currency is weak and always accepted.
func (b *Book) checkCurrency(m Money) error {
	if m.Currency() != "" && m.Currency() != b.Currency() {
		return fmt.Errorf("currency %s does not match the book currency %s", m.Currency(), b.Currency())
	}
	return nil
}

// stableSort sorts the transactions by date. The sort is stable, meaning
// transactions on the same day maintain their original relative order.
func (b *Book) stableSort() {
	sort.SliceStable(b.transactions, func(i, j int) bool {
		return b.transactions[i].Date.Before(b.transactions[j].Date)
	})
}

// AppendTransaction validates a transaction and appends it to the book,
// maintaining the chronological order. It returns the validated transaction.
func (b *Book) AppendTransaction(tx Transaction) (Transaction, error) {
	tx, err := tx.Validate()
	if err != nil {
		return tx, fmt.Errorf("invalid transaction: %w", err)
	}
	if err := b.checkCurrency(tx.Amount); err != nil {
		return tx, fmt.Errorf("invalid transaction: %w", err)
	}
	b.transactions = append(b.transactions, tx)
	b.stableSort()
	return tx, nil
}

// Transactions returns an iterator over transactions accepted by every given
// predicate, in chronological order. With no predicate it yields them all.
func (b *Book) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range b.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// FindTransaction resolves an ID prefix (at least 8 characters) to exactly
// one transaction.
func (b *Book) FindTransaction(prefix string) (Transaction, error) {
	i, err := findByPrefix(prefix, b.transactions, func(t Transaction) ID { return t.ID })
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %q: %w", prefix, err)
	}
	return b.transactions[i], nil
}

// DeleteTransaction removes the transaction matching the ID prefix and
// returns it.
func (b *Book) DeleteTransaction(prefix string) (Transaction, error) {
	i, err := findByPrefix(prefix, b.transactions, func(t Transaction) ID { return t.ID })
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %q: %w", prefix, err)
	}
	tx := b.transactions[i]
	b.transactions = slices.Delete(b.transactions, i, i+1)
	return tx, nil
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date for an empty book.
func (b *Book) OldestTransactionDate() Date {
	if len(b.transactions) == 0 {
		return Date{}
	}
	return b.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction, or the
// zero date for an empty book.
func (b *Book) NewestTransactionDate() Date {
	if len(b.transactions) == 0 {
		return Date{}
	}
	return b.transactions[len(b.transactions)-1].Date
}

// Categories iterates over all distinct transaction categories, sorted.
func (b *Book) Categories() iter.Seq[string] {
	return b.distinct(func(tx Transaction) string { return tx.Category })
}

// Accounts iterates over all distinct transaction accounts, sorted.
func (b *Book) Accounts() iter.Seq[string] {
	return b.distinct(func(tx Transaction) string { return tx.Account })
}

func (b *Book) distinct(key func(Transaction) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		for _, tx := range b.transactions {
			visited[key(tx)] = struct{}{}
		}
		keys := make([]string, 0, len(visited))
		for k := range visited {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

// AppendBudget validates a budget and appends it to the book. At most one
// budget may exist per period scope.
func (b *Book) AppendBudget(budget Budget) (Budget, error) {
	budget, err := budget.Validate()
	if err != nil {
		return budget, fmt.Errorf("invalid budget: %w", err)
	}
	for _, existing := range b.budgets {
		if existing.SameScope(budget) {
			return budget, fmt.Errorf("a budget already exists for %s: %q (%s)",
				budget.ScopeString(), existing.Name, existing.ID.Short())
		}
	}
	b.budgets = append(b.budgets, budget)
	b.sortBudgets()
	return budget, nil
}

// sortBudgets keeps budgets ordered by period scope, most recent first.
func (b *Book) sortBudgets() {
	sort.SliceStable(b.budgets, func(i, j int) bool {
		bi, bj := b.budgets[i], b.budgets[j]
		if bi.Year != bj.Year {
			return bi.Year > bj.Year
		}
		return bi.Month > bj.Month
	})
}

// Budgets iterates over all budgets, most recent period scope first.
func (b *Book) Budgets() iter.Seq[Budget] {
	return func(yield func(Budget) bool) {
		for _, budget := range b.budgets {
			if !yield(budget) {
				return
			}
		}
	}
}

// FindBudget resolves an ID prefix to exactly one budget.
func (b *Book) FindBudget(prefix string) (Budget, error) {
	i, err := findByPrefix(prefix, b.budgets, func(bg Budget) ID { return bg.ID })
	if err != nil {
		return Budget{}, fmt.Errorf("budget %q: %w", prefix, err)
	}
	return b.budgets[i], nil
}

// DeleteBudget removes the budget matching the ID prefix, along with the
// allocations it owns, and returns it.
func (b *Book) DeleteBudget(prefix string) (Budget, error) {
	i, err := findByPrefix(prefix, b.budgets, func(bg Budget) ID { return bg.ID })
	if err != nil {
		return Budget{}, fmt.Errorf("budget %q: %w", prefix, err)
	}
	budget := b.budgets[i]
	b.budgets = slices.Delete(b.budgets, i, i+1)
	return budget, nil
}

// Allocate adds a category allocation to the budget matching the ID prefix.
func (b *Book) Allocate(prefix, category string, amount Money, description string) (Budget, error) {
	i, err := findByPrefix(prefix, b.budgets, func(bg Budget) ID { return bg.ID })
	if err != nil {
		return Budget{}, fmt.Errorf("budget %q: %w", prefix, err)
	}
	if err := b.checkCurrency(amount); err != nil {
		return Budget{}, fmt.Errorf("invalid allocation: %w", err)
	}
	if err := b.budgets[i].Allocate(category, amount, description); err != nil {
		return Budget{}, err
	}
	return b.budgets[i], nil
}

// BudgetFor returns the monthly budget covering (year, month), if any.
func (b *Book) BudgetFor(year, month int) (Budget, bool) {
	for _, budget := range b.budgets {
		if budget.Period == Monthly && budget.Year == year && int(budget.Month) == month {
			return budget, true
		}
	}
	return Budget{}, false
}

// BudgetForYear returns the yearly budget covering the year, if any.
func (b *Book) BudgetForYear(year int) (Budget, bool) {
	for _, budget := range b.budgets {
		if budget.Period == Yearly && budget.Year == year {
			return budget, true
		}
	}
	return Budget{}, false
}

// AppendInvestment validates an investment and appends it to the book.
func (b *Book) AppendInvestment(inv Investment) (Investment, error) {
	inv, err := inv.Validate()
	if err != nil {
		return inv, fmt.Errorf("invalid investment: %w", err)
	}
	for _, amount := range []Money{inv.Initial, inv.PurchasePrice, inv.Current} {
		if err := b.checkCurrency(amount); err != nil {
			return inv, fmt.Errorf("invalid investment: %w", err)
		}
	}
	b.investments = append(b.investments, inv)
	b.sortInvestments()
	return inv, nil
}

// sortInvestments keeps investments ordered by purchase date, most recent first.
func (b *Book) sortInvestments() {
	sort.SliceStable(b.investments, func(i, j int) bool {
		return b.investments[i].PurchaseDate.After(b.investments[j].PurchaseDate)
	})
}

// Investments iterates over investments, most recently purchased first.
// The zero InvestmentType yields them all.
func (b *Book) Investments(typ InvestmentType) iter.Seq[Investment] {
	return func(yield func(Investment) bool) {
		for _, inv := range b.investments {
			if typ != "" && inv.Type != typ {
				continue
			}
			if !yield(inv) {
				return
			}
		}
	}
}

// FindInvestment resolves an ID prefix to exactly one investment.
func (b *Book) FindInvestment(prefix string) (Investment, error) {
	i, err := findByPrefix(prefix, b.investments, func(v Investment) ID { return v.ID })
	if err != nil {
		return Investment{}, fmt.Errorf("investment %q: %w", prefix, err)
	}
	return b.investments[i], nil
}

// DeleteInvestment removes the investment matching the ID prefix and returns it.
func (b *Book) DeleteInvestment(prefix string) (Investment, error) {
	i, err := findByPrefix(prefix, b.investments, func(v Investment) ID { return v.ID })
	if err != nil {
		return Investment{}, fmt.Errorf("investment %q: %w", prefix, err)
	}
	inv := b.investments[i]
	b.investments = slices.Delete(b.investments, i, i+1)
	return inv, nil
}

// Revalue sets the current value of the investment matching the ID prefix.
// This is the only way an investment's value changes (no market data feed).
func (b *Book) Revalue(prefix string, value Money, on Date) (Investment, error) {
	i, err := findByPrefix(prefix, b.investments, func(v Investment) ID { return v.ID })
	if err != nil {
		return Investment{}, fmt.Errorf("investment %q: %w", prefix, err)
	}
	if !value.IsPositive() {
		return Investment{}, fmt.Errorf("current value must be positive, got %s", value)
	}
	if err := b.checkCurrency(value); err != nil {
		return Investment{}, fmt.Errorf("invalid revaluation: %w", err)
	}
	if on.IsZero() {
		on = Today()
	}
	b.investments[i].Current = value
	b.investments[i].ValuedOn = on
	return b.investments[i], nil
}

// findByPrefix resolves a user-supplied ID prefix to the index of the single
// matching record.
func findByPrefix[T any](prefix string, items []T, id func(T) ID) (int, error) {
	prefix = strings.TrimSpace(prefix)
	if err := checkPrefix(prefix); err != nil {
		return 0, err
	}
	found := -1
	for i, item := range items {
		if !id(item).HasPrefix(prefix) {
			continue
		}
		if found >= 0 {
			return 0, ErrAmbiguousID
		}
		found = i
	}
	if found < 0 {
		return 0, ErrNotFound
	}
	return found, nil
}
