package finbook

import (
	"fmt"
	"strings"
	"time"
)

// BudgetCategory is a single allocation inside a budget: a category name and
// the amount allocated to it for the budget's period.
type BudgetCategory struct {
	Category    string
	Amount      Money
	Description string
}

// MarshalJSON implements json.Marshaler with a canonical field order.
func (c BudgetCategory) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", c.Category)
	w.EmbedFrom(c.Amount)
	w.Optional("description", c.Description)
	return w.MarshalJSON()
}

// Budget is a set of category allocations scoped to a calendar period:
// a (year, month) pair for monthly budgets, a year for yearly ones.
// A book holds at most one budget per period scope.
type Budget struct {
	ID          ID
	Name        string
	Period      Period // Monthly or Yearly
	Year        int
	Month       time.Month // set for monthly budgets only
	Description string
	Categories  []BudgetCategory
}

// NewBudget creates a budget with a fresh identifier and no allocations.
func NewBudget(name string, period Period, year int, month time.Month) Budget {
	return Budget{
		ID:     NewID(),
		Name:   name,
		Period: period,
		Year:   year,
		Month:  month,
	}
}

// Validate checks the budget scope for correctness.
func (b Budget) Validate() (Budget, error) {
	if b.ID == "" {
		b.ID = NewID()
	}
	if strings.TrimSpace(b.Name) == "" {
		return b, fmt.Errorf("budget name is missing")
	}
	switch b.Period {
	case Monthly:
		if b.Month < time.January || b.Month > time.December {
			return b, fmt.Errorf("monthly budget requires a month between 1 and 12, got %d", b.Month)
		}
	case Yearly:
		if b.Month != 0 {
			return b, fmt.Errorf("yearly budget must not have a month, got %s", b.Month)
		}
	default:
		return b, fmt.Errorf("budget period must be monthly or yearly, got %q", b.Period)
	}
	if b.Year < 1900 || b.Year > 2200 {
		return b, fmt.Errorf("budget year %d is out of range", b.Year)
	}
	return b, nil
}

// Range returns the calendar range the budget applies to.
func (b Budget) Range() Range {
	if b.Period == Monthly {
		return MonthRange(b.Year, b.Month)
	}
	return YearRange(b.Year)
}

// ScopeString names the budget's period scope (e.g. "2025-January" or "2025").
func (b Budget) ScopeString() string {
	return b.Range().Identifier()
}

// SameScope reports whether two budgets cover the same period scope.
func (b Budget) SameScope(o Budget) bool {
	return b.Period == o.Period && b.Year == o.Year && b.Month == o.Month
}

// Allocation returns the allocation for a category, if any.
func (b Budget) Allocation(category string) (BudgetCategory, bool) {
	for _, c := range b.Categories {
		if c.Category == category {
			return c, true
		}
	}
	return BudgetCategory{}, false
}

// Allocate adds a category allocation to the budget. Each category can be
// allocated at most once per budget.
func (b *Budget) Allocate(category string, amount Money, description string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("allocation category is missing")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("allocation amount must be positive, got %s", amount)
	}
	if _, exists := b.Allocation(category); exists {
		return fmt.Errorf("category %q is already allocated in budget %q", category, b.Name)
	}
	b.Categories = append(b.Categories, BudgetCategory{
		Category:    category,
		Amount:      amount,
		Description: description,
	})
	return nil
}

// TotalAllocated sums all category allocations.
func (b Budget) TotalAllocated() Money {
	var total Money
	for _, c := range b.Categories {
		total = total.Add(c.Amount)
	}
	return total
}

// MarshalJSON implements json.Marshaler with a canonical field order.
func (b Budget) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordBudget)
	w.Append("id", b.ID)
	w.Append("name", b.Name)
	w.Append("period", b.Period.String())
	w.Append("year", b.Year)
	if b.Period == Monthly {
		w.Append("month", int(b.Month))
	}
	w.Optional("description", b.Description)
	w.Optional("categories", b.Categories)
	return w.MarshalJSON()
}
