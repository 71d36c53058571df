package finbook

import "sort"

// CategoryTotal is a category name with an aggregated amount.
type CategoryTotal struct {
	Category string
	Amount   Money
}

// Summary is the period rollup of transactions: totals by type, net amount,
// and the heaviest expense categories.
type Summary struct {
	Range         Range
	Income        Money
	Expense       Money
	Net           Money
	Count         int
	Average       Money           // average transaction amount, incomes and expenses together
	TopCategories []CategoryTotal // top expense categories, heaviest first
}

// topCategoriesLimit bounds the number of expense categories reported in a
// summary.
const topCategoriesLimit = 5

// NewSummary aggregates all transactions of the book within the range.
// The zero range covers the whole book.
func NewSummary(book *Book, r Range) *Summary {
	cur := book.Currency()
	s := &Summary{
		Range:   r,
		Income:  M(0, cur),
		Expense: M(0, cur),
	}

	var total Money
	byCategory := make(map[string]Money)
	for _, tx := range book.Transactions(InRange(r)) {
		s.Count++
		total = total.Add(tx.Amount)
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount)
			byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
		}
	}

	s.Net = s.Income.Sub(s.Expense)
	if s.Count > 0 {
		s.Average = total.Div(Q(s.Count))
	} else {
		s.Average = M(0, cur)
	}

	for category, amount := range byCategory {
		s.TopCategories = append(s.TopCategories, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(s.TopCategories, func(i, j int) bool {
		a, b := s.TopCategories[i], s.TopCategories[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})
	if len(s.TopCategories) > topCategoriesLimit {
		s.TopCategories = s.TopCategories[:topCategoriesLimit]
	}
	return s
}

// Trend compares two consecutive period summaries and reports the relative
// change of income and expenses.
type Trend struct {
	Previous      *Summary
	Current       *Summary
	IncomeChange  Percent
	ExpenseChange Percent
}

// NewTrend computes the change from the previous to the current summary.
func NewTrend(previous, current *Summary) *Trend {
	return &Trend{
		Previous:      previous,
		Current:       current,
		IncomeChange:  PercentChange(previous.Income, current.Income),
		ExpenseChange: PercentChange(previous.Expense, current.Expense),
	}
}
