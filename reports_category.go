package finbook

import "sort"

// CategoryLine aggregates the activity of a single category over a range.
type CategoryLine struct {
	Category string
	Income   Money
	Expense  Money
	Net      Money
	Count    int
	Average  Money
}

// CategoryReport is the per-category breakdown of transactions over a range.
// Lines are sorted by expense total, heaviest first.
type CategoryReport struct {
	Range        Range
	Filter       string // optional single-category filter
	Lines        []CategoryLine
	TotalIncome  Money
	TotalExpense Money
	Count        int
}

// NewCategoryReport aggregates transactions per category over the range.
// A non-empty category restricts the report to that single category.
func NewCategoryReport(book *Book, r Range, category string) *CategoryReport {
	cur := book.Currency()
	report := &CategoryReport{
		Range:        r,
		Filter:       category,
		TotalIncome:  M(0, cur),
		TotalExpense: M(0, cur),
	}

	filters := []func(Transaction) bool{InRange(r)}
	if category != "" {
		filters = append(filters, ByCategory(category))
	}

	lines := make(map[string]*CategoryLine)
	for _, tx := range book.Transactions(filters...) {
		line, ok := lines[tx.Category]
		if !ok {
			line = &CategoryLine{Category: tx.Category}
			lines[tx.Category] = line
		}
		line.Count++
		switch tx.Type {
		case Income:
			line.Income = line.Income.Add(tx.Amount)
			report.TotalIncome = report.TotalIncome.Add(tx.Amount)
		case Expense:
			line.Expense = line.Expense.Add(tx.Amount)
			report.TotalExpense = report.TotalExpense.Add(tx.Amount)
		}
		report.Count++
	}

	for _, line := range lines {
		line.Net = line.Income.Sub(line.Expense)
		line.Average = line.Income.Add(line.Expense).Div(Q(line.Count))
		report.Lines = append(report.Lines, *line)
	}
	sort.Slice(report.Lines, func(i, j int) bool {
		a, b := report.Lines[i], report.Lines[j]
		if !a.Expense.Equal(b.Expense) {
			return a.Expense.GreaterThan(b.Expense)
		}
		return a.Category < b.Category
	})
	return report
}
