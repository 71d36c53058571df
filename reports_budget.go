package finbook

// BudgetLine is the budget-vs-actual status of one category allocation.
type BudgetLine struct {
	Category   string
	Allocated  Money
	Spent      Money
	Remaining  Money
	Used       Percent
	OverBudget bool
}

// BudgetReport compares a budget's allocations against the actual expenses
// recorded in its period range.
type BudgetReport struct {
	Budget         Budget
	Range          Range
	Lines          []BudgetLine
	TotalAllocated Money
	TotalSpent     Money
	TotalRemaining Money
	Used           Percent
	OverBudget     bool
}

// NewBudgetReport analyses the budget against the book's expenses.
// Only expense transactions within the budget's period range count as spend;
// allocations keep the order they were added in.
func NewBudgetReport(book *Book, budget Budget) *BudgetReport {
	r := budget.Range()
	cur := book.Currency()
	report := &BudgetReport{
		Budget:         budget,
		Range:          r,
		TotalAllocated: M(0, cur),
		TotalSpent:     M(0, cur),
	}

	// One pass over the period's expenses, then per-allocation math.
	spent := make(map[string]Money)
	for _, tx := range book.Transactions(InRange(r), ByType(Expense)) {
		spent[tx.Category] = spent[tx.Category].Add(tx.Amount)
	}

	for _, alloc := range budget.Categories {
		s := spent[alloc.Category]
		if s.IsZero() {
			s = M(0, cur)
		}
		line := BudgetLine{
			Category:   alloc.Category,
			Allocated:  alloc.Amount,
			Spent:      s,
			Remaining:  alloc.Amount.Sub(s),
			Used:       s.PercentOf(alloc.Amount),
			OverBudget: s.GreaterThan(alloc.Amount),
		}
		report.Lines = append(report.Lines, line)
		report.TotalAllocated = report.TotalAllocated.Add(line.Allocated)
		report.TotalSpent = report.TotalSpent.Add(line.Spent)
	}

	report.TotalRemaining = report.TotalAllocated.Sub(report.TotalSpent)
	report.Used = report.TotalSpent.PercentOf(report.TotalAllocated)
	report.OverBudget = report.TotalSpent.GreaterThan(report.TotalAllocated)
	return report
}
