package finbook

import "time"

// MonthlyReport is the full picture of a month: transaction summary, the
// month's budget status when one exists, portfolio valuation and the trend
// against the previous month.
type MonthlyReport struct {
	Year      int
	Month     time.Month
	Summary   *Summary
	Budget    *BudgetReport // nil when no budget covers the month
	Portfolio *PortfolioReport
	Trend     *Trend
}

// NewMonthlyReport builds the report for (year, month).
func NewMonthlyReport(book *Book, year int, month time.Month) *MonthlyReport {
	report := &MonthlyReport{
		Year:      year,
		Month:     month,
		Summary:   NewSummary(book, MonthRange(year, month)),
		Portfolio: NewPortfolioReport(book, ""),
	}
	if budget, ok := book.BudgetFor(year, int(month)); ok {
		report.Budget = NewBudgetReport(book, budget)
	}
	previous := MonthRange(year, month).From.AddMonth(-1)
	report.Trend = NewTrend(
		NewSummary(book, MonthRange(previous.Year(), previous.Month())),
		report.Summary,
	)
	return report
}

// YearlyReport is the full picture of a year: annual summary, the monthly
// breakdown, the year's budget status when one exists, portfolio valuation
// and growth against the previous year.
type YearlyReport struct {
	Year      int
	Summary   *Summary
	Months    [12]*Summary // January first
	Budget    *BudgetReport
	Portfolio *PortfolioReport
	Growth    *Trend // against the previous year
}

// NewYearlyReport builds the report for a year.
func NewYearlyReport(book *Book, year int) *YearlyReport {
	report := &YearlyReport{
		Year:      year,
		Summary:   NewSummary(book, YearRange(year)),
		Portfolio: NewPortfolioReport(book, ""),
	}
	for m := time.January; m <= time.December; m++ {
		report.Months[m-1] = NewSummary(book, MonthRange(year, m))
	}
	if budget, ok := book.BudgetForYear(year); ok {
		report.Budget = NewBudgetReport(book, budget)
	}
	report.Growth = NewTrend(NewSummary(book, YearRange(year-1)), report.Summary)
	return report
}
