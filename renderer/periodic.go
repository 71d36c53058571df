package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/finbook"
)

// MonthlyMarkdown renders the full monthly report: summary, budget status,
// portfolio valuation and trend against the previous month.
func MonthlyMarkdown(r *finbook.MonthlyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Report %s %d\n\n", r.Month, r.Year)

	b.WriteString(SummaryMarkdown(r.Summary))
	b.WriteString(TrendMarkdown(r.Trend))
	if r.Budget != nil {
		b.WriteString(BudgetMarkdown(r.Budget))
	}
	if r.Portfolio.Count > 0 {
		b.WriteString(PortfolioMarkdown(r.Portfolio))
	}
	return b.String()
}

// YearlyMarkdown renders the full yearly report: annual summary, monthly
// breakdown, budget status, portfolio valuation and growth against the
// previous year.
func YearlyMarkdown(r *finbook.YearlyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Yearly Report %d\n\n", r.Year)

	b.WriteString(SummaryMarkdown(r.Summary))

	fmt.Fprintf(&b, "\n## Monthly Breakdown\n\n")
	fmt.Fprintln(&b, "| Month | Income | Expenses | Net |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for i, s := range r.Months {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			time.Month(i+1), s.Income, s.Expense, s.Net.SignedString())
	}
	fmt.Fprintln(&b)

	b.WriteString(TrendMarkdown(r.Growth))
	if r.Budget != nil {
		b.WriteString(BudgetMarkdown(r.Budget))
	}
	if r.Portfolio.Count > 0 {
		b.WriteString(PortfolioMarkdown(r.Portfolio))
	}
	return b.String()
}
