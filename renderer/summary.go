package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a period summary to a markdown string.
func SummaryMarkdown(s *finbook.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary %s", rangeLabel(s.Range)))

	doc.CustomTable(md.TableSet{
		Header: []string{"Income", "Expenses", "Net", "Transactions", "Average"},
		Rows: [][]string{{
			s.Income.String(),
			s.Expense.String(),
			s.Net.SignedString(),
			fmt.Sprintf("%d", s.Count),
			s.Average.String(),
		}},
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	if len(s.TopCategories) > 0 {
		doc.H2("Top Expense Categories")
		rows := make([][]string, 0, len(s.TopCategories))
		for _, c := range s.TopCategories {
			rows = append(rows, []string{c.Category, c.Amount.String()})
		}
		doc.CustomTable(md.TableSet{
			Header: []string{"Category", "Spent"},
			Rows:   rows,
		}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})
	}

	return doc.String()
}

// TrendMarkdown renders the income and expense change against the previous
// period.
func TrendMarkdown(t *finbook.Trend) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("Trend vs %s", rangeLabel(t.Previous.Range)))
	doc.CustomTable(md.TableSet{
		Header: []string{"", "Previous", "Current", "Change"},
		Rows: [][]string{
			{"Income", t.Previous.Income.String(), t.Current.Income.String(), perf(t.IncomeChange)},
			{"Expenses", t.Previous.Expense.String(), t.Current.Expense.String(), perf(t.ExpenseChange)},
		},
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	return doc.String()
}
