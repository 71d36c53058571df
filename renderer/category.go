package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// CategoryMarkdown renders the per-category breakdown to a markdown string.
func CategoryMarkdown(r *finbook.CategoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("Categories %s", rangeLabel(r.Range))
	if r.Filter != "" {
		title = fmt.Sprintf("Category %q %s", r.Filter, rangeLabel(r.Range))
	}
	doc.H1(title)

	if len(r.Lines) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		rows = append(rows, []string{
			line.Category,
			line.Income.String(),
			line.Expense.String(),
			line.Net.SignedString(),
			fmt.Sprintf("%d", line.Count),
			line.Average.String(),
		})
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Category", "Income", "Expenses", "Net", "Count", "Average"},
		Rows:   rows,
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	doc.PlainText(fmt.Sprintf("Total: %s income, %s expenses over %d transactions.",
		r.TotalIncome, r.TotalExpense, r.Count))

	return doc.String()
}
