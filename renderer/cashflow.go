package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// CashFlowMarkdown renders a cash-flow report to a markdown string: one row
// per period bucket, with a running balance.
func CashFlowMarkdown(f *finbook.CashFlow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Cash Flow %s, by %s", rangeLabel(f.Range), f.Granularity.Name()))

	if len(f.Buckets) == 0 {
		doc.PlainText("No activity.")
		return doc.String()
	}

	rows := make([][]string, 0, len(f.Buckets))
	for _, bucket := range f.Buckets {
		rows = append(rows, []string{
			bucket.Range.Identifier(),
			bucket.Income.String(),
			bucket.Expense.String(),
			bucket.Net.SignedString(),
			bucket.Balance.SignedString(),
		})
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Period", "Income", "Expenses", "Net", "Balance"},
		Rows:   rows,
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	doc.PlainText(fmt.Sprintf("Total: %s income, %s expenses, final balance %s.",
		f.TotalIncome, f.TotalExpense, f.FinalBalance.SignedString()))

	return doc.String()
}
