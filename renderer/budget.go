package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/finbook"
	md "github.com/nao1215/markdown"
)

// BudgetsMarkdown renders the list of budgets as a markdown table.
func BudgetsMarkdown(budgets []finbook.Budget) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budgets\n\n")
	if len(budgets) == 0 {
		fmt.Fprintln(&b, "No budgets.")
		return b.String()
	}

	fmt.Fprintln(&b, "| ID | Name | Scope | Allocations | Total |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, budget := range budgets {
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s |\n",
			budget.ID.Short(),
			budget.Name,
			budget.ScopeString(),
			len(budget.Categories),
			budget.TotalAllocated(),
		)
	}
	return b.String()
}

// BudgetMarkdown renders a budget-vs-actual report to a markdown string.
func BudgetMarkdown(r *finbook.BudgetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget %q (%s)", r.Budget.Name, r.Budget.ScopeString()))
	if r.Budget.Description != "" {
		doc.PlainText(r.Budget.Description)
	}

	if len(r.Lines) == 0 {
		doc.PlainText("No category allocations yet.")
		return doc.String()
	}

	rows := make([][]string, 0, len(r.Lines)+1)
	for _, line := range r.Lines {
		rows = append(rows, []string{
			flag(line.OverBudget, line.Category),
			line.Allocated.String(),
			line.Spent.String(),
			line.Remaining.SignedString(),
			fmt.Sprintf("%.0f%%", float64(line.Used)),
		})
	}
	rows = append(rows, []string{
		flag(r.OverBudget, "Total"),
		r.TotalAllocated.String(),
		r.TotalSpent.String(),
		r.TotalRemaining.SignedString(),
		fmt.Sprintf("%.0f%%", float64(r.Used)),
	})
	doc.CustomTable(md.TableSet{
		Header: []string{"Category", "Allocated", "Spent", "Remaining", "Used"},
		Rows:   rows,
	}, md.TableOptions{AutoWrapText: true, AutoFormatHeaders: false})

	return doc.String()
}

// flag marks an over-budget line so it stands out in the table.
func flag(over bool, label string) string {
	if over {
		return "⚠ " + label
	}
	return label
}
