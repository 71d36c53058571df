package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finbook"
)

// Transaction renders a transaction to a one-line string, used to confirm
// what a command just did.
func Transaction(tx finbook.Transaction) string {
	verb := "Received"
	if tx.Type == finbook.Expense {
		verb = "Spent"
	}
	return fmt.Sprintf("%s %s on %s (%s, %s) %s", verb, tx.Amount, tx.Date, tx.Category, tx.Account, tx.ID.Short())
}

// TransactionsMarkdown renders a list of transactions as a markdown table.
func TransactionsMarkdown(title string, transactions []finbook.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(transactions) == 0 {
		fmt.Fprintln(&b, "No transactions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| ID | Date | Type | Amount | Description | Category | Account | Payment | Tags |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|:---|:---|:---|:---|:---|")
	for _, tx := range transactions {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.ID.Short(),
			tx.Date,
			tx.Type,
			tx.Amount,
			tx.Description,
			tx.Category,
			tx.Account,
			tx.Payment,
			strings.Join(tx.Tags, ", "),
		)
	}
	return b.String()
}
