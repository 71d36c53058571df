package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// allocateCmd holds the flags for the 'allocate' subcommand.
type allocateCmd struct {
	budget      string
	category    string
	amount      float64
	currency    string
	description string
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "add a category allocation to a budget" }
func (*allocateCmd) Usage() string {
	return `fin allocate -b <budget-id> -c <category> -a <amount>

  Adds a category allocation to an existing budget. A budget holds at most one
  allocation per category.
`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.budget, "b", "", "Id prefix of the budget to allocate in.")
	f.StringVar(&c.category, "c", "", "Category to allocate for.")
	f.Float64Var(&c.amount, "a", 0, "Allocated amount, in major units.")
	f.StringVar(&c.currency, "cur", "", "Currency of the amount. Defaults to the book currency.")
	f.StringVar(&c.description, "m", "", "Description of the allocation.")
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	currency := c.currency
	if currency == "" {
		currency = book.Currency()
	}

	budget, err := book.Allocate(c.budget, c.category, finbook.M(c.amount, currency), c.description)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Allocated %s to %q in budget %q (total %s)\n",
		finbook.M(c.amount, currency), c.category, budget.Name, budget.TotalAllocated())
	return subcommands.ExitSuccess
}
