package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// budgetSetCmd holds the flags for the 'budget-set' subcommand.
type budgetSetCmd struct {
	name        string
	period      string
	year        int
	month       int
	description string
}

func (*budgetSetCmd) Name() string     { return "budget-set" }
func (*budgetSetCmd) Synopsis() string { return "create a budget for a month or a year" }
func (*budgetSetCmd) Usage() string {
	return `fin budget-set -name <name> -p <monthly|yearly> [-y <year>] [-m <month>]

  Creates a budget covering a period scope. At most one budget may exist per
  scope. Use 'allocate' to add category allocations to it.
`
}

func (c *budgetSetCmd) SetFlags(f *flag.FlagSet) {
	today := finbook.Today()
	f.StringVar(&c.name, "name", "", "Name of the budget.")
	f.StringVar(&c.period, "p", "monthly", "Budget period: monthly or yearly.")
	f.IntVar(&c.year, "y", today.Year(), "Year the budget covers.")
	f.IntVar(&c.month, "m", int(today.Month()), "Month the budget covers (monthly budgets only).")
	f.StringVar(&c.description, "desc", "", "Description of the budget.")
}

func (c *budgetSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := finbook.ParseBudgetPeriod(c.period)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}

	month := time.Month(c.month)
	if period == finbook.Yearly {
		month = 0
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	budget := finbook.NewBudget(c.name, period, c.year, month)
	budget.Description = c.description

	budget, err = book.AppendBudget(budget)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created budget %q for %s (%s)\n", budget.Name, budget.ScopeString(), budget.ID.Short())
	return subcommands.ExitSuccess
}
