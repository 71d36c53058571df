package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	year  int
	month int
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show a budget against actual spending" }
func (*budgetCmd) Usage() string {
	return `fin budget [<id-prefix>] [-y <year>] [-m <month>]

  Shows a budget-vs-actual report. Given an id prefix, reports on that budget;
  otherwise reports on the monthly budget covering (-y, -m), defaulting to the
  current month.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	today := finbook.Today()
	f.IntVar(&c.year, "y", today.Year(), "Year of the budget to report on.")
	f.IntVar(&c.month, "m", int(today.Month()), "Month of the budget to report on.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	var budget finbook.Budget
	if f.NArg() > 0 {
		budget, err = book.FindBudget(f.Arg(0))
		if err != nil {
			logger.Error(err)
			return subcommands.ExitFailure
		}
	} else {
		var ok bool
		budget, ok = book.BudgetFor(c.year, c.month)
		if !ok {
			logger.Errorf("no budget covers %d-%02d", c.year, c.month)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.BudgetMarkdown(finbook.NewBudgetReport(book, budget)))
	return subcommands.ExitSuccess
}
