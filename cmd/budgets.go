package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// budgetsCmd holds the flags for the 'budgets' subcommand.
type budgetsCmd struct{}

func (*budgetsCmd) Name() string     { return "budgets" }
func (*budgetsCmd) Synopsis() string { return "list all budgets" }
func (*budgetsCmd) Usage() string {
	return `fin budgets

  Lists all budgets, most recent period scope first.
`
}

func (c *budgetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	var budgets []finbook.Budget
	for budget := range book.Budgets() {
		budgets = append(budgets, budget)
	}

	printMarkdown(renderer.BudgetsMarkdown(budgets))
	return subcommands.ExitSuccess
}
