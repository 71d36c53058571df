package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// budgetDelCmd holds the flags for the 'budget-del' subcommand.
type budgetDelCmd struct{}

func (*budgetDelCmd) Name() string     { return "budget-del" }
func (*budgetDelCmd) Synopsis() string { return "delete a budget by its id" }
func (*budgetDelCmd) Usage() string {
	return `fin budget-del <id-prefix>

  Deletes the budget matching the id prefix, along with all its category
  allocations.
`
}

func (c *budgetDelCmd) SetFlags(f *flag.FlagSet) {}

func (c *budgetDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		logger.Error("expected exactly one id prefix")
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	budget, err := book.DeleteBudget(f.Arg(0))
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted budget %q (%s) and its %d allocations.\n",
		budget.Name, budget.ScopeString(), len(budget.Categories))
	return subcommands.ExitSuccess
}
