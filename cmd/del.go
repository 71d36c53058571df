package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// delCmd holds the flags for the 'del' subcommand.
type delCmd struct{}

func (*delCmd) Name() string     { return "del" }
func (*delCmd) Synopsis() string { return "delete a transaction by its id" }
func (*delCmd) Usage() string {
	return `fin del <id-prefix>

  Deletes the transaction matching the id prefix. The prefix must be at least
  8 characters long and match exactly one transaction.
`
}

func (c *delCmd) SetFlags(f *flag.FlagSet) {}

func (c *delCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		logger.Error("expected exactly one id prefix")
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	tx, err := book.DeleteTransaction(f.Arg(0))
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted: %s\n", renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
