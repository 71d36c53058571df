package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// investDelCmd holds the flags for the 'invest-del' subcommand.
type investDelCmd struct{}

func (*investDelCmd) Name() string     { return "invest-del" }
func (*investDelCmd) Synopsis() string { return "delete an investment by its id" }
func (*investDelCmd) Usage() string {
	return `fin invest-del <id-prefix>

  Deletes the investment matching the id prefix.
`
}

func (c *investDelCmd) SetFlags(f *flag.FlagSet) {}

func (c *investDelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		logger.Error("expected exactly one id prefix")
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	inv, err := book.DeleteInvestment(f.Arg(0))
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted investment %q (%s), last valued at %s.\n", inv.Name, inv.Type, inv.Current)
	return subcommands.ExitSuccess
}
