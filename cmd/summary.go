package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	rangeFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a period summary of the book" }
func (*summaryCmd) Usage() string {
	return `fin summary [-p <period> | -s <start_date>] [-d <end_date>]

  Displays income, expenses, net amount and the top expense categories over a
  period. Without flags it covers the whole book.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.Range()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(finbook.NewSummary(book, r)))
	return subcommands.ExitSuccess
}
