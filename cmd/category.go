package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// categoryCmd holds the flags for the 'category' subcommand.
type categoryCmd struct {
	rangeFlags
	category string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "display the per-category breakdown" }
func (*categoryCmd) Usage() string {
	return `fin category [-c <category>] [-p <period> | -s <start_date>] [-d <end_date>]

  Displays income, expenses and net amount per category over a period, sorted
  by expenses. With -c, restricts the report to a single category.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.category, "c", "", "Restrict the report to this category.")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.CategoryMarkdown(finbook.NewCategoryReport(book, r, c.category)))
	return subcommands.ExitSuccess
}
