package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// yearlyCmd holds the flags for the 'yearly' subcommand.
type yearlyCmd struct {
	year int
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the full yearly report" }
func (*yearlyCmd) Usage() string {
	return `fin yearly [-y <year>]

  Displays the full report for a year: summary, monthly breakdown, growth
  against the previous year, budget status and portfolio valuation.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", finbook.Today().Year(), "Year to report on.")
}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.YearlyMarkdown(finbook.NewYearlyReport(book, c.year)))
	return subcommands.ExitSuccess
}
