package cmd

import (
	"context"
	"flag"
	"time"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	year  int
	month int
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the full monthly report" }
func (*monthlyCmd) Usage() string {
	return `fin monthly [-y <year>] [-m <month>]

  Displays the full report for a month: summary, trend against the previous
  month, budget status and portfolio valuation.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	today := finbook.Today()
	f.IntVar(&c.year, "y", today.Year(), "Year to report on.")
	f.IntVar(&c.month, "m", int(today.Month()), "Month to report on.")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		logger.Errorf("month must be between 1 and 12, got %d", c.month)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	report := finbook.NewMonthlyReport(book, c.year, time.Month(c.month))
	printMarkdown(renderer.MonthlyMarkdown(report))
	return subcommands.ExitSuccess
}
