package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	rangeFlags
	granularity string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display cash flow over time with a running balance" }
func (*cashflowCmd) Usage() string {
	return `fin cashflow [-by <period>] [-p <period> | -s <start_date>] [-d <end_date>]

  Displays income and expenses bucketed by period, with a running balance.
  Without date flags it covers the whole book.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.granularity, "by", "month", "Bucket size (day, week, month, quarter, year).")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	granularity, err := finbook.ParsePeriod(c.granularity)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}

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

	if r.IsZero() {
		r = finbook.BookRange(book)
	}

	printMarkdown(renderer.CashFlowMarkdown(finbook.NewCashFlow(book, r, granularity)))
	return subcommands.ExitSuccess
}
