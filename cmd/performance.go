package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// performanceCmd holds the flags for the 'performance' subcommand.
type performanceCmd struct {
	date string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "show the detailed performance of an investment" }
func (*performanceCmd) Usage() string {
	return `fin performance <id-prefix> [-d <date>]

  Shows the gain, relative return and annualized return of the investment
  matching the id prefix, as of the given date.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", finbook.Today().String(), "Date the performance is computed at.")
}

func (c *performanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		logger.Error("expected exactly one id prefix")
		return subcommands.ExitUsageError
	}

	asof, err := finbook.ParseDate(c.date)
	if err != nil {
		logger.Error("invalid date", "err", err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	inv, err := book.FindInvestment(f.Arg(0))
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PerformanceMarkdown(finbook.NewInvestmentPerformance(inv, asof)))
	return subcommands.ExitSuccess
}
