package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	typ string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "show the portfolio valuation report" }
func (*portfolioCmd) Usage() string {
	return `fin portfolio [-t <type>]

  Shows the portfolio valuation: totals, per-type aggregation and positions
  ranked by return.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Keep only positions of this type.")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var typ finbook.InvestmentType
	if c.typ != "" {
		var err error
		typ, err = finbook.ParseInvestmentType(c.typ)
		if err != nil {
			logger.Error(err)
			return subcommands.ExitUsageError
		}
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PortfolioMarkdown(finbook.NewPortfolioReport(book, typ)))
	return subcommands.ExitSuccess
}
