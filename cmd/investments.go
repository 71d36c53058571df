package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// investmentsCmd holds the flags for the 'investments' subcommand.
type investmentsCmd struct {
	typ string
}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "list investment positions" }
func (*investmentsCmd) Usage() string {
	return `fin investments [-t <type>]

  Lists investment positions, most recently purchased first.
`
}

func (c *investmentsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "t", "", "Keep only positions of this type.")
}

func (c *investmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var investments []finbook.Investment
	for inv := range book.Investments(typ) {
		investments = append(investments, inv)
	}

	printMarkdown(renderer.InvestmentsMarkdown(investments))
	return subcommands.ExitSuccess
}
