package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// revalueCmd holds the flags for the 'revalue' subcommand.
type revalueCmd struct {
	amount   float64
	currency string
	date     string
}

func (*revalueCmd) Name() string     { return "revalue" }
func (*revalueCmd) Synopsis() string { return "set the current value of an investment" }
func (*revalueCmd) Usage() string {
	return `fin revalue <id-prefix> -a <amount> [-d <date>]

  Sets the current value of the investment matching the id prefix. This is the
  only way an investment's value changes.
`
}

func (c *revalueCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "a", 0, "Current value of the whole position, in major units.")
	f.StringVar(&c.currency, "cur", "", "Currency of the value. Defaults to the book currency.")
	f.StringVar(&c.date, "d", "", "Valuation date. Defaults to today.")
}

func (c *revalueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		logger.Error("expected exactly one id prefix")
		return subcommands.ExitUsageError
	}

	var on finbook.Date
	if c.date != "" {
		var err error
		on, err = finbook.ParseDate(c.date)
		if err != nil {
			logger.Error("invalid date", "err", err)
			return subcommands.ExitUsageError
		}
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	currency := c.currency
	if currency == "" {
		currency = book.Currency()
	}

	inv, err := book.Revalue(f.Arg(0), finbook.M(c.amount, currency), on)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Revalued %q at %s on %s (gain %s, %s)\n",
		inv.Name, inv.Current, inv.ValuedOn, inv.Gain().SignedString(), inv.GainPercent().SignedString())
	return subcommands.ExitSuccess
}
