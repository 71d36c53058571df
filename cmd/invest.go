package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// investCmd holds the flags for the 'invest' subcommand.
type investCmd struct {
	name     string
	typ      string
	amount   float64
	currency string
	date     string
	shares   float64
	price    float64
}

func (*investCmd) Name() string     { return "invest" }
func (*investCmd) Synopsis() string { return "record a new investment position" }
func (*investCmd) Usage() string {
	return `fin invest -name <name> -t <type> -a <amount> [-d <date>] [-shares <n>] [-price <p>]

  Records a new investment position. Its current value starts at the invested
  amount until the first 'revalue'. Types: stock, bond, fund, crypto,
  real_estate, commodity, other.
`
}

func (c *investCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the position.")
	f.StringVar(&c.typ, "t", "", "Investment type.")
	f.Float64Var(&c.amount, "a", 0, "Amount invested, in major units.")
	f.StringVar(&c.currency, "cur", "", "Currency of the amount. Defaults to the book currency.")
	f.StringVar(&c.date, "d", "", "Purchase date. Defaults to today.")
	f.Float64Var(&c.shares, "shares", 0, "Number of shares or units (optional).")
	f.Float64Var(&c.price, "price", 0, "Purchase price per share (optional).")
}

func (c *investCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finbook.ParseInvestmentType(c.typ)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}

	var date finbook.Date
	if c.date != "" {
		date, err = finbook.ParseDate(c.date)
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

	inv := finbook.NewInvestment(c.name, typ, finbook.M(c.amount, currency), date)
	if c.shares > 0 {
		inv.Shares = finbook.Q(c.shares)
	}
	if c.price > 0 {
		inv.PurchasePrice = finbook.M(c.price, currency)
	}

	inv, err = book.AppendInvestment(inv)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Invested %s in %q (%s) %s\n", inv.Initial, inv.Name, inv.Type, inv.ID.Short())
	return subcommands.ExitSuccess
}
