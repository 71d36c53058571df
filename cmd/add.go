package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date        string
	typ         string
	amount      float64
	currency    string
	description string
	category    string
	account     string
	payment     string
	tags        string
	notes       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense transaction" }
func (*addCmd) Usage() string {
	return `fin add -t <income|expense> -a <amount> -m <description> [-d <date>] [-c <category>] [options]

  Records a new transaction in the book. The date defaults to today, the
  category to "general" and the account to "default".
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transaction. Defaults to today.")
	f.StringVar(&c.typ, "t", "expense", "Transaction type: income or expense.")
	f.Float64Var(&c.amount, "a", 0, "Amount of the transaction, in major units.")
	f.StringVar(&c.currency, "cur", "", "Currency of the amount. Defaults to the book currency.")
	f.StringVar(&c.description, "m", "", "Description of the transaction.")
	f.StringVar(&c.category, "c", "", "Category of the transaction.")
	f.StringVar(&c.account, "account", "", "Account the transaction belongs to.")
	f.StringVar(&c.payment, "p", "", "Payment method (cash, credit_card, debit_card, bank_transfer, digital_wallet, other).")
	f.StringVar(&c.tags, "tags", "", "Comma-separated list of tags.")
	f.StringVar(&c.notes, "n", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finbook.ParseTransactionType(c.typ)
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

	var payment finbook.PaymentMethod
	if c.payment != "" {
		payment, err = finbook.ParsePaymentMethod(c.payment)
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

	currency := c.currency
	if currency == "" {
		currency = book.Currency()
	}

	var tags []string
	if c.tags != "" {
		tags = strings.Split(c.tags, ",")
	}

	tx := finbook.NewTransaction(date, typ, finbook.M(c.amount, currency), c.description).
		WithDetails(c.category, c.account, payment, tags, c.notes)

	tx, err = book.AppendTransaction(tx)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Println(renderer.Transaction(tx))
	return subcommands.ExitSuccess
}
