package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finbook"
	"github.com/etnz/finbook/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	rangeFlags
	typ      string
	category string
	account  string
	tag      string
	text     string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the book" }
func (*txCmd) Usage() string {
	return `fin tx [-p <period> | -s <start_date>] [-d <end_date>] [-t <type>] [-c <category>] [options]

  Lists transactions from the book, with options for filtering and limiting
  the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.typ, "t", "", "Keep only income or expense transactions.")
	f.StringVar(&c.category, "c", "", "Keep only transactions of this category.")
	f.StringVar(&c.account, "account", "", "Keep only transactions of this account.")
	f.StringVar(&c.tag, "tag", "", "Keep only transactions carrying this tag.")
	f.StringVar(&c.text, "grep", "", "Keep only transactions whose description or notes contain this text.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		logger.Error("-head and -tail flags cannot be used together")
		return subcommands.ExitUsageError
	}

	r, err := c.Range()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitUsageError
	}

	filters := []func(finbook.Transaction) bool{finbook.InRange(r)}
	if c.typ != "" {
		typ, err := finbook.ParseTransactionType(c.typ)
		if err != nil {
			logger.Error(err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, finbook.ByType(typ))
	}
	if c.category != "" {
		filters = append(filters, finbook.ByCategory(c.category))
	}
	if c.account != "" {
		filters = append(filters, finbook.ByAccount(c.account))
	}
	if c.tag != "" {
		filters = append(filters, finbook.ByTag(c.tag))
	}
	if c.text != "" {
		filters = append(filters, finbook.ByText(c.text))
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	var transactions []finbook.Transaction
	for _, tx := range book.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown("Transactions", transactions))
	return subcommands.ExitSuccess
}
