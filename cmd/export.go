package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	rangeFlags
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions to CSV" }
func (*exportCmd) Usage() string {
	return `fin export [-o <file>] [-p <period> | -s <start_date>] [-d <end_date>]

  Exports transactions to CSV, to stdout or to a file. Without date flags it
  exports the whole book.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f)
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			logger.Error("could not create output file", "err", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := finbook.ExportCSV(out, book, finbook.InRange(r)); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		logger.Info("exported transactions", "file", c.output)
	}
	return subcommands.ExitSuccess
}
