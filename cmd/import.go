package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from CSV" }
func (*importCmd) Usage() string {
	return `fin import [-i <file>]

  Imports transactions from a CSV file, or stdin. The header must name at
  least the date, type, amount and description columns; rows without an id
  get a fresh one.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input file. Defaults to stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.input != "" {
		var err error
		in, err = os.Open(c.input)
		if err != nil {
			logger.Error("could not open input file", "err", err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	count, err := finbook.ImportCSV(in, book)
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d transactions into %s.\n", count, *bookFile)
	return subcommands.ExitSuccess
}
