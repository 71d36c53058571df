package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the book file in canonical form" }
func (*fmtCmd) Usage() string {
	return `fin fmt

  Rewrites the book file in canonical JSONL form: records sorted, one JSON
  object per line, fields in canonical order. Useful after a hand edit.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		logger.Error(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %s.\n", *bookFile)
	return subcommands.ExitSuccess
}
