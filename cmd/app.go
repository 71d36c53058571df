// Package cmd implements the CLI application to manage a finance book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/finbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&delCmd{}, "transactions")

	c.Register(&budgetSetCmd{}, "budgets")
	c.Register(&allocateCmd{}, "budgets")
	c.Register(&budgetsCmd{}, "budgets")
	c.Register(&budgetCmd{}, "budgets")
	c.Register(&budgetDelCmd{}, "budgets")

	c.Register(&investCmd{}, "investments")
	c.Register(&investmentsCmd{}, "investments")
	c.Register(&revalueCmd{}, "investments")
	c.Register(&performanceCmd{}, "investments")
	c.Register(&investDelCmd{}, "investments")
	c.Register(&portfolioCmd{}, "investments")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")
	c.Register(&yearlyCmd{}, "reports")
	c.Register(&categoryCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")

	c.Register(&exportCmd{}, "book")
	c.Register(&importCmd{}, "book")
	c.Register(&queryCmd{}, "book")
	c.Register(&fmtCmd{}, "book")
	c.Register(&topicCmd{}, "book")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var bookFile = flag.String("f", defaultBookFile(), "Path to the book file (JSONL format)")

// logger writes warnings and errors to stderr, without timestamps: this is an
// interactive tool, not a service.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// defaultBookFile resolves the book path from the FINBOOK_FILE environment
// variable, falling back to finbook.jsonl in the working directory.
func defaultBookFile() string {
	if path := os.Getenv("FINBOOK_FILE"); path != "" {
		return path
	}
	return "finbook.jsonl"
}

// loadBook opens the app book file. A missing file yields an empty book, so
// the very first command works without a setup step.
func loadBook() (*finbook.Book, error) {
	return finbook.LoadBook(*bookFile)
}

// saveBook persists the app book file.
func saveBook(book *finbook.Book) error {
	return finbook.SaveBook(*bookFile, book)
}

// printMarkdown renders markdown for the terminal. If rendering fails (no
// usable terminal, broken style), the raw markdown is printed instead.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return
	}
	fmt.Print(out)
}

// rangeFlags is the date range selection shared by the reporting commands:
// either a period around an end date, or an explicit start date.
type rangeFlags struct {
	period string
	start  string
	date   string
}

func (r *rangeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&r.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&r.date, "d", "", "The end date for the range.")
}

// Range resolves the flags to a date range. With no flag set it returns the
// zero range, meaning no date filtering.
func (r *rangeFlags) Range() (finbook.Range, error) {
	if r.period == "" && r.start == "" && r.date == "" {
		return finbook.Range{}, nil
	}

	endStr := r.date
	if endStr == "" {
		endStr = finbook.Today().String()
	}
	end, err := finbook.ParseDate(endStr)
	if err != nil {
		return finbook.Range{}, fmt.Errorf("invalid end date: %w", err)
	}

	if r.start != "" {
		start, err := finbook.ParseDate(r.start)
		if err != nil {
			return finbook.Range{}, fmt.Errorf("invalid start date: %w", err)
		}
		return finbook.NewRange(start, end), nil
	}

	periodStr := r.period
	if periodStr == "" {
		periodStr = "month"
	}
	period, err := finbook.ParsePeriod(periodStr)
	if err != nil {
		return finbook.Range{}, err
	}
	return period.Range(end), nil
}
