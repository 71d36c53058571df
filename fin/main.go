package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finbook/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/subosito/gotenv"
)

func main() {
	// A .env in the working directory can carry FINBOOK_FILE.
	_ = gotenv.Load()

	// Shell completion: exits early when invoked by the shell.
	completion().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	names := []string{
		"add", "tx", "del",
		"budget-set", "allocate", "budgets", "budget", "budget-del",
		"invest", "investments", "revalue", "performance", "invest-del", "portfolio",
		"summary", "monthly", "yearly", "category", "cashflow",
		"export", "import", "query", "fmt", "topic",
	}
	sub := make(map[string]*complete.Command, len(names))
	for _, name := range names {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.jsonl"),
		},
	}
}
