package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/profit/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion answers shell completion requests and returns immediately in a
// normal run. Install with COMP_INSTALL=1 ppm.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"store": predict.Dirs("*"),
		},
	}).Complete("ppm")
}
