package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Benchmark a guessing strategy across an answer corpus"`
	Play     PlayCmd          `cmd:"" help:"Play a single game against a known answer"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wordlebench"),
		kong.Description("Benchmark harness for word-guessing strategies"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
