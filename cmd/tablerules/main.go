package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Limits  LimitsCmd        `cmd:"" help:"Show the resolved betting limits for a table variant"`
	Check   CheckCmd         `cmd:"" help:"Validate a rule document"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tablerules"),
		kong.Description("Inspect and validate roulette betting-rule configurations"),
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
