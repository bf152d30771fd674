package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Debug   bool   `help:"Enable debug logging"`
	LogJSON bool   `name:"log-json" help:"Emit structured JSON logs instead of console output"`
	Config  string `short:"c" type:"path" default:"solverbuddy.hcl" help:"Path to the HCL config file"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" help:"Play a hand interactively, one action at a time"`
	Replay   ReplayCmd        `cmd:"" help:"Apply a comma-separated action script and print the result"`
	Simulate SimulateCmd      `cmd:"" help:"Run random rollouts from a starting spot"`
	Cfg      ConfigCmd        `cmd:"" name:"config" help:"Work with configuration files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("solverbuddy"),
		kong.Description("Step through no-limit hold'em hands and run rollouts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
