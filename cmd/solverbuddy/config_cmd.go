package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/solverbuddy/internal/config"
)

// ConfigCmd groups configuration subcommands
type ConfigCmd struct {
	Check ConfigCheckCmd `cmd:"" help:"Validate a config file and print the resolved settings"`
}

// ConfigCheckCmd validates the file named by --config
type ConfigCheckCmd struct{}

func (cmd *ConfigCheckCmd) Run(globals *Globals) error {
	if _, err := os.Stat(globals.Config); err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	printConfig(os.Stdout, globals.Config, cfg)
	return nil
}

func printConfig(w io.Writer, path string, cfg *config.Config) {
	g, sim := cfg.Game, cfg.Simulation
	fmt.Fprintln(w, headerStyle.Render(path+" is valid"))
	fmt.Fprintf(w, "log_level      %s\n", cfg.LogLevel)
	fmt.Fprintf(w, "players        %d\n", g.PlayerCount)
	fmt.Fprintf(w, "chips_for_each %d\n", g.ChipsForEach)
	fmt.Fprintf(w, "blinds         %d/%d\n", g.SmallBlind, g.BigBlind)
	if g.DealerID != nil {
		fmt.Fprintf(w, "dealer         %d\n", *g.DealerID)
	} else {
		fmt.Fprintln(w, "dealer         random")
	}
	if g.HeroPosition != "" {
		fmt.Fprintf(w, "hero           %s\n", g.HeroPosition)
	}
	fmt.Fprintf(w, "rollouts       %d (workers %d, streets %d, seed %d)\n",
		sim.Rollouts, sim.Workers, sim.Streets, sim.Seed)
}
