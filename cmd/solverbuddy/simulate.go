package main

import (
	"os"

	"github.com/lox/solverbuddy/internal/simulator"
)

// SimulateCmd runs random rollouts from a starting spot
type SimulateCmd struct {
	TableFlags `embed:""`

	Script   string `help:"Actions to apply before the rollouts start, e.g. \"r:6,c\""`
	Rollouts int    `short:"n" help:"Number of rollouts (overrides config)"`
	Workers  int    `short:"w" help:"Number of parallel workers (overrides config)"`
	Streets  int    `help:"Betting streets to play before settling, 1-4 (overrides config)"`
}

func (cmd *SimulateCmd) Run(globals *Globals) error {
	cfg, logger, err := loadConfig(globals, cmd.TableFlags)
	if err != nil {
		return err
	}
	steps, err := parseScript(cmd.Script)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, logger, cmd.TableFlags)
	if err != nil {
		return err
	}
	if err := applyScript(s.game, steps); err != nil {
		return err
	}

	simCfg := cfg.SimulatorConfig(logger)
	if cmd.Rollouts > 0 {
		simCfg.Rollouts = cmd.Rollouts
	}
	if cmd.Workers > 0 {
		simCfg.Workers = cmd.Workers
	}
	if cmd.Streets > 0 {
		simCfg.Streets = cmd.Streets
	}
	if simCfg.Seed == 0 {
		simCfg.Seed = s.seed
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	stats, err := simulator.New(simCfg).Run(ctx, s.game)
	if err != nil {
		return err
	}
	simulator.WriteSummary(os.Stdout, stats, s.game.BigBlind())
	return nil
}
