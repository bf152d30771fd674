// Package config loads the HCL configuration file shared by the CLI commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"

	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/simulator"
)

// Config represents the complete configuration file
type Config struct {
	LogLevel   string              `hcl:"log_level,optional"`
	Game       *GameSettings       `hcl:"game,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// GameSettings configures the table each hand is played at
type GameSettings struct {
	PlayerCount   int    `hcl:"player_count,optional"`
	ChipsForEach  int    `hcl:"chips_for_each,optional"`
	DealerID      *int   `hcl:"dealer_id,optional"`
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	AllowStepBack *bool  `hcl:"allow_step_back,optional"`
	HeroPosition  string `hcl:"hero_position,optional"`
}

// SimulationSettings configures the rollout simulator
type SimulationSettings struct {
	Rollouts int   `hcl:"rollouts,optional"`
	Workers  int   `hcl:"workers,optional"`
	Seed     int64 `hcl:"seed,optional"`
	Streets  int   `hcl:"streets,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.PlayerCount == 0 {
		c.Game.PlayerCount = 2
	}
	if c.Game.ChipsForEach == 0 {
		c.Game.ChipsForEach = 200
	}
	if c.Game.SmallBlind == 0 {
		c.Game.SmallBlind = 1
	}
	if c.Game.BigBlind == 0 {
		c.Game.BigBlind = c.Game.SmallBlind * 2
	}
	if c.Game.AllowStepBack == nil {
		allow := true
		c.Game.AllowStepBack = &allow
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Rollouts == 0 {
		c.Simulation.Rollouts = 1000
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = 4
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if err := c.GameConfig().Validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if c.Game.SmallBlind <= 0 || c.Game.BigBlind < c.Game.SmallBlind {
		return fmt.Errorf("game: invalid blinds %d/%d", c.Game.SmallBlind, c.Game.BigBlind)
	}
	if c.Game.HeroPosition != "" {
		pos, err := game.ParsePosition(c.Game.HeroPosition)
		if err != nil {
			return fmt.Errorf("game: %w", err)
		}
		if !seatsPosition(c.Game.PlayerCount, pos) {
			return fmt.Errorf("game: hero position %s is not used at %d players", pos, c.Game.PlayerCount)
		}
	}
	if c.Simulation.Rollouts < 0 {
		return fmt.Errorf("simulation: invalid rollouts: %d", c.Simulation.Rollouts)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation: invalid workers: %d", c.Simulation.Workers)
	}
	if c.Simulation.Streets < 0 || c.Simulation.Streets > int(game.River)+1 {
		return fmt.Errorf("simulation: streets must be between 0 and %d, got %d", int(game.River)+1, c.Simulation.Streets)
	}
	return nil
}

func seatsPosition(players int, pos game.Position) bool {
	order, err := game.Positions(players)
	if err != nil {
		return false
	}
	return slices.Contains(order, pos)
}

// Level returns the configured log level, falling back to info
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// GameConfig returns the per-hand table configuration
func (c *Config) GameConfig() game.Config {
	cfg := game.Config{
		PlayerCount:  c.Game.PlayerCount,
		ChipsForEach: c.Game.ChipsForEach,
	}
	if c.Game.DealerID != nil {
		d := *c.Game.DealerID
		cfg.DealerID = &d
	}
	return cfg
}

// GameOptions returns the options for game.NewGame. Call Validate first.
func (c *Config) GameOptions() []game.Option {
	opts := []game.Option{
		game.WithBlinds(c.Game.SmallBlind, c.Game.BigBlind),
		game.WithStepBack(*c.Game.AllowStepBack),
	}
	if pos, err := game.ParsePosition(c.Game.HeroPosition); err == nil {
		opts = append(opts, game.WithHero(pos))
	}
	return opts
}

// SimulatorConfig returns the simulator settings
func (c *Config) SimulatorConfig(logger zerolog.Logger) simulator.Config {
	return simulator.Config{
		Rollouts: c.Simulation.Rollouts,
		Workers:  c.Simulation.Workers,
		Seed:     c.Simulation.Seed,
		Streets:  c.Simulation.Streets,
		Logger:   logger,
	}
}
