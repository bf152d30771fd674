package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/randutil"
)

const sample = `
log_level = "debug"

game {
  player_count    = 6
  chips_for_each  = 300
  dealer_id       = 2
  small_blind     = 5
  big_blind       = 10
  allow_step_back = false
  hero_position   = "co"
}

simulation {
  rollouts = 500
  workers  = 8
  seed     = 42
  streets  = 2
}
`

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, 6, cfg.Game.PlayerCount)
	assert.Equal(t, 300, cfg.Game.ChipsForEach)
	require.NotNil(t, cfg.Game.DealerID)
	assert.Equal(t, 2, *cfg.Game.DealerID)
	assert.False(t, *cfg.Game.AllowStepBack)
	assert.Equal(t, 500, cfg.Simulation.Rollouts)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)

	sim := cfg.SimulatorConfig(zerolog.Nop())
	assert.Equal(t, 8, sim.Workers)
	assert.Equal(t, 2, sim.Streets)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`game { player_count = 3 }`), "min.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 200, cfg.Game.ChipsForEach)
	assert.Equal(t, 1, cfg.Game.SmallBlind)
	assert.Equal(t, 2, cfg.Game.BigBlind)
	assert.Nil(t, cfg.Game.DealerID)
	assert.True(t, *cfg.Game.AllowStepBack)
	assert.Equal(t, 1000, cfg.Simulation.Rollouts)
	assert.Equal(t, 4, cfg.Simulation.Workers)

	assert.Equal(t, Default().Simulation, cfg.Simulation)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "solverbuddy.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "co", cfg.Game.HeroPosition)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`game {`), "broken.hcl")
	require.Error(t, err)

	_, err = Parse([]byte(`unknown = 1`), "unknown.hcl")
	require.Error(t, err)

	_, err = Parse([]byte(`game { player_count = "six" }`), "type.hcl")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{"bad level", `log_level = "chatty"`},
		{"too many players", `game { player_count = 12 }`},
		{"dealer out of range", `game { dealer_id = 5 }`},
		{"inverted blinds", `game {
  small_blind = 4
  big_blind   = 2
}`},
		{"unknown hero", `game { hero_position = "dealer" }`},
		{"hero not seated", `
game {
  player_count  = 3
  hero_position = "UTG"
}`},
		{"too many streets", `simulation { streets = 9 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), tt.name+".hcl")
			require.NoError(t, err)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestGameOptions(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	g := game.NewGame(randutil.New(1), cfg.GameOptions()...)
	require.NoError(t, g.Configure(cfg.GameConfig()))
	_, _, err = g.InitGame()
	require.NoError(t, err)

	assert.Equal(t, 5, g.SmallBlind())
	assert.Equal(t, 10, g.BigBlind())
	assert.Equal(t, 2, g.DealerID())
	hero, ok := g.Hero()
	require.True(t, ok)
	assert.Equal(t, game.CO, hero.Position)

	_, _, err = g.Step(game.Fold, 0)
	require.NoError(t, err)
	assert.False(t, g.StepBack(), "step back disabled in config")
}
