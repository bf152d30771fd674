package simulator

import (
	"bytes"
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/judger"
	"github.com/lox/solverbuddy/internal/randutil"
	"github.com/lox/solverbuddy/poker"
)

func prototype(t *testing.T, players int) *game.Game {
	t.Helper()

	g := game.NewGame(randutil.New(11),
		game.WithPlayers(players, 100),
		game.WithDealer(0),
		game.WithJudger(judger.New()),
	)
	_, _, err := g.InitGame()
	require.NoError(t, err)
	return g
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	t.Parallel()

	proto := prototype(t, 4)

	single, err := New(Config{Rollouts: 200, Workers: 1, Seed: 3}).Run(context.Background(), proto)
	require.NoError(t, err)
	parallel, err := New(Config{Rollouts: 200, Workers: 4, Seed: 3}).Run(context.Background(), proto)
	require.NoError(t, err)

	assert.Equal(t, 200, single.Rollouts)
	assert.Equal(t, single.Positions, parallel.Positions)
	assert.Equal(t, single.Streets, parallel.Streets)
	assert.Equal(t, single.TotalPot, parallel.TotalPot)
	assert.True(t, parallel.IsLedgerBalanced())
}

func TestRunLeavesPrototypeUntouched(t *testing.T) {
	t.Parallel()

	proto := prototype(t, 3)
	before, err := proto.Dump(false)
	require.NoError(t, err)

	_, err = New(Config{Rollouts: 50, Workers: 3, Seed: 9}).Run(context.Background(), proto)
	require.NoError(t, err)

	after, err := proto.Dump(false)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
	assert.Empty(t, proto.PublicCards())
}

func TestRunKeepsKnownCards(t *testing.T) {
	t.Parallel()

	proto := prototype(t, 2)
	hero, err := poker.ParseCards("AsAh")
	require.NoError(t, err)
	require.NoError(t, proto.SetHoleCards(0, hero...))

	stats, err := New(Config{Rollouts: 100, Workers: 2, Seed: 1}).Run(context.Background(), proto)
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Rollouts)
	require.NoError(t, stats.Validate())
}

func TestRunStopsAfterStreets(t *testing.T) {
	t.Parallel()

	proto := prototype(t, 3)
	stats, err := New(Config{Rollouts: 100, Workers: 2, Seed: 5, Streets: 1}).Run(context.Background(), proto)
	require.NoError(t, err)

	for street := 2; street < len(stats.Streets); street++ {
		assert.Zero(t, stats.Streets[street], "street %d", street)
	}
}

func TestRunContinuesFromMidHand(t *testing.T) {
	t.Parallel()

	proto := prototype(t, 3)
	_, _, err := proto.Step(game.Raise, 6)
	require.NoError(t, err)

	stats, err := New(Config{Rollouts: 30, Seed: 2}).Run(context.Background(), proto)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.TotalPot, 30*9, "every pot holds the blinds and the raise")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Rollouts: 10}).Run(context.Background(), game.NewGame(randutil.New(1)))
	require.ErrorIs(t, err, ErrNoPrototype)

	_, err = New(Config{}).Run(context.Background(), prototype(t, 2))
	require.Error(t, err)

	noJudger := game.NewGame(randutil.New(1))
	_, _, err = noJudger.InitGame()
	require.NoError(t, err)
	_, err = New(Config{Rollouts: 5}).Run(context.Background(), noJudger)
	require.ErrorIs(t, err, game.ErrNoJudger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = New(Config{Rollouts: 10, Workers: 2}).Run(ctx, prototype(t, 2))
	require.ErrorIs(t, err, context.Canceled)
}

func TestChooseActionIsLegal(t *testing.T) {
	t.Parallel()

	rng := randutil.New(4)
	for i := 0; i < 50; i++ {
		g := prototype(t, 5)
		for steps := 0; steps < 100 && !g.HandOver(); steps++ {
			action, size := chooseAction(g, rng)
			require.True(t, g.IsLegal(action))
			if action == game.Bet || action == game.Raise {
				p, err := g.Player(g.Pointer())
				require.NoError(t, err)
				require.GreaterOrEqual(t, size, 1)
				require.LessOrEqual(t, size, p.RemainedChips())
			}
			_, _, err := g.Step(action, size)
			require.NoError(t, err)
		}
	}
}

func TestChooseActionLiftsStreetMaximum(t *testing.T) {
	t.Parallel()

	rng := randutil.New(9)
	aggressive := 0
	for hand := 0; hand < 200; hand++ {
		g := prototype(t, 6)
		for steps := 0; steps < 200 && !g.HandOver(); steps++ {
			seat, street := g.Pointer(), g.RoundCounter()
			before := slices.Max(g.Round().Raised())

			action, size := chooseAction(g, rng)
			_, _, err := g.Step(action, size)
			require.NoError(t, err)

			if !action.IsAggressive() || g.RoundCounter() != street {
				continue
			}
			aggressive++
			assert.Greater(t, g.Round().Raised()[seat], before,
				"hand %d: %s of %d by seat %d did not exceed %d", hand, action, size, seat, before)
		}
	}
	assert.Positive(t, aggressive)
}

func TestRaiseSize(t *testing.T) {
	t.Parallel()

	rng := randutil.New(1)
	for i := 0; i < 100; i++ {
		size := raiseSize(4, 4, 50, rng)
		assert.GreaterOrEqual(t, size, 8)
		assert.LessOrEqual(t, size, 50)
	}
	assert.Equal(t, 6, raiseSize(4, 4, 6, rng), "short stacks shove")
	assert.Equal(t, 8, raiseSize(4, 4, 8, rng))
}

func TestMinIncrement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raised  []int
		opening int
		want    int
	}{
		{name: "unopened", raised: []int{0, 0, 0}, opening: 2, want: 2},
		{name: "blinds", raised: []int{1, 2, 0}, opening: 2, want: 2},
		{name: "raised", raised: []int{1, 2, 8}, opening: 2, want: 6},
		{name: "re-raised", raised: []int{20, 2, 8}, opening: 2, want: 12},
		{name: "zero opening", raised: []int{0, 0}, opening: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, minIncrement(tt.raised, tt.opening))
		})
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	stats, err := New(Config{Rollouts: 20, Seed: 8}).Run(context.Background(), prototype(t, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSummary(&buf, stats, 2)
	assert.Contains(t, buf.String(), "Rollouts: 20")
	assert.Contains(t, buf.String(), "BTN")
}
