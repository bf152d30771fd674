package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/solverbuddy/internal/randutil"
	"github.com/lox/solverbuddy/poker"
)

// testGameOption configures test game creation
type testGameOption func(*testGameBuilder)

type testGameBuilder struct {
	seed    int64
	players int
	chips   int
	dealer  int
	opts    []Option
}

func withSeats(n int) testGameOption {
	return func(b *testGameBuilder) { b.players = n }
}

func withChips(chips int) testGameOption {
	return func(b *testGameBuilder) { b.chips = chips }
}

func withOptions(opts ...Option) testGameOption {
	return func(b *testGameBuilder) { b.opts = append(b.opts, opts...) }
}

// newTestGame creates an initialised game with sensible defaults: heads-up,
// 200 chips each, blinds 1/2 and undo enabled.
func newTestGame(t *testing.T, opts ...testGameOption) *Game {
	t.Helper()

	b := &testGameBuilder{seed: 42, players: 2, chips: 200}
	for _, opt := range opts {
		opt(b)
	}

	gameOpts := append([]Option{WithBlinds(1, 2), WithStepBack(true)}, b.opts...)
	g := NewGame(randutil.New(b.seed), gameOpts...)
	dealer := b.dealer
	require.NoError(t, g.Configure(Config{PlayerCount: b.players, ChipsForEach: b.chips, DealerID: &dealer}))
	_, _, err := g.InitGame()
	require.NoError(t, err)
	return g
}

// mustStep applies an action and fails the test on error
func mustStep(t *testing.T, g *Game, action Action, size int) int {
	t.Helper()
	_, next, err := g.Step(action, size)
	require.NoError(t, err)
	return next
}

// totalChips sums every seat's committed and remaining chips
func totalChips(g *Game) int {
	total := 0
	for _, p := range g.players {
		total += p.inChips + p.remainedChips
	}
	return total
}

// testCards parses a card string such as "AhKd" and fails the test on error
func testCards(t *testing.T, s string) []poker.Card {
	t.Helper()
	cards, err := poker.ParseCards(s)
	require.NoError(t, err)
	return cards
}
