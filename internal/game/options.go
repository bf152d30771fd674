package game

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/solverbuddy/poker"
)

// Config is the per-hand table configuration accepted by Configure.
type Config struct {
	PlayerCount  int
	ChipsForEach int
	// DealerID selects the dealer seat; nil picks one at random.
	DealerID *int
}

// Validate checks the configuration against the supported table sizes.
func (c Config) Validate() error {
	if c.PlayerCount < MinPlayers || c.PlayerCount > MaxPlayers {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidPlayerCount, c.PlayerCount, MinPlayers, MaxPlayers)
	}
	if c.ChipsForEach <= 0 {
		return fmt.Errorf("chips_for_each must be > 0, got %d", c.ChipsForEach)
	}
	if c.DealerID != nil && (*c.DealerID < 0 || *c.DealerID >= c.PlayerCount) {
		return fmt.Errorf("%w: dealer %d", ErrInvalidSeat, *c.DealerID)
	}
	return nil
}

// Option configures a Game during creation.
type Option func(*Game)

// WithLogger sets the logger used for step diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

// WithBlinds sets the small and big blind.
func WithBlinds(small, big int) Option {
	return func(g *Game) {
		g.smallBlind = small
		g.bigBlind = big
	}
}

// WithPlayers sets the seat count and a uniform starting stack.
func WithPlayers(n, chips int) Option {
	return func(g *Game) {
		g.numPlayers = n
		g.chipsForEach = chips
	}
}

// WithDealer fixes the dealer seat.
func WithDealer(seat int) Option {
	return func(g *Game) { g.configuredDealer = &seat }
}

// WithStepBack enables snapshots so StepBack can undo actions.
func WithStepBack(enabled bool) Option {
	return func(g *Game) { g.allowStepBack = enabled }
}

// WithHero marks the position the driving user is sitting in.
func WithHero(pos Position) Option {
	return func(g *Game) {
		g.heroPosition = pos
		g.hasHero = true
	}
}

// WithJudger sets the collaborator that settles finished hands.
func WithJudger(j Judger) Option {
	return func(g *Game) { g.judger = j }
}

// WithDealerDeck supplies a pre-built dealer, for example one with hero cards removed.
func WithDealerDeck(d *poker.Dealer) Option {
	return func(g *Game) { g.dealer = d }
}
