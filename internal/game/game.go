package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/lox/solverbuddy/poker"
)

// Stage is the overall phase of the hand
type Stage int

const (
	Preflop Stage = iota
	Flop
	Turn
	River
	EndHidden
	Showdown
)

func (s Stage) String() string {
	if s < Preflop || s > Showdown {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return [...]string{"preflop", "flop", "turn", "river", "end_hidden", "showdown"}[s]
}

// MarshalText encodes the stage by name.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// stageFor maps a street counter onto a stage, capping at Showdown.
func stageFor(roundCounter int) Stage {
	if roundCounter >= int(Showdown) {
		return Showdown
	}
	return Stage(roundCounter)
}

// ActionRecord is one applied step, kept for hand histories.
type ActionRecord struct {
	Seat     int
	Position Position
	Action   Action
	// Size is the requested amount for Bet and Raise
	Size int
	// Committed is the number of chips that actually moved into the pot
	Committed int
	// StreetTotal is the round's street commitment for the seat after the action.
	// It can exceed the chips actually put in when a bet was clamped to the stack.
	StreetTotal int
	Street      int
}

// Game orchestrates one hand of no-limit hold'em. It owns the players and the
// live Round; the Round only ever mutates the players handed to it. A Game is
// not safe for concurrent use; use Clone to give each goroutine its own.
type Game struct {
	rng    *rand.Rand
	logger zerolog.Logger
	judger Judger

	smallBlind       int
	bigBlind         int
	numPlayers       int
	chipsForEach     int
	configuredDealer *int
	dealerID         int
	allowStepBack    bool
	heroPosition     Position
	hasHero          bool

	dealer       *poker.Dealer
	players      []*Player
	round        *Round
	publicCards  []poker.Card
	stage        Stage
	roundCounter int
	pointer      int
	actions      []ActionRecord
	history      []snapshot
	started      bool
}

// NewGame creates a game. The RNG is required so dealer selection and
// dealing are reproducible; it is never consulted while resolving actions.
func NewGame(rng *rand.Rand, opts ...Option) *Game {
	if rng == nil {
		panic("rng is required for game creation")
	}

	g := &Game{
		rng:          rng,
		logger:       zerolog.Nop(),
		smallBlind:   1,
		bigBlind:     2,
		numPlayers:   2,
		chipsForEach: 100,
		heroPosition: BB,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Configure sets the seat count, uniform starting stack and dealer seat for
// the next InitGame.
func (g *Game) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.numPlayers = cfg.PlayerCount
	g.chipsForEach = cfg.ChipsForEach
	g.configuredDealer = nil
	if cfg.DealerID != nil {
		d := *cfg.DealerID
		g.configuredDealer = &d
	}
	return nil
}

// InitGame seats the players, posts the blinds and opens the preflop round.
// It returns the state of the first seat to act and that seat's index.
func (g *Game) InitGame() (State, int, error) {
	positions, err := Positions(g.numPlayers)
	if err != nil {
		return State{}, 0, err
	}
	if g.chipsForEach <= 0 {
		return State{}, 0, fmt.Errorf("chips_for_each must be > 0, got %d", g.chipsForEach)
	}

	if g.configuredDealer != nil {
		if *g.configuredDealer < 0 || *g.configuredDealer >= g.numPlayers {
			return State{}, 0, fmt.Errorf("%w: dealer %d", ErrInvalidSeat, *g.configuredDealer)
		}
		g.dealerID = *g.configuredDealer
	} else {
		g.dealerID = g.rng.IntN(g.numPlayers)
	}

	g.players = make([]*Player, g.numPlayers)
	for i := range g.players {
		g.players[i] = NewPlayer(i, positions[i], g.chipsForEach)
	}

	if g.dealer == nil || g.started {
		g.dealer = poker.NewDealer(g.rng)
	}
	g.publicCards = nil
	g.stage = Preflop
	g.actions = nil

	g.players[0].Bet(g.smallBlind)
	g.players[1].Bet(g.bigBlind)

	// heads-up the button acts first, otherwise the seat after the big blind
	g.pointer = 2
	if g.numPlayers == 2 {
		g.pointer = 1
	}

	raised := make([]int, g.numPlayers)
	for i, p := range g.players {
		raised[i] = p.inChips
	}
	g.round = NewRound(g.numPlayers, g.bigBlind)
	g.round.StartNewRound(g.pointer, raised)

	g.roundCounter = 0
	g.history = nil
	g.started = true

	g.logger.Debug().
		Int("players", g.numPlayers).
		Int("dealer", g.dealerID).
		Int("small_blind", g.smallBlind).
		Int("big_blind", g.bigBlind).
		Int("pointer", g.pointer).
		Msg("Hand initialised")

	return g.State(g.pointer), g.pointer, nil
}

// LegalActions returns the actions available to the seat at the pointer.
func (g *Game) LegalActions() []Action {
	if g.round == nil {
		return nil
	}
	return g.round.LegalActions()
}

// IsLegal reports whether action is currently allowed.
func (g *Game) IsLegal(action Action) bool {
	for _, a := range g.LegalActions() {
		if a == action {
			return true
		}
	}
	return false
}

// Step applies one action for the seat at the pointer. size is only read for
// Bet and Raise. On error the game is left exactly as it was before the call.
func (g *Game) Step(action Action, size int) (State, int, error) {
	if !g.started {
		return State{}, 0, ErrNotStarted
	}
	if !g.IsLegal(action) {
		g.logger.Warn().
			Int("seat", g.pointer).
			Stringer("action", action).
			Interface("legal", g.LegalActions()).
			Msg("Illegal action")
		return State{}, g.pointer, fmt.Errorf("%w: %s (legal: %v)", ErrIllegalAction, action, g.LegalActions())
	}

	before := g.snapshot()
	seat := g.pointer
	player := g.players[seat]
	inBefore := player.inChips

	next, err := g.round.ProceedRound(g.players, action, size)
	if err != nil {
		g.restore(before)
		return State{}, g.pointer, err
	}
	g.pointer = next
	if g.allowStepBack {
		g.history = append(g.history, before)
	}

	g.actions = append(g.actions, ActionRecord{
		Seat:        seat,
		Position:    player.Position,
		Action:      action,
		Size:        size,
		Committed:   player.inChips - inBefore,
		StreetTotal: g.round.raised[seat],
		Street:      g.roundCounter,
	})

	bypassed := g.reconcileBypass()
	over := g.round.IsOver()

	g.logger.Debug().
		Int("seat", seat).
		Stringer("action", action).
		Int("size", size).
		Int("not_raise_num", g.round.notRaiseNum).
		Int("not_playing_num", g.round.notPlayingNum).
		Bool("round_over", over).
		Msg("Action applied")

	if over {
		g.pointer = firstActive(bypassed)
		g.roundCounter++
		g.stage = stageFor(g.roundCounter)
		g.round.StartNewRound(g.pointer, nil)

		g.logger.Debug().
			Int("round_counter", g.roundCounter).
			Stringer("stage", g.stage).
			Int("pointer", g.pointer).
			Msg("Street complete")
	}

	return g.State(g.pointer), g.pointer, nil
}

// reconcileBypass marks every seat that has nothing left to decide: folded
// and all-in seats, plus a lone remaining seat that has already matched the
// street maximum.
func (g *Game) reconcileBypass() []bool {
	bypassed := make([]bool, g.numPlayers)
	remaining, last := 0, -1
	for i, p := range g.players {
		if p.status == Folded || p.status == AllIn {
			bypassed[i] = true
			continue
		}
		remaining++
		last = i
	}
	if remaining == 1 && g.round.raised[last] >= g.round.MaxRaised() {
		bypassed[last] = true
	}
	return bypassed
}

// firstActive returns the first seat from 0 that is not bypassed, or 0 when
// every seat is.
func firstActive(bypassed []bool) int {
	for i, b := range bypassed {
		if !b {
			return i
		}
	}
	return 0
}

// StepBack undoes the last Step. It returns false when there is nothing to undo.
func (g *Game) StepBack() bool {
	if len(g.history) == 0 {
		return false
	}
	last := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.restore(last)
	g.stage = stageFor(g.roundCounter)
	return true
}

// HandOver reports whether no further betting decisions remain: at most one
// seat is still in the hand, the river has been completed, or every seat is
// bypassed.
func (g *Game) HandOver() bool {
	if !g.started {
		return false
	}
	inHand := 0
	for _, p := range g.players {
		if p.status != Folded {
			inHand++
		}
	}
	if inHand <= 1 || g.roundCounter > int(River) {
		return true
	}
	for _, b := range g.reconcileBypass() {
		if !b {
			return false
		}
	}
	return true
}

// Payoffs assembles each live seat's hand from its hole cards and the public
// cards and asks the judger for per-seat chip deltas.
func (g *Game) Payoffs() ([]int, error) {
	if !g.started {
		return nil, ErrNotStarted
	}
	if g.judger == nil {
		return nil, ErrNoJudger
	}
	players := make([]Player, len(g.players))
	hands := make([][]poker.Card, len(g.players))
	for i, p := range g.players {
		players[i] = *p.clone()
		if p.InHand() {
			hand := make([]poker.Card, 0, len(p.hand)+len(g.publicCards))
			hand = append(hand, p.hand...)
			hands[i] = append(hand, g.publicCards...)
		}
	}
	payoffs, err := g.judger.JudgeGame(players, hands)
	if err != nil {
		return nil, fmt.Errorf("judge game: %w", err)
	}
	return payoffs, nil
}

// SetHoleCards assigns hole cards to a seat and removes them from the deck.
func (g *Game) SetHoleCards(seat int, cards ...poker.Card) error {
	if !g.started {
		return ErrNotStarted
	}
	if seat < 0 || seat >= len(g.players) {
		return fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	g.players[seat].hand = append([]poker.Card(nil), cards...)
	g.dealer.Deck.Remove(cards...)
	return nil
}

// AddPublicCards appends board cards supplied by the driver and removes them from the deck.
func (g *Game) AddPublicCards(cards ...poker.Card) error {
	if !g.started {
		return ErrNotStarted
	}
	if len(g.publicCards)+len(cards) > 5 {
		return fmt.Errorf("board would have %d cards", len(g.publicCards)+len(cards))
	}
	g.publicCards = append(g.publicCards, cards...)
	g.dealer.Deck.Remove(cards...)
	return nil
}

// Hero returns the seat sitting in the hero position.
func (g *Game) Hero() (*Player, bool) {
	if !g.hasHero {
		return nil, false
	}
	for _, p := range g.players {
		if p.Position == g.heroPosition {
			return p, true
		}
	}
	return nil, false
}

// Player returns the seat's player. The pointer is owned by the game.
func (g *Game) Player(seat int) (*Player, error) {
	if seat < 0 || seat >= len(g.players) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	return g.players[seat], nil
}

// Players returns copies of every seat.
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	for i, p := range g.players {
		out[i] = *p.clone()
	}
	return out
}

// Round returns the live betting round.
func (g *Game) Round() *Round { return g.round }

func (g *Game) Pointer() int { return g.pointer }
func (g *Game) RoundCounter() int { return g.roundCounter }
func (g *Game) Stage() Stage { return g.stage }
func (g *Game) NumPlayers() int { return g.numPlayers }
func (g *Game) SmallBlind() int { return g.smallBlind }
func (g *Game) BigBlind() int { return g.bigBlind }
func (g *Game) DealerID() int { return g.dealerID }
func (g *Game) HistoryDepth() int { return len(g.history) }
func (g *Game) Dealer() *poker.Dealer { return g.dealer }
func (g *Game) PublicCards() []poker.Card { return append([]poker.Card(nil), g.publicCards...) }
func (g *Game) Actions() []ActionRecord { return append([]ActionRecord(nil), g.actions...) }
func (g *Game) HeroPosition() (Position, bool) { return g.heroPosition, g.hasHero }

// StartingStacks returns the stacks every seat began the hand with.
func (g *Game) StartingStacks() []int {
	stacks := make([]int, g.numPlayers)
	for i := range stacks {
		stacks[i] = g.chipsForEach
	}
	return stacks
}
