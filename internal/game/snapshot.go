package game

import (
	rand "math/rand/v2"

	"github.com/lox/solverbuddy/poker"
)

// snapshot is a self-contained copy of every field Step mutates. Entries own
// their data: nothing in a snapshot aliases live game state.
type snapshot struct {
	round        *Round
	pointer      int
	roundCounter int
	dealer       *poker.Dealer
	publicCards  []poker.Card
	players      []*Player
	actions      []ActionRecord
	stage        Stage
}

func (g *Game) snapshot() snapshot {
	s := snapshot{
		round:        g.round.clone(),
		pointer:      g.pointer,
		roundCounter: g.roundCounter,
		publicCards:  append([]poker.Card(nil), g.publicCards...),
		players:      clonePlayers(g.players),
		actions:      append([]ActionRecord(nil), g.actions...),
		stage:        g.stage,
	}
	if g.dealer != nil {
		s.dealer = g.dealer.Clone()
	}
	return s
}

// restore replaces the live state with s. The caller must not reuse s.
func (g *Game) restore(s snapshot) {
	g.round = s.round
	g.pointer = s.pointer
	g.roundCounter = s.roundCounter
	g.dealer = s.dealer
	g.publicCards = s.publicCards
	g.players = s.players
	g.actions = s.actions
	g.stage = s.stage
}

func (s snapshot) clone() snapshot {
	cp := s
	cp.round = s.round.clone()
	cp.publicCards = append([]poker.Card(nil), s.publicCards...)
	cp.players = clonePlayers(s.players)
	cp.actions = append([]ActionRecord(nil), s.actions...)
	if s.dealer != nil {
		cp.dealer = s.dealer.Clone()
	}
	return cp
}

func clonePlayers(players []*Player) []*Player {
	out := make([]*Player, len(players))
	for i, p := range players {
		out[i] = p.clone()
	}
	return out
}

// Clone returns an independent deep copy of the game, including its undo
// history. The copy shares the random source, so concurrent clones should be
// given their own via Reseed.
func (g *Game) Clone() *Game {
	cp := *g
	if g.configuredDealer != nil {
		d := *g.configuredDealer
		cp.configuredDealer = &d
	}
	if g.started {
		s := g.snapshot()
		cp.restore(s)
	}
	cp.history = make([]snapshot, len(g.history))
	for i, h := range g.history {
		cp.history[i] = h.clone()
	}
	return &cp
}

// Reseed replaces the random source used for future dealer selection and dealing.
func (g *Game) Reseed(rng *rand.Rand) {
	if rng == nil {
		panic("rng is required")
	}
	g.rng = rng
}
