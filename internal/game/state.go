package game

import "github.com/lox/solverbuddy/poker"

// State is the read-only view of the hand from one seat.
type State struct {
	Seat         int          `json:"seat"`
	Hand         []poker.Card `json:"hand"`
	PublicCards  []poker.Card `json:"public_cards"`
	AllChips     []int        `json:"all_chips"`
	MyChips      int          `json:"my_chips"`
	LegalActions []Action     `json:"legal_actions"`
	// Stakes holds every seat's remaining stack
	Stakes        []int `json:"stakes"`
	CurrentPlayer int   `json:"current_player"`
	Pot           int   `json:"pot"`
	Stage         Stage `json:"stage"`
}

// State assembles the view for seat. The dealer's pot aggregate is refreshed
// from the seats' committed chips.
func (g *Game) State(seat int) State {
	if !g.started || seat < 0 || seat >= len(g.players) {
		return State{Seat: seat}
	}

	chips := make([]int, len(g.players))
	stakes := make([]int, len(g.players))
	pot := 0
	for i, p := range g.players {
		chips[i] = p.inChips
		stakes[i] = p.remainedChips
		pot += p.inChips
	}
	g.dealer.Pot = pot

	p := g.players[seat]
	return State{
		Seat:          seat,
		Hand:          p.Hand(),
		PublicCards:   g.PublicCards(),
		AllChips:      chips,
		MyChips:       p.inChips,
		LegalActions:  g.LegalActions(),
		Stakes:        stakes,
		CurrentPlayer: g.pointer,
		Pot:           pot,
		Stage:         g.stage,
	}
}
