package game

import (
	"encoding/json"

	"github.com/lox/solverbuddy/poker"
)

// DumpView is the diagnostic projection written by Dump. It is not a stable
// interchange format.
type DumpView struct {
	Stage        Stage        `json:"stage"`
	ActingSeat   int          `json:"acting_seat"`
	RoundCounter int          `json:"round_counter"`
	PublicCards  string       `json:"public_cards"`
	Players      []DumpPlayer `json:"players"`
}

// DumpPlayer is one seat in a DumpView.
type DumpPlayer struct {
	Position Position     `json:"position"`
	Hand     string       `json:"hand"`
	Status   PlayerStatus `json:"status"`
	Chips    int          `json:"chips"`
	IsHero   bool         `json:"is_hero,omitempty"`
}

// View builds the dump projection. With liveOnly set, folded seats are omitted.
func (g *Game) View(liveOnly bool) DumpView {
	v := DumpView{
		Stage:        g.stage,
		ActingSeat:   g.pointer,
		RoundCounter: g.roundCounter,
		PublicCards:  poker.FormatCards(g.publicCards),
		Players:      []DumpPlayer{},
	}
	for _, p := range g.players {
		if liveOnly && p.status == Folded {
			continue
		}
		v.Players = append(v.Players, DumpPlayer{
			Position: p.Position,
			Hand:     poker.FormatCards(p.hand),
			Status:   p.status,
			Chips:    p.remainedChips,
			IsHero:   g.hasHero && p.Position == g.heroPosition,
		})
	}
	return v
}

// Dump serialises View(liveOnly) as JSON.
func (g *Game) Dump(liveOnly bool) ([]byte, error) {
	return json.Marshal(g.View(liveOnly))
}
