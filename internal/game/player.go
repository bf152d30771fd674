package game

import (
	"fmt"

	"github.com/lox/solverbuddy/poker"
)

// PlayerStatus tracks whether a seat is still contesting the hand
type PlayerStatus int

const (
	Alive PlayerStatus = iota
	Folded
	AllIn
)

func (s PlayerStatus) String() string {
	switch s {
	case Alive:
		return "alive"
	case Folded:
		return "folded"
	case AllIn:
		return "allin"
	default:
		return fmt.Sprintf("PlayerStatus(%d)", int(s))
	}
}

// MarshalText encodes the status by name.
func (s PlayerStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Player is the chip ledger for one seat. Chips only move through Bet.
type Player struct {
	Seat     int
	Position Position

	status        PlayerStatus
	inChips       int
	remainedChips int
	hand          []poker.Card
}

// NewPlayer seats a player with a starting stack.
func NewPlayer(seat int, pos Position, chips int) *Player {
	return &Player{
		Seat:          seat,
		Position:      pos,
		remainedChips: chips,
	}
}

// Bet commits up to chips from the stack and returns the amount committed.
// Requests larger than the stack are truncated to the stack.
func (p *Player) Bet(chips int) int {
	quantity := max(min(chips, p.remainedChips), 0)
	p.inChips += quantity
	p.remainedChips -= quantity
	return quantity
}

// Status returns the seat status
func (p *Player) Status() PlayerStatus { return p.status }

// InChips returns the chips this seat has committed to the pot
func (p *Player) InChips() int { return p.inChips }

// RemainedChips returns the chips this seat can still wager
func (p *Player) RemainedChips() int { return p.remainedChips }

// Hand returns a copy of the seat's hole cards
func (p *Player) Hand() []poker.Card {
	return append([]poker.Card(nil), p.hand...)
}

// InHand reports whether the seat can still win chips at showdown
func (p *Player) InHand() bool {
	return p.status == Alive || p.status == AllIn
}

func (p *Player) clone() *Player {
	cp := *p
	cp.hand = append([]poker.Card(nil), p.hand...)
	return &cp
}
