package game

import (
	"fmt"
	"slices"
)

// Round is the betting state for one street. Its phase is implied by the
// counters: the street is settled once every seat has either matched the
// last aggression, checked, folded or gone all-in.
type Round struct {
	numPlayers      int
	initRaiseAmount int

	pointer int
	// raised is the cumulative commitment per seat for this street
	raised []int
	// notRaiseNum counts seats settled against the current aggression
	notRaiseNum int
	// notPlayingNum counts seats that are folded or all-in
	notPlayingNum int
}

// NewRound creates the betting round for a hand of numPlayers seats.
func NewRound(numPlayers, initRaiseAmount int) *Round {
	return &Round{
		numPlayers:      numPlayers,
		initRaiseAmount: initRaiseAmount,
		raised:          make([]int, numPlayers),
	}
}

// StartNewRound resets the street. A nil raised vector starts every seat at zero;
// preflop passes the posted blinds.
func (r *Round) StartNewRound(pointer int, raised []int) {
	r.pointer = pointer
	r.notRaiseNum = 0
	if len(raised) > 0 {
		r.raised = append([]int(nil), raised...)
	} else {
		r.raised = make([]int, r.numPlayers)
	}
}

// ValidateBetSize checks a bet or raise size. No sizing rules exist yet, so it always fails.
func (r *Round) ValidateBetSize(size int) error {
	return fmt.Errorf("%w: size %d", ErrBetSizeUnvalidated, size)
}

// ProceedRound applies one action for the seat at the pointer and returns the
// next pointer. Sizes for Bet and Raise are not validated.
func (r *Round) ProceedRound(players []*Player, action Action, size int) (int, error) {
	player := players[r.pointer]

	switch action {
	case Check:
		r.notRaiseNum++

	case Call:
		highest := r.MaxRaised()
		diff := highest - r.raised[r.pointer]
		r.raised[r.pointer] = highest
		player.Bet(diff)
		r.notRaiseNum++

	case Bet, Raise:
		r.raised[r.pointer] += size
		player.Bet(size)
		r.notRaiseNum = 1

	case Fold:
		// an all-in seat is already counted as not playing and keeps its status
		if player.status == Alive {
			player.status = Folded
			r.notPlayingNum++
		}

	default:
		return r.pointer, fmt.Errorf("%w: %d", ErrInvalidAction, int(action))
	}

	if player.remainedChips < 0 {
		return r.pointer, fmt.Errorf("%w: seat %d has %d", ErrNegativeStack, player.Seat, player.remainedChips)
	}

	if player.remainedChips == 0 && player.status == Alive {
		player.status = AllIn
		r.notPlayingNum++
		// the action above already counted this seat as settled
		r.notRaiseNum--
	}

	r.pointer = r.nextUnfolded(players, r.pointer)
	return r.pointer, nil
}

// nextUnfolded returns the first seat after from that has not folded.
// If every seat has folded the pointer stays where it is.
func (r *Round) nextUnfolded(players []*Player, from int) int {
	for i := 1; i <= r.numPlayers; i++ {
		seat := (from + i) % r.numPlayers
		if players[seat].status != Folded {
			return seat
		}
	}
	return from
}

// LegalActions returns the no-limit actions available at the pointer.
func (r *Round) LegalActions() []Action {
	// folding is always allowed
	actions := []Action{Fold}
	if r.MaxRaised() == 0 {
		actions = append(actions, Check, Bet)
	} else {
		actions = append(actions, Call, Raise)
	}
	return actions
}

// IsOver reports whether the street is settled.
func (r *Round) IsOver() bool {
	return r.notRaiseNum+r.notPlayingNum == r.numPlayers
}

// MaxRaised returns the largest street commitment.
func (r *Round) MaxRaised() int {
	if len(r.raised) == 0 {
		return 0
	}
	return slices.Max(r.raised)
}

// Raised returns a copy of the per-seat street commitments.
func (r *Round) Raised() []int { return append([]int(nil), r.raised...) }

// Pointer returns the seat expected to act.
func (r *Round) Pointer() int { return r.pointer }

// NotRaiseNum returns the number of seats settled against the current aggression.
func (r *Round) NotRaiseNum() int { return r.notRaiseNum }

// NotPlayingNum returns the number of folded or all-in seats.
func (r *Round) NotPlayingNum() int { return r.notPlayingNum }

// InitRaiseAmount returns the minimum raise a street opens with.
func (r *Round) InitRaiseAmount() int { return r.initRaiseAmount }

func (r *Round) clone() *Round {
	cp := *r
	cp.raised = append([]int(nil), r.raised...)
	return &cp
}
