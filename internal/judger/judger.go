// Package judger settles finished hands: it splits the committed chips into
// side pots, ranks the contending hands and reports each seat's chip delta.
package judger

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/poker"
)

// ErrNoContenders is returned when every seat has folded
var ErrNoContenders = errors.New("no seat is contending the pot")

// Judger ranks showdown hands with the paulhankin evaluator.
type Judger struct {
	logger zerolog.Logger
}

var _ game.Judger = (*Judger)(nil)

// Option configures a Judger
type Option func(*Judger)

// WithLogger sets the logger used for settlement diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(j *Judger) { j.logger = logger }
}

// New creates a judger
func New(opts ...Option) *Judger {
	j := &Judger{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// JudgeGame settles the hand. hands[i] is nil for a folded seat. Every pot is
// split between its best eligible hands; odd chips go to the lowest seats.
// The returned deltas always sum to zero.
func (j *Judger) JudgeGame(players []game.Player, hands [][]poker.Card) ([]int, error) {
	if len(hands) != len(players) {
		return nil, fmt.Errorf("got %d hands for %d players", len(hands), len(players))
	}

	contributions := make([]int, len(players))
	contending := make([]bool, len(players))
	contenders := 0
	for i, p := range players {
		contributions[i] = p.InChips()
		if hands[i] != nil && p.InHand() {
			contending[i] = true
			contenders++
		}
	}
	if contenders == 0 {
		return nil, ErrNoContenders
	}

	// an uncontested pot needs no cards
	scores := make([]int16, len(players))
	if contenders > 1 {
		for i, ok := range contending {
			if !ok {
				continue
			}
			score, err := Score(hands[i])
			if err != nil {
				return nil, fmt.Errorf("seat %d: %w", i, err)
			}
			scores[i] = score
		}
	}

	pots := BuildPots(contributions, contending)
	winnings := make([]int, len(players))
	for n, pot := range pots {
		winners := bestSeats(pot.Eligible, scores)
		share, odd := pot.Amount/len(winners), pot.Amount%len(winners)
		for k, seat := range winners {
			winnings[seat] += share
			if k < odd {
				winnings[seat]++
			}
		}

		j.logger.Debug().
			Int("pot", n).
			Int("amount", pot.Amount).
			Ints("eligible", pot.Eligible).
			Ints("winners", winners).
			Msg("Pot awarded")
	}

	payoffs := make([]int, len(players))
	for i := range payoffs {
		payoffs[i] = winnings[i] - contributions[i]
	}
	return payoffs, nil
}

// bestSeats returns the eligible seats holding the top score, in seat order
func bestSeats(eligible []int, scores []int16) []int {
	var winners []int
	var best int16
	for _, seat := range eligible {
		switch {
		case len(winners) == 0 || scores[seat] > best:
			best = scores[seat]
			winners = []int{seat}
		case scores[seat] == best:
			winners = append(winners, seat)
		}
	}
	return winners
}
