package phh

import (
	"fmt"

	"github.com/coder/quartz"

	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/handid"
	"github.com/lox/solverbuddy/poker"
)

// Options controls how a played hand is exported.
type Options struct {
	Table string
	// HandID is generated from Clock when empty
	HandID string
	Clock  quartz.Clock
	// Players names each seat; positions are used when empty
	Players []string
	// Payoffs are the per-seat chip deltas from the judger, if the hand was settled
	Payoffs []int
}

// boardSlices gives the public cards revealed when each street opens
var boardSlices = [...][2]int{{0, 0}, {0, 3}, {3, 4}, {4, 5}}

// FromGame builds a hand history from a game's applied actions.
func FromGame(g *game.Game, opts Options) (*HandHistory, error) {
	players := g.Players()
	n := len(players)
	if n == 0 {
		return nil, fmt.Errorf("phh: %w", game.ErrNotStarted)
	}
	if opts.Payoffs != nil && len(opts.Payoffs) != n {
		return nil, fmt.Errorf("phh: got %d payoffs for %d seats", len(opts.Payoffs), n)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	hand := &HandHistory{
		Variant:           "NT",
		Table:             opts.Table,
		SeatCount:         n,
		Seats:             make([]int, n),
		Antes:             make([]int, n),
		BlindsOrStraddles: make([]int, n),
		MinBet:            g.BigBlind(),
		StartingStacks:    g.StartingStacks(),
		Players:           make([]string, n),
		HandID:            opts.HandID,
	}
	hand.BlindsOrStraddles[0] = g.SmallBlind()
	hand.BlindsOrStraddles[1] = g.BigBlind()

	for i, p := range players {
		hand.Seats[i] = i + 1
		hand.Players[i] = p.Position.String()
		if i < len(opts.Players) && opts.Players[i] != "" {
			hand.Players[i] = opts.Players[i]
		}
		hand.Actions = append(hand.Actions, fmt.Sprintf("d dh p%d %s", i+1, FormatCards(p.Hand(), 2)))
	}

	board := g.PublicCards()
	hand.Board = cardStrings(board)
	// chips each seat has actually put in on the current street; a bet the
	// stack could not cover is recorded at what was committed
	put := make([]int, n)
	put[0] = min(g.SmallBlind(), hand.StartingStacks[0])
	put[1] = min(g.BigBlind(), hand.StartingStacks[1])
	street := 0
	for _, rec := range g.Actions() {
		for street < rec.Street {
			street++
			clear(put)
			if dealt, ok := boardFor(board, street); ok {
				hand.Actions = append(hand.Actions, "d db "+dealt)
			}
		}
		put[rec.Seat] += rec.Committed
		if line, ok := FormatAction(rec.Seat, rec.Action, put[rec.Seat]); ok {
			hand.Actions = append(hand.Actions, line)
		}
	}
	// board cards for streets that were reached but never bet
	for street < min(g.RoundCounter(), len(boardSlices)-1) {
		street++
		if dealt, ok := boardFor(board, street); ok {
			hand.Actions = append(hand.Actions, "d db "+dealt)
		}
	}

	hand.FinishingStacks = make([]int, n)
	for i, p := range players {
		hand.FinishingStacks[i] = p.RemainedChips()
	}
	if opts.Payoffs != nil {
		hand.Winnings = make([]int, n)
		for i, p := range players {
			hand.Winnings[i] = opts.Payoffs[i] + p.InChips()
			hand.FinishingStacks[i] += hand.Winnings[i]
		}
	}

	now := opts.Clock.Now().UTC()
	if hand.HandID == "" {
		hand.HandID = handid.NewGenerator(opts.Clock, nil).Generate()
	}
	hand.Timestamp = now
	hand.Time = now.Format("15:04:05")
	hand.TimeZone = "UTC"
	hand.Day = now.Day()
	hand.Month = int(now.Month())
	hand.Year = now.Year()
	hand.Metadata = map[string]any{
		"dealer": g.DealerID(),
		"stage":  g.Stage().String(),
	}

	return hand, nil
}

func boardFor(board []poker.Card, street int) (string, bool) {
	if street <= 0 || street >= len(boardSlices) {
		return "", false
	}
	lo, hi := boardSlices[street][0], boardSlices[street][1]
	if len(board) < hi {
		return "", false
	}
	return FormatCards(board[lo:hi], 0), true
}
