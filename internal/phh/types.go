package phh

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformed is returned for hand histories whose per-seat fields disagree
var ErrMalformed = errors.New("phh: malformed hand history")

// HandHistory is one no-limit hand in PHH form. Per-seat slices are indexed
// by engine seat, so p1 is seat 0 (the first blind).
type HandHistory struct {
	Variant           string         `toml:"variant"`
	Table             string         `toml:"table,omitempty"`
	SeatCount         int            `toml:"seat_count,omitempty"`
	Seats             []int          `toml:"seats,omitempty"`
	Antes             []int          `toml:"antes"`
	BlindsOrStraddles []int          `toml:"blinds_or_straddles"`
	MinBet            int            `toml:"min_bet"`
	StartingStacks    []int          `toml:"starting_stacks"`
	FinishingStacks   []int          `toml:"finishing_stacks,omitempty"`
	Winnings          []int          `toml:"winnings,omitempty"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Time              string         `toml:"time,omitempty"`
	TimeZone          string         `toml:"time_zone,omitempty"`
	Day               int            `toml:"day,omitempty"`
	Month             int            `toml:"month,omitempty"`
	Year              int            `toml:"year,omitempty"`
	Metadata          map[string]any `toml:"metadata,omitempty"`

	// Board and Timestamp are kept for callers and never serialised
	Board     []string  `toml:"-"`
	Timestamp time.Time `toml:"-"`
}

// Validate checks that every per-seat field has one entry per seat.
// Optional fields may be empty.
func (h *HandHistory) Validate() error {
	n := len(h.StartingStacks)
	if n == 0 {
		return fmt.Errorf("%w: no starting stacks", ErrMalformed)
	}
	if h.SeatCount != 0 && h.SeatCount != n {
		return fmt.Errorf("%w: seat_count %d but %d starting stacks", ErrMalformed, h.SeatCount, n)
	}

	fields := []struct {
		name     string
		length   int
		optional bool
	}{
		{"antes", len(h.Antes), false},
		{"blinds_or_straddles", len(h.BlindsOrStraddles), false},
		{"seats", len(h.Seats), true},
		{"finishing_stacks", len(h.FinishingStacks), true},
		{"winnings", len(h.Winnings), true},
		{"players", len(h.Players), true},
	}
	for _, f := range fields {
		if f.optional && f.length == 0 {
			continue
		}
		if f.length != n {
			return fmt.Errorf("%w: %s has %d entries for %d seats", ErrMalformed, f.name, f.length, n)
		}
	}
	return nil
}
