// Package statistics aggregates the outcomes of simulated hands.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/solverbuddy/internal/game"
)

// Rollout is the outcome of one simulated hand
type Rollout struct {
	Index     int
	Positions []game.Position
	// Payoffs are per-seat chip deltas and sum to zero
	Payoffs []int
	// Committed is the chips each seat put into the pot
	Committed []int
	Showdown  bool
	// Streets is the street counter the hand finished on
	Streets int
}

// Pot returns the chips committed by every seat
func (r Rollout) Pot() int {
	pot := 0
	for _, c := range r.Committed {
		pot += c
	}
	return pot
}

// PositionStats tracks results for one table position
type PositionStats struct {
	Hands     int
	Wins      int
	Sum       float64
	SumSq     float64
	Committed int
}

// Mean returns the average payoff in chips
func (p PositionStats) Mean() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.Sum / float64(p.Hands)
}

// Variance returns the sample variance of the payoffs
func (p PositionStats) Variance() float64 {
	if p.Hands < 2 {
		return 0
	}
	mean := p.Mean()
	return (p.SumSq - float64(p.Hands)*mean*mean) / float64(p.Hands-1)
}

// StdDev returns the sample standard deviation of the payoffs
func (p PositionStats) StdDev() float64 {
	return math.Sqrt(p.Variance())
}

// StdError returns the standard error of the mean
func (p PositionStats) StdError() float64 {
	if p.Hands == 0 {
		return 0
	}
	return p.StdDev() / math.Sqrt(float64(p.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (p PositionStats) ConfidenceInterval95() (float64, float64) {
	mean := p.Mean()
	margin := 1.96 * p.StdError()
	return mean - margin, mean + margin
}

func (p *PositionStats) merge(o PositionStats) {
	p.Hands += o.Hands
	p.Wins += o.Wins
	p.Sum += o.Sum
	p.SumSq += o.SumSq
	p.Committed += o.Committed
}

// Statistics accumulates rollouts. The zero value is ready to use; it is not
// safe for concurrent use, so workers keep their own and Merge at the end.
type Statistics struct {
	Rollouts  int
	Showdowns int
	// Net is the sum of every payoff, zero while the ledger balances
	Net      int
	TotalPot int
	MaxPot   int
	// Streets counts hands by the street they finished on
	Streets [game.Showdown + 1]int

	Positions [game.BTN + 1]PositionStats
	pots      []int
}

// Add records one rollout
func (s *Statistics) Add(r Rollout) {
	s.Rollouts++
	if r.Showdown {
		s.Showdowns++
	}
	pot := r.Pot()
	s.TotalPot += pot
	s.MaxPot = max(s.MaxPot, pot)
	s.pots = append(s.pots, pot)
	s.Streets[min(r.Streets, int(game.Showdown))]++

	for seat, payoff := range r.Payoffs {
		s.Net += payoff
		if seat >= len(r.Positions) || r.Positions[seat] < game.SB || r.Positions[seat] > game.BTN {
			continue
		}
		ps := &s.Positions[r.Positions[seat]]
		ps.Hands++
		if payoff > 0 {
			ps.Wins++
		}
		ps.Sum += float64(payoff)
		ps.SumSq += float64(payoff) * float64(payoff)
		if seat < len(r.Committed) {
			ps.Committed += r.Committed[seat]
		}
	}
}

// Merge folds o into s
func (s *Statistics) Merge(o *Statistics) {
	s.Rollouts += o.Rollouts
	s.Showdowns += o.Showdowns
	s.Net += o.Net
	s.TotalPot += o.TotalPot
	s.MaxPot = max(s.MaxPot, o.MaxPot)
	s.pots = append(s.pots, o.pots...)
	for i := range s.Streets {
		s.Streets[i] += o.Streets[i]
	}
	for i := range s.Positions {
		s.Positions[i].merge(o.Positions[i])
	}
}

// Position returns the stats for one position
func (s *Statistics) Position(p game.Position) PositionStats {
	if p < game.SB || p > game.BTN {
		return PositionStats{}
	}
	return s.Positions[p]
}

// MeanPot returns the average pot size in chips
func (s *Statistics) MeanPot() float64 {
	if s.Rollouts == 0 {
		return 0
	}
	return float64(s.TotalPot) / float64(s.Rollouts)
}

// PotPercentile returns the pot size at the given percentile (0.0 to 1.0)
func (s *Statistics) PotPercentile(p float64) float64 {
	if len(s.pots) == 0 {
		return 0
	}
	sorted := make([]int, len(s.pots))
	copy(sorted, s.pots)
	sort.Ints(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}
	weight := index - float64(lower)
	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

// IsLedgerBalanced reports whether payoffs sum to zero and the per-position
// breakdown accounts for every chip.
func (s *Statistics) IsLedgerBalanced() bool {
	var positional float64
	for _, ps := range s.Positions {
		positional += ps.Sum
	}
	return s.Net == 0 && math.Abs(positional) <= 1e-6
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Rollouts <= 0 {
		return fmt.Errorf("invalid rollout count: %d", s.Rollouts)
	}
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: net payoff %d", s.Net)
	}
	if s.Showdowns > s.Rollouts {
		return fmt.Errorf("showdowns (%d) exceed rollouts (%d)", s.Showdowns, s.Rollouts)
	}
	streets := 0
	for _, n := range s.Streets {
		streets += n
	}
	if streets != s.Rollouts {
		return fmt.Errorf("street histogram total (%d) does not match rollouts (%d)", streets, s.Rollouts)
	}
	return nil
}
