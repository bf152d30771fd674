// Package simulator plays random rollouts of a configured hand in parallel.
// Every rollout clones the prototype game, so workers never share state.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/randutil"
	"github.com/lox/solverbuddy/internal/statistics"
	"github.com/lox/solverbuddy/poker"
)

// maxSteps bounds a single rollout; random play always settles well before it
const maxSteps = 1000

// ErrNoPrototype is returned when Run is called without an initialised game
var ErrNoPrototype = errors.New("prototype game has not been initialised")

// Config holds configuration for running simulations
type Config struct {
	Rollouts int
	Workers  int
	Seed     int64
	// Streets is how many betting streets to play before settling; 0 plays the whole hand
	Streets int
	Logger  zerolog.Logger
}

// Simulator runs rollouts from a prototype game
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = 1
	}
	if config.Streets <= 0 || config.Streets > int(game.River)+1 {
		config.Streets = int(game.River) + 1
	}
	return &Simulator{config: config}
}

// Run plays the configured number of rollouts from proto, which must be
// initialised and carry a judger. Rollout i always uses the same derived
// seed, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context, proto *game.Game) (*statistics.Statistics, error) {
	if proto == nil || len(proto.Players()) == 0 {
		return nil, ErrNoPrototype
	}
	if s.config.Rollouts <= 0 {
		return nil, fmt.Errorf("rollouts must be > 0, got %d", s.config.Rollouts)
	}

	start := time.Now()
	workers := min(s.config.Workers, s.config.Rollouts)
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *statistics.Statistics, workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := w; i < s.config.Rollouts; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := s.rollout(proto, i)
				if err != nil {
					return fmt.Errorf("rollout %d (seed %d): %w", i, s.config.Seed, err)
				}
				stats.Add(r)
			}

			select {
			case results <- stats:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	total := &statistics.Statistics{}
	for stats := range results {
		total.Merge(stats)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := total.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info().
		Int("rollouts", total.Rollouts).
		Int("workers", workers).
		Int("showdowns", total.Showdowns).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation complete")

	return total, nil
}

// rollout plays one random continuation of proto
func (s *Simulator) rollout(proto *game.Game, index int) (statistics.Rollout, error) {
	rng := randutil.Derive(s.config.Seed, index)
	g := proto.Clone()
	g.Reseed(rng)

	deck := poker.NewDeck(rng)
	deck.Remove(g.PublicCards()...)
	for _, p := range g.Players() {
		deck.Remove(p.Hand()...)
	}
	for _, p := range g.Players() {
		if len(p.Hand()) > 0 {
			continue
		}
		hole, err := dealN(deck, 2)
		if err != nil {
			return statistics.Rollout{}, err
		}
		if err := g.SetHoleCards(p.Seat, hole...); err != nil {
			return statistics.Rollout{}, err
		}
	}

	chips := totalChips(g)
	for steps := 0; !g.HandOver() && g.RoundCounter() < s.config.Streets; steps++ {
		if steps >= maxSteps {
			return statistics.Rollout{}, fmt.Errorf("hand did not settle after %d steps", maxSteps)
		}
		action, size := chooseAction(g, rng)
		if _, _, err := g.Step(action, size); err != nil {
			return statistics.Rollout{}, err
		}
		if got := totalChips(g); got != chips {
			return statistics.Rollout{}, fmt.Errorf("chip total changed from %d to %d", chips, got)
		}
	}

	board, err := dealN(deck, 5-len(g.PublicCards()))
	if err != nil {
		return statistics.Rollout{}, err
	}
	if err := g.AddPublicCards(board...); err != nil {
		return statistics.Rollout{}, err
	}

	payoffs, err := g.Payoffs()
	if err != nil {
		return statistics.Rollout{}, err
	}

	r := statistics.Rollout{Index: index, Payoffs: payoffs, Streets: g.RoundCounter()}
	net, contenders := 0, 0
	for i, p := range g.Players() {
		r.Positions = append(r.Positions, p.Position)
		r.Committed = append(r.Committed, p.InChips())
		net += payoffs[i]
		if p.InHand() {
			contenders++
		}
	}
	if net != 0 {
		return statistics.Rollout{}, fmt.Errorf("payoffs sum to %d", net)
	}
	r.Showdown = contenders > 1

	s.config.Logger.Debug().
		Int("rollout", index).
		Ints("payoffs", payoffs).
		Int("streets", r.Streets).
		Bool("showdown", r.Showdown).
		Msg("Rollout complete")

	return r, nil
}

// chooseAction picks a uniformly random legal action. A seat with nothing
// behind only checks or calls. Raise is dropped when the stack cannot
// cover more than the call, so every bet or raise lifts the street maximum.
func chooseAction(g *game.Game, rng *rand.Rand) (game.Action, int) {
	seat := g.Pointer()
	p, err := g.Player(seat)
	if err != nil || p.RemainedChips() == 0 {
		if g.IsLegal(game.Check) {
			return game.Check, 0
		}
		return game.Call, 0
	}

	raised := g.Round().Raised()
	diff := slices.Max(raised) - raised[seat]
	stack := p.RemainedChips()

	legal := g.LegalActions()
	if diff >= stack {
		legal = slices.DeleteFunc(legal, func(a game.Action) bool { return a == game.Raise })
	}
	action := legal[rng.IntN(len(legal))]
	if action.IsAggressive() {
		return action, raiseSize(diff, minIncrement(raised, g.Round().InitRaiseAmount()), stack, rng)
	}
	return action, 0
}

// raiseSize draws the chips to add for a bet or raise: the call plus at least
// one full increment, up to the whole stack. Stacks too short for a full
// raise go all in.
func raiseSize(diff, increment, stack int, rng *rand.Rand) int {
	least := diff + increment
	if least >= stack {
		return stack
	}
	return least + rng.IntN(stack-least+1)
}

// minIncrement is the smallest legal raise increment on the street: the last
// raise (the gap between the top commitment and the next one below it), never
// less than the opening amount.
func minIncrement(raised []int, opening int) int {
	highest := slices.Max(raised)
	below := 0
	for _, v := range raised {
		if v < highest && v > below {
			below = v
		}
	}
	return max(highest-below, opening, 1)
}

func dealN(deck *poker.Deck, n int) ([]poker.Card, error) {
	cards := make([]poker.Card, 0, n)
	for i := 0; i < n; i++ {
		c, ok := deck.Deal()
		if !ok {
			return nil, poker.ErrDeckEmpty
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func totalChips(g *game.Game) int {
	total := 0
	for _, p := range g.Players() {
		total += p.InChips() + p.RemainedChips()
	}
	return total
}

// WriteSummary prints a per-position breakdown of a simulation in big blinds
func WriteSummary(w io.Writer, stats *statistics.Statistics, bigBlind int) {
	bb := float64(max(bigBlind, 1))

	fmt.Fprintf(w, "Rollouts: %d (%d to showdown)\n", stats.Rollouts, stats.Showdowns)
	fmt.Fprintf(w, "Pot: mean %.2f bb, median %.2f bb, max %.2f bb\n",
		stats.MeanPot()/bb, stats.PotPercentile(0.5)/bb, float64(stats.MaxPot)/bb)

	for pos := game.SB; pos <= game.BTN; pos++ {
		ps := stats.Position(pos)
		if ps.Hands == 0 {
			continue
		}
		low, high := ps.ConfidenceInterval95()
		fmt.Fprintf(w, "%-4s %6d hands  %+8.3f bb/hand  95%% CI [%+.3f, %+.3f]  won %5.1f%%\n",
			pos, ps.Hands, ps.Mean()/bb, low/bb, high/bb, 100*float64(ps.Wins)/float64(ps.Hands))
	}
}
