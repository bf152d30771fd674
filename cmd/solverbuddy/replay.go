package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/solverbuddy/internal/fileutil"
	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/judger"
	"github.com/lox/solverbuddy/internal/phh"
)

// ReplayCmd applies a scripted action sequence and prints the resulting state
type ReplayCmd struct {
	Script string `arg:"" help:"Comma separated actions, e.g. \"r:6,c,x\""`

	TableFlags `embed:""`

	Live bool   `help:"Omit folded seats from the dump"`
	PHH  string `name:"phh" type:"path" help:"Write the hand history to this file"`
}

// scriptStep is one parsed entry of a replay script
type scriptStep struct {
	action game.Action
	size   int
}

// parseScript reads "f", "x", "c", "b:10" or "r:6" entries separated by commas
func parseScript(script string) ([]scriptStep, error) {
	var steps []scriptStep
	for _, field := range strings.Split(script, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		name, sizeText, hasSize := strings.Cut(field, ":")
		action, err := game.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", len(steps)+1, err)
		}
		step := scriptStep{action: action}
		switch {
		case action.IsAggressive() && !hasSize:
			return nil, fmt.Errorf("step %d: %s needs a size", len(steps)+1, action)
		case !action.IsAggressive() && hasSize:
			return nil, fmt.Errorf("step %d: %s takes no size", len(steps)+1, action)
		case hasSize:
			step.size, err = strconv.Atoi(sizeText)
			if err != nil || step.size <= 0 {
				return nil, fmt.Errorf("step %d: invalid size %q", len(steps)+1, sizeText)
			}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// applyScript steps g through every entry, stopping at the first rejection
func applyScript(g *game.Game, steps []scriptStep) error {
	for i, s := range steps {
		if g.HandOver() {
			return fmt.Errorf("step %d: hand is already over", i+1)
		}
		if _, _, err := g.Step(s.action, s.size); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, s.action, err)
		}
	}
	return nil
}

func (cmd *ReplayCmd) Run(globals *Globals) error {
	steps, err := parseScript(cmd.Script)
	if err != nil {
		return err
	}
	cfg, logger, err := loadConfig(globals, cmd.TableFlags)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, logger, cmd.TableFlags)
	if err != nil {
		return err
	}
	if err := applyScript(s.game, steps); err != nil {
		return err
	}

	payoffs, err := replayReport(os.Stdout, s.game, cmd.Live)
	if err != nil {
		return err
	}

	if cmd.PHH != "" {
		if err := writeHistory(cmd.PHH, s.game, payoffs); err != nil {
			return err
		}
		logger.Info().Str("path", cmd.PHH).Msg("Hand history written")
	}
	return nil
}

// replayReport prints the table, the dump and, when the hand can be settled,
// the payoffs. The payoffs are nil when the board is incomplete.
func replayReport(w io.Writer, g *game.Game, liveOnly bool) ([]int, error) {
	fmt.Fprint(w, renderTable(g))
	data, err := g.Dump(liveOnly)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(w, string(data))

	if !g.HandOver() {
		fmt.Fprintf(w, "next: seat %d [%s]\n", g.Pointer(), renderLegal(g.LegalActions()))
		return nil, nil
	}
	payoffs, err := settle(g)
	switch {
	case errors.Is(err, errHoleCardsUnknown):
		fmt.Fprintf(w, "payoffs: %v\n", err)
		return nil, nil
	case errors.Is(err, judger.ErrIncompleteHand):
		fmt.Fprintln(w, "payoffs: board incomplete")
		return nil, nil
	case err != nil:
		return nil, err
	}
	fmt.Fprintf(w, "payoffs: %v\n", payoffs)
	return payoffs, nil
}

// errHoleCardsUnknown is returned by settle when a showdown seat has no hole cards
var errHoleCardsUnknown = errors.New("villain cards unknown")

// settle asks the judger for payoffs unless a contested showdown includes a
// seat whose hole cards were never given; that seat would otherwise play the board.
func settle(g *game.Game) ([]int, error) {
	contenders, unknown := 0, -1
	for _, p := range g.Players() {
		if !p.InHand() {
			continue
		}
		contenders++
		if len(p.Hand()) < 2 && unknown < 0 {
			unknown = p.Seat
		}
	}
	if contenders > 1 && unknown >= 0 {
		return nil, fmt.Errorf("%w (seat %d)", errHoleCardsUnknown, unknown)
	}
	return g.Payoffs()
}

// writeHistory exports g as a PHH file, replacing path atomically
func writeHistory(path string, g *game.Game, payoffs []int) error {
	hand, err := phh.FromGame(g, phh.Options{
		Table:   "solverbuddy",
		Clock:   quartz.NewReal(),
		Payoffs: payoffs,
	})
	if err != nil {
		return err
	}
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return phh.Encode(w, hand)
	})
}
