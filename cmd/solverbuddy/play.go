package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox/solverbuddy/internal/config"
	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/judger"
	"github.com/lox/solverbuddy/poker"
)

// PlayCmd steps through a hand, prompting for every seat's action
type PlayCmd struct {
	TableFlags `embed:""`

	AllStreets bool   `name:"all-streets" help:"Keep playing after the first betting round settles"`
	PHH        string `name:"phh" type:"path" help:"Write the hand history to this file when done"`
}

// lineReader is the subset of readline the prompt loop needs
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

func (cmd *PlayCmd) Run(globals *Globals) error {
	cfg, logger, err := loadConfig(globals, cmd.TableFlags)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), "solverbuddy_history"),
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	flags := cmd.TableFlags
	if err := promptHero(rl, rl.Stdout(), cfg, &flags); err != nil {
		return err
	}
	if flags.Hero != "" {
		cfg.Game.HeroPosition = flags.Hero
	}

	s, err := newSession(cfg, logger, flags)
	if err != nil {
		return err
	}

	loop := &playLoop{game: s.game, in: rl, out: rl.Stdout(), allStreets: cmd.AllStreets}
	if err := loop.run(); err != nil {
		return err
	}

	if cmd.PHH != "" {
		payoffs, _ := settle(s.game)
		if err := writeHistory(cmd.PHH, s.game, payoffs); err != nil {
			return err
		}
		logger.Info().Str("path", cmd.PHH).Msg("Hand history written")
	}
	return nil
}

func completer() *readline.PrefixCompleter {
	names := []string{"fold", "check", "call", "bet", "raise", "undo", "dump", "help", "quit"}
	items := make([]readline.PrefixCompleterInterface, len(names))
	for i, n := range names {
		items[i] = readline.PcItem(n)
	}
	return readline.NewPrefixCompleter(items...)
}

// promptHero asks for a hero position and hole cards when neither the flags
// nor the config name one. Blank answers skip the hero.
func promptHero(in lineReader, out io.Writer, cfg *config.Config, flags *TableFlags) error {
	if flags.Hero != "" || cfg.Game.HeroPosition != "" {
		return nil
	}
	order, err := game.ExplanationString(cfg.Game.PlayerCount)
	if err != nil {
		return err
	}

	in.SetPrompt(fmt.Sprintf("hero position (%s, blank for none)> ", order))
	for {
		line, err := in.Readline()
		if err != nil {
			return ignoreEOF(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		pos, err := game.ParsePosition(line)
		if err == nil && seated(cfg.Game.PlayerCount, pos) {
			flags.Hero = pos.String()
			break
		}
		fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("Unknown position %q, choose one of %s", line, order)))
	}

	if flags.HeroCards != "" {
		return nil
	}
	in.SetPrompt("hero cards (e.g. AsKd, blank to skip)> ")
	for {
		line, err := in.Readline()
		if err != nil {
			return ignoreEOF(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return nil
		}
		cards, err := poker.ParseCards(line)
		if err == nil && len(cards) == 2 && cards[0] != cards[1] {
			flags.HeroCards = line
			return nil
		}
		fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("Could not read two cards from %q", line)))
	}
}

func seated(players int, pos game.Position) bool {
	order, err := game.Positions(players)
	return err == nil && slices.Contains(order, pos)
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return err
}

// playLoop reads actions until the betting round (or the hand) is over
type playLoop struct {
	game       *game.Game
	in         lineReader
	out        io.Writer
	allStreets bool
}

func (p *playLoop) run() error {
	g := p.game
	fmt.Fprintln(p.out, infoStyle.Render("Actions: f, x, c, b <size>, r <size>. Commands: undo, dump, help, quit"))

	for !p.done() {
		fmt.Fprint(p.out, renderTable(g))

		seat, _ := g.Player(g.Pointer())
		p.in.SetPrompt(fmt.Sprintf("%s [%s]> ", seat.Position, renderLegal(g.LegalActions())))
		line, err := p.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(p.out, infoStyle.Render("Use 'quit' to exit"))
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := p.handle(line)
		if err != nil {
			fmt.Fprintln(p.out, errorStyle.Render("Error: "+err.Error()))
			continue
		}
		if quit {
			return nil
		}
	}

	fmt.Fprint(p.out, renderTable(g))
	p.showPayoffs()
	return nil
}

// done reports whether the loop should stop prompting
func (p *playLoop) done() bool {
	if p.game.HandOver() {
		return true
	}
	return !p.allStreets && p.game.RoundCounter() > 0
}

// handle applies one input line. It returns true when the user quits.
func (p *playLoop) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true, nil
	case "undo", "u":
		if !p.game.StepBack() {
			return false, errors.New("nothing to undo")
		}
		return false, nil
	case "dump", "d":
		return false, p.dump(false)
	case "help", "h", "?":
		fmt.Fprintln(p.out, "f fold, x check, c call, b <size> bet, r <size> raise")
		fmt.Fprintln(p.out, "undo reverts the last action; dump prints the full state as JSON")
		return false, nil
	}

	action, err := game.ParseAction(fields[0])
	if err != nil {
		return false, err
	}
	size := 0
	if action.IsAggressive() {
		if len(fields) < 2 {
			return false, fmt.Errorf("%s needs a size, e.g. %q", action, strings.ToLower(game.Shorthand(action))+" 6")
		}
		size, err = strconv.Atoi(fields[1])
		if err != nil || size <= 0 {
			return false, fmt.Errorf("invalid size %q", fields[1])
		}
	}

	if _, _, err := p.game.Step(action, size); err != nil {
		return false, err
	}
	return false, p.dump(true)
}

func (p *playLoop) dump(liveOnly bool) error {
	data, err := p.game.Dump(liveOnly)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	fmt.Fprintln(p.out, out.String())
	return nil
}

func (p *playLoop) showPayoffs() {
	payoffs, err := settle(p.game)
	if errors.Is(err, errHoleCardsUnknown) {
		fmt.Fprintln(p.out, infoStyle.Render("Showdown not settled: "+err.Error()))
		return
	}
	if errors.Is(err, judger.ErrIncompleteHand) {
		fmt.Fprintln(p.out, infoStyle.Render("Board incomplete; pass --board to settle the showdown"))
		return
	}
	if err != nil {
		fmt.Fprintln(p.out, errorStyle.Render("Error: "+err.Error()))
		return
	}
	for i, pl := range p.game.Players() {
		fmt.Fprintf(p.out, "%-4s %+d\n", pl.Position, payoffs[i])
	}
}
