package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/lox/solverbuddy/internal/config"
	"github.com/lox/solverbuddy/internal/game"
	"github.com/lox/solverbuddy/internal/judger"
	"github.com/lox/solverbuddy/internal/randutil"
	"github.com/lox/solverbuddy/poker"
)

// TableFlags override the config file's game block
type TableFlags struct {
	Players   int    `help:"Number of seats (overrides config)"`
	Chips     int    `help:"Starting stack for every seat (overrides config)"`
	Dealer    int    `default:"-1" help:"Dealer seat, -1 keeps the configured value"`
	Seed      int64  `help:"Random seed; 0 picks one from the clock"`
	Hero      string `help:"Hero position, e.g. BTN"`
	HeroCards string `name:"hero-cards" help:"Hero hole cards, e.g. AsKd"`
	Board     string `help:"Public cards to place on the board, e.g. Td9c3h"`
}

// apply copies the set flags over cfg
func (f TableFlags) apply(cfg *config.Config) {
	if f.Players > 0 {
		cfg.Game.PlayerCount = f.Players
	}
	if f.Chips > 0 {
		cfg.Game.ChipsForEach = f.Chips
	}
	if f.Dealer >= 0 {
		d := f.Dealer
		cfg.Game.DealerID = &d
	}
	if f.Hero != "" {
		cfg.Game.HeroPosition = f.Hero
	}
}

// session is an initialised hand plus the context it was built from
type session struct {
	game   *game.Game
	config *config.Config
	logger zerolog.Logger
	seed   int64
}

// loadConfig reads and validates the config file with flag overrides applied
func loadConfig(globals *Globals, flags TableFlags) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, setupLogger(os.Stderr, cfg.Level(), globals.Debug, globals.LogJSON), nil
}

// newSession builds and initialises a game from cfg. Hero and board cards
// are taken out of the dealer's deck before the hand starts.
func newSession(cfg *config.Config, logger zerolog.Logger, flags TableFlags) (*session, error) {
	hole, err := parseHoleCards(flags.HeroCards)
	if err != nil {
		return nil, err
	}
	board, err := poker.ParseCards(flags.Board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	if c, dup := firstDuplicate(append(append([]poker.Card(nil), hole...), board...)); dup {
		return nil, fmt.Errorf("card %s is used twice", c)
	}

	rng, seed := randutil.NewOrTime(flags.Seed)
	dealer := poker.NewDealer(rng)
	dealer.Deck.Remove(hole...)
	dealer.Deck.Remove(board...)

	opts := append(cfg.GameOptions(),
		game.WithLogger(logger),
		game.WithJudger(judger.New(judger.WithLogger(logger))),
		game.WithDealerDeck(dealer),
	)
	g := game.NewGame(rng, opts...)
	if err := g.Configure(cfg.GameConfig()); err != nil {
		return nil, err
	}
	if _, _, err := g.InitGame(); err != nil {
		return nil, err
	}

	if len(hole) > 0 {
		hero, ok := g.Hero()
		if !ok {
			return nil, fmt.Errorf("hero cards given without a hero position")
		}
		if err := g.SetHoleCards(hero.Seat, hole...); err != nil {
			return nil, err
		}
	}
	if len(board) > 0 {
		if err := g.AddPublicCards(board...); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int64("seed", seed).
		Int("players", g.NumPlayers()).
		Int("deck", g.Dealer().Deck.CardsRemaining()).
		Msg("Session ready")

	return &session{game: g, config: cfg, logger: logger, seed: seed}, nil
}

// parseHoleCards reads the hero's two hole cards; empty text means none
func parseHoleCards(text string) ([]poker.Card, error) {
	if text == "" {
		return nil, nil
	}
	cards, err := poker.ParseCards(text)
	if err != nil {
		return nil, fmt.Errorf("hero cards: %w", err)
	}
	if len(cards) != 2 {
		return nil, fmt.Errorf("hero cards: want 2 cards, got %d", len(cards))
	}
	return cards, nil
}

func firstDuplicate(cards []poker.Card) (poker.Card, bool) {
	seen := make(map[poker.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return c, true
		}
		seen[c] = true
	}
	return poker.Card{}, false
}
