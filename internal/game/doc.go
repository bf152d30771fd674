// Package game implements the betting state machine for one hand of no-limit
// Texas Hold'em.
//
// The main type is Game, which seats the players, posts the blinds and
// delegates each action to a Round, the per-street betting state. Hand
// ranking and pot splitting are left to a Judger supplied by the caller.
//
// # Basic Usage
//
//	g := game.NewGame(randutil.New(42),
//	    game.WithBlinds(1, 2),
//	    game.WithStepBack(true),
//	)
//	if err := g.Configure(game.Config{PlayerCount: 6, ChipsForEach: 200}); err != nil {
//	    return err
//	}
//	state, seat, err := g.InitGame()
//	// ...
//	state, seat, err = g.Step(game.Raise, 6)
//	if err != nil {
//	    // errors.Is(err, game.ErrIllegalAction) when the action was not legal
//	}
//	g.StepBack() // undo the raise
//
// # Determinism
//
// The only randomness is the RNG passed to NewGame, used to pick a dealer
// and shuffle the deck. Step is a pure transition: the same state and action
// always produce the same successor. Undo restores full snapshots rather than
// replaying actions.
//
// # Scope
//
// Community cards are not dealt between streets. Drivers that need a board,
// for example to settle a showdown, supply it with AddPublicCards.
package game
