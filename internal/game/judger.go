package game

import "github.com/lox/solverbuddy/poker"

// Judger settles a hand. hands[i] holds seat i's hole and public cards, or nil
// when the seat folded. The result is the chip delta for every seat.
type Judger interface {
	JudgeGame(players []Player, hands [][]poker.Card) ([]int, error)
}

// JudgerFunc adapts a function to the Judger interface.
type JudgerFunc func(players []Player, hands [][]poker.Card) ([]int, error)

// JudgeGame calls f.
func (f JudgerFunc) JudgeGame(players []Player, hands [][]poker.Card) ([]int, error) {
	return f(players, hands)
}
