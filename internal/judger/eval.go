package judger

import (
	"errors"
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/lox/solverbuddy/poker"
)

// ErrIncompleteHand is returned when a contested hand has fewer than five cards
var ErrIncompleteHand = errors.New("hand has fewer than five cards")

// toLib converts a card to the evaluator's representation, which numbers the
// ace as rank 1.
func toLib(c poker.Card) (ph.Card, error) {
	var suit ph.Suit
	switch c.Suit {
	case poker.Clubs:
		suit = ph.Club
	case poker.Diamonds:
		suit = ph.Diamond
	case poker.Hearts:
		suit = ph.Heart
	case poker.Spades:
		suit = ph.Spade
	default:
		return 0, fmt.Errorf("invalid card %s", c)
	}
	rank := ph.Rank(c.Rank)
	if c.Rank == poker.Ace {
		rank = 1
	}
	return ph.MakeCard(suit, rank)
}

func toLibCards(cards []poker.Card) ([]ph.Card, error) {
	out := make([]ph.Card, len(cards))
	for i, c := range cards {
		lc, err := toLib(c)
		if err != nil {
			return nil, err
		}
		out[i] = lc
	}
	return out, nil
}

// Score ranks the best five-card hand among cards. Higher scores are stronger.
func Score(cards []poker.Card) (int16, error) {
	if len(cards) < 5 {
		return 0, fmt.Errorf("%w: got %d", ErrIncompleteHand, len(cards))
	}
	if len(cards) > 7 {
		return 0, fmt.Errorf("hand has %d cards, want at most 7", len(cards))
	}
	lib, err := toLibCards(cards)
	if err != nil {
		return 0, err
	}

	switch len(lib) {
	case 7:
		var a7 [7]ph.Card
		copy(a7[:], lib)
		return ph.Eval7(&a7), nil
	case 5:
		var a5 [5]ph.Card
		copy(a5[:], lib)
		return ph.Eval5(&a5), nil
	default:
		return bestOfFive(lib), nil
	}
}

// bestOfFive scores every five-card subset and keeps the strongest
func bestOfFive(cards []ph.Card) int16 {
	n := len(cards)
	best := int16(-1 << 15)
	var five [5]ph.Card
	var choose func(start, k int)
	choose = func(start, k int) {
		if k == 5 {
			if score := ph.Eval5(&five); score > best {
				best = score
			}
			return
		}
		for i := start; i <= n-(5-k); i++ {
			five[k] = cards[i]
			choose(i+1, k+1)
		}
	}
	choose(0, 0)
	return best
}

// Describe names the hand made by cards, for example "pair of kings".
func Describe(cards []poker.Card) (string, error) {
	lib, err := toLibCards(cards)
	if err != nil {
		return "", err
	}
	return ph.Describe(lib)
}
