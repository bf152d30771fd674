package poker

import (
	"errors"
	rand "math/rand/v2"
)

// ErrDeckEmpty is returned when a card is requested from an exhausted deck
var ErrDeckEmpty = errors.New("deck is empty")

// Dealer owns the deck for a hand and the aggregate pot.
type Dealer struct {
	Deck *Deck
	Pot  int
}

// NewDealer creates a dealer with a freshly shuffled deck
func NewDealer(rng *rand.Rand) *Dealer {
	return &Dealer{Deck: NewDeck(rng)}
}

// DealCard deals the top card of the deck
func (d *Dealer) DealCard() (Card, error) {
	card, ok := d.Deck.Deal()
	if !ok {
		return Card{}, ErrDeckEmpty
	}
	return card, nil
}

// Clone returns an independent copy of the dealer and its deck
func (d *Dealer) Clone() *Dealer {
	return &Dealer{Deck: d.Deck.Clone(), Pot: d.Pot}
}
