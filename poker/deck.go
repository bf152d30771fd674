package poker

import (
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck
type Deck struct {
	cards []Card
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: StandardDeck(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// StandardDeck returns the 52 cards in suit-major order
func StandardDeck() []Card {
	cards := make([]Card, 0, 52)
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the remaining cards using Fisher-Yates
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Remove takes the given cards out of the deck, returning how many were found
func (d *Deck) Remove(cards ...Card) int {
	removed := 0
	kept := d.cards[:0]
	for _, c := range d.cards {
		if containsCard(cards, c) {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	d.cards = kept
	return removed
}

// Contains reports whether the card is still in the deck
func (d *Deck) Contains(card Card) bool {
	return containsCard(d.cards, card)
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Clone returns a copy of the deck sharing the same random source
func (d *Deck) Clone() *Deck {
	return &Deck{
		cards: append([]Card(nil), d.cards...),
		rng:   d.rng,
	}
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
