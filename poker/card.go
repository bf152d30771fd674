package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit used in hand histories
func (s Suit) String() string {
	if s > Spades {
		return "?"
	}
	return [...]string{"c", "d", "h", "s"}[s]
}

// Rank represents a card rank
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the single-character rank
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankChars[r-Two : r-Two+1]
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the string representation of a card (e.g. "Th")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsValid reports whether the card is one of the 52 standard cards
func (c Card) IsValid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit <= Spades
}

// ParseCard parses a card such as "Th", "10h" or "AS". Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	rankPart := strings.ToUpper(s[:len(s)-1])
	if rankPart == "10" {
		rankPart = "T"
	}
	if len(rankPart) != 1 {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}
	idx := strings.IndexByte(rankChars, rankPart[0])
	if idx < 0 {
		return Card{}, fmt.Errorf("invalid rank in card %q", s)
	}

	var suit Suit
	switch strings.ToLower(s[len(s)-1:]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card %q", s)
	}

	return NewCard(Two+Rank(idx), suit), nil
}

// ParseCards parses a run of cards. Cards may be concatenated ("Th2s") or
// separated by spaces or commas ("Th 2s", "Th,2s").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	var cards []Card
	for _, field := range fields {
		for len(field) > 0 {
			n := 2
			if strings.HasPrefix(field, "10") {
				n = 3
			}
			if len(field) < n {
				return nil, fmt.Errorf("invalid card %q", field)
			}
			card, err := ParseCard(field[:n])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
			field = field[n:]
		}
	}
	return cards, nil
}

// FormatCards joins cards without separators, e.g. "Th2s"
func FormatCards(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}
