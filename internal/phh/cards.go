package phh

import (
	"strings"

	"github.com/lox/solverbuddy/poker"
)

// unknownCard marks a hole card that was never revealed
const unknownCard = "??"

// NormalizeCard converts loose notation (e.g. 10h, ah) to PHH notation (Th, Ah).
func NormalizeCard(card string) string {
	card = strings.TrimSpace(card)
	if card == "" || card == unknownCard {
		return card
	}
	c, err := poker.ParseCard(card)
	if err != nil {
		return strings.ToUpper(card[:1]) + strings.ToLower(card[1:])
	}
	return c.String()
}

// NormalizeCards normalizes a slice of card strings.
func NormalizeCards(cards []string) []string {
	if len(cards) == 0 {
		return nil
	}
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = NormalizeCard(c)
	}
	return out
}

// FormatCards renders cards for a deal action. Missing hole cards are
// written as unknowns.
func FormatCards(cards []poker.Card, want int) string {
	if len(cards) == 0 {
		return strings.Repeat(unknownCard, want)
	}
	return poker.FormatCards(cards)
}

func cardStrings(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
