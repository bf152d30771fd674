package poker

// HoleCardCategory is a coarse preflop strength bucket
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards buckets a starting hand.
// Premium is JJ+ and AK, Strong is TT, AQ and AJ, Medium is 77-99 plus suited
// broadway, Weak is 22-66 plus suited connectors; everything else is Trash.
func CategorizeHoleCards(card1, card2 Card) HoleCardCategory {
	if !card1.IsValid() || !card2.IsValid() || card1 == card2 {
		return CategoryUnknown
	}

	small, big := int(card1.Rank), int(card2.Rank)
	if small > big {
		small, big = big, small
	}
	suited := card1.Suit == card2.Suit
	pair := small == big

	switch {
	case pair && small >= int(Jack), small == int(King) && big == int(Ace):
		return CategoryPremium
	case pair && small == int(Ten), big == int(Ace) && (small == int(Queen) || small == int(Jack)):
		return CategoryStrong
	case pair && small >= int(Seven), suited && small >= int(Ten):
		return CategoryMedium
	case pair, suited && big-small <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

// HoleCardNotation returns the usual shorthand for a starting hand, such as
// "AKs", "T9o" or "QQ". Invalid input yields "??".
func HoleCardNotation(card1, card2 Card) string {
	if !card1.IsValid() || !card2.IsValid() || card1 == card2 {
		return "??"
	}
	if card1.Rank < card2.Rank {
		card1, card2 = card2, card1
	}
	s := card1.Rank.String() + card2.Rank.String()
	switch {
	case card1.Rank == card2.Rank:
		return s
	case card1.Suit == card2.Suit:
		return s + "s"
	default:
		return s + "o"
	}
}

// CategorizeHoleCardsFromStrings categorizes hole cards given as text.
func CategorizeHoleCardsFromStrings(cards []string) string {
	if len(cards) != 2 {
		return string(CategoryUnknown)
	}

	card1, err1 := ParseCard(cards[0])
	card2, err2 := ParseCard(cards[1])
	if err1 != nil || err2 != nil {
		return string(CategoryUnknown)
	}

	return string(CategorizeHoleCards(card1, card2))
}
