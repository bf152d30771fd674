package phh

import (
	"bytes"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/lox/solverbuddy/internal/game"
)

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}
	if err := hand.Validate(); err != nil {
		return err
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads and validates a PHH TOML document.
func Decode(r io.Reader) (*HandHistory, error) {
	var hand HandHistory
	if _, err := toml.NewDecoder(r).Decode(&hand); err != nil {
		return nil, fmt.Errorf("phh: decode: %w", err)
	}
	if err := hand.Validate(); err != nil {
		return nil, err
	}
	return &hand, nil
}

// FormatAction converts a betting action to a PHH action string. streetTotal
// is the seat's commitment on the street after the action, which PHH records
// for bets and raises.
func FormatAction(seat int, action game.Action, streetTotal int) (string, bool) {
	player := fmt.Sprintf("p%d", seat+1)
	switch action {
	case game.Fold:
		return player + " f", true
	case game.Check, game.Call:
		return player + " cc", true
	case game.Bet, game.Raise:
		if streetTotal <= 0 {
			return "", false
		}
		return fmt.Sprintf("%s cbr %d", player, streetTotal), true
	default:
		return fmt.Sprintf("# %s %s %d", player, action, streetTotal), true
	}
}
