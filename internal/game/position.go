package game

import (
	"fmt"
	"strings"
)

// Position is a seat label relative to the blinds and the button.
type Position int

const (
	SB Position = iota
	BB
	UTG
	UTG1
	MP
	MP1
	HJ
	CO
	BTN
)

const (
	MinPlayers = 2
	MaxPlayers = 9
)

var positionNames = [...]string{"SB", "BB", "UTG", "UTG1", "MP", "MP1", "HJ", "CO", "BTN"}

// seatingOrders lists the positions occupied for each table size, starting at
// the first seat to post and ending at the button.
var seatingOrders = map[int][]Position{
	2: {BB, BTN},
	3: {SB, BB, BTN},
	4: {SB, BB, UTG, BTN},
	5: {SB, BB, UTG, CO, BTN},
	6: {SB, BB, UTG, HJ, CO, BTN},
	7: {SB, BB, UTG, MP, HJ, CO, BTN},
	8: {SB, BB, UTG, UTG1, MP, HJ, CO, BTN},
	9: {SB, BB, UTG, UTG1, MP, MP1, HJ, CO, BTN},
}

func (p Position) String() string {
	if p < SB || p > BTN {
		return fmt.Sprintf("Position(%d)", int(p))
	}
	return positionNames[p]
}

// MarshalText encodes the position by name.
func (p Position) MarshalText() ([]byte, error) {
	if p < SB || p > BTN {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, int(p))
	}
	return []byte(positionNames[p]), nil
}

// PositionFromValue returns the position with the given ordinal.
func PositionFromValue(v int) (Position, error) {
	if v < int(SB) || v > int(BTN) {
		return 0, fmt.Errorf("%w: value %d", ErrInvalidPosition, v)
	}
	return Position(v), nil
}

// ParsePosition parses a position name, ignoring case.
func ParsePosition(s string) (Position, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
}

// Positions returns the seating order for n players. Seat i of a game holds Positions(n)[i].
func Positions(n int) ([]Position, error) {
	order, ok := seatingOrders[n]
	if !ok {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidPlayerCount, n)
	}
	return append([]Position(nil), order...), nil
}

// Next returns the position seated after p at an n-handed table.
func (p Position) Next(n int) (Position, error) {
	order, err := Positions(n)
	if err != nil {
		return 0, err
	}
	for i, q := range order {
		if q == p {
			return order[(i+1)%len(order)], nil
		}
	}
	return 0, fmt.Errorf("%w: %s is not seated at a %d-handed table", ErrInvalidPosition, p, n)
}

// ExplanationString renders the seating order for prompts, e.g. "SB,BB,BTN".
func ExplanationString(n int) (string, error) {
	order, err := Positions(n)
	if err != nil {
		return "", err
	}
	names := make([]string, len(order))
	for i, p := range order {
		names[i] = p.String()
	}
	return strings.Join(names, ","), nil
}
