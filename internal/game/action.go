package game

import (
	"fmt"
	"strings"
)

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Bet
	Raise
)

var actionNames = [...]string{"FOLD", "CHECK", "CALL", "BET", "RAISE"}

// shorthands must stay a bijection with actionNames.
var shorthands = [...]string{"F", "X", "C", "B", "R"}

func (a Action) String() string {
	if a < Fold || a > Raise {
		return "unknown"
	}
	return strings.ToLower(actionNames[a])
}

// MarshalText encodes the action by its lower-case name.
func (a Action) MarshalText() ([]byte, error) {
	if a < Fold || a > Raise {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
	return []byte(a.String()), nil
}

// ParseAction accepts a full action name or its one-letter shorthand, ignoring case.
func ParseAction(text string) (Action, error) {
	s := strings.ToUpper(strings.TrimSpace(text))
	table := actionNames[:]
	if len(s) == 1 {
		table = shorthands[:]
	}
	for i, name := range table {
		if name == s {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidAction, text)
}

// Shorthand returns the one-letter form of an action.
func Shorthand(a Action) string {
	if a < Fold || a > Raise {
		return "?"
	}
	return shorthands[a]
}

// NumActions returns the size of the action vocabulary.
func NumActions() int {
	return len(actionNames)
}

// IsAggressive reports whether the action opens or reopens the betting.
func (a Action) IsAggressive() bool {
	return a == Bet || a == Raise
}
