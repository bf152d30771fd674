package game

import "errors"

var (
	// ErrIllegalAction is returned by Step when the action is not in the legal set.
	ErrIllegalAction = errors.New("action not allowed")
	// ErrNegativeStack signals a player stack driven below zero.
	ErrNegativeStack = errors.New("player in negative stake")
	// ErrBetSizeUnvalidated is returned by Round.ValidateBetSize, which has no rules yet.
	ErrBetSizeUnvalidated = errors.New("bet size validation not implemented")
	// ErrInvalidPosition is returned for unknown positions or unsupported seat counts.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrInvalidAction is returned when action text cannot be parsed.
	ErrInvalidAction = errors.New("invalid action")
	// ErrInvalidPlayerCount is returned for seat counts outside 2-9.
	ErrInvalidPlayerCount = errors.New("invalid player count")
	// ErrInvalidSeat is returned for seat indexes outside the table.
	ErrInvalidSeat = errors.New("invalid seat")
	// ErrNoJudger is returned by Payoffs when no judger was configured.
	ErrNoJudger = errors.New("no judger configured")
	// ErrNotStarted is returned by operations that need InitGame first.
	ErrNotStarted = errors.New("game not initialised")
)
