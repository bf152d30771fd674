package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seatPlayers(stacks ...int) []*Player {
	positions, _ := Positions(len(stacks))
	players := make([]*Player, len(stacks))
	for i, chips := range stacks {
		players[i] = NewPlayer(i, positions[i], chips)
	}
	return players
}

func TestRoundLegalActions(t *testing.T) {
	t.Parallel()

	r := NewRound(3, 2)
	r.StartNewRound(0, nil)
	assert.Equal(t, []Action{Fold, Check, Bet}, r.LegalActions())

	r.StartNewRound(0, []int{0, 4, 0})
	assert.Equal(t, []Action{Fold, Call, Raise}, r.LegalActions())
}

func TestRoundCallThenCheckClosesStreet(t *testing.T) {
	t.Parallel()

	players := seatPlayers(200, 200)
	players[0].Bet(1)
	players[1].Bet(2)

	r := NewRound(2, 2)
	r.StartNewRound(0, []int{1, 2})

	next, err := r.ProceedRound(players, Call, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, next)
	assert.Equal(t, []int{2, 2}, r.Raised())
	assert.Equal(t, 1, r.NotRaiseNum())
	assert.Equal(t, 2, players[0].InChips())
	assert.False(t, r.IsOver())

	_, err = r.ProceedRound(players, Check, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, r.NotRaiseNum())
	assert.True(t, r.IsOver())
}

func TestRoundShortCallGoesAllIn(t *testing.T) {
	t.Parallel()

	players := seatPlayers(100, 5)
	players[0].Bet(20)

	r := NewRound(2, 2)
	r.StartNewRound(1, []int{20, 0})

	next, err := r.ProceedRound(players, Call, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, next)
	assert.Equal(t, AllIn, players[1].Status())
	assert.Equal(t, 5, players[1].InChips())
	assert.Equal(t, 0, players[1].RemainedChips())
	assert.Equal(t, 1, r.NotPlayingNum())
	assert.Equal(t, 0, r.NotRaiseNum(), "all-in call is not counted twice")
}

func TestRoundRaiseResetsSettledCount(t *testing.T) {
	t.Parallel()

	players := seatPlayers(100, 100, 100)
	r := NewRound(3, 2)
	r.StartNewRound(0, nil)

	_, err := r.ProceedRound(players, Check, 0)
	require.NoError(t, err)
	_, err = r.ProceedRound(players, Bet, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, r.NotRaiseNum(), "the aggressor counts as settled")
	assert.Equal(t, 10, r.MaxRaised())
	assert.Equal(t, 90, players[1].RemainedChips())

	_, err = r.ProceedRound(players, Raise, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 30}, r.Raised())
	assert.Equal(t, 1, r.NotRaiseNum())
}

func TestRoundPointerSkipsFoldedSeats(t *testing.T) {
	t.Parallel()

	players := seatPlayers(100, 100, 100, 100)
	r := NewRound(4, 2)
	r.StartNewRound(0, nil)

	players[1].status = Folded
	players[2].status = Folded

	next, err := r.ProceedRound(players, Check, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	next, err = r.ProceedRound(players, Check, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, next, "pointer wraps past the end of the table")
}

func TestRoundFold(t *testing.T) {
	t.Parallel()

	players := seatPlayers(100, 100, 100)
	r := NewRound(3, 2)
	r.StartNewRound(2, []int{1, 2, 0})

	next, err := r.ProceedRound(players, Fold, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
	assert.Equal(t, Folded, players[2].Status())
	assert.Equal(t, 1, r.NotPlayingNum())
	assert.Equal(t, 0, r.NotRaiseNum())
}

func TestRoundFoldKeepsAllInStatus(t *testing.T) {
	t.Parallel()

	players := seatPlayers(5, 200)
	r := NewRound(2, 2)
	r.StartNewRound(0, nil)

	next, err := r.ProceedRound(players, Bet, 5)
	require.NoError(t, err)
	require.Equal(t, AllIn, players[0].Status())
	require.Equal(t, 1, next)

	next, err = r.ProceedRound(players, Call, 0)
	require.NoError(t, err)
	require.Equal(t, 0, next, "all-in seats stay pointer targets")

	_, err = r.ProceedRound(players, Fold, 0)
	require.NoError(t, err)
	assert.Equal(t, AllIn, players[0].Status())
	assert.Equal(t, 1, r.NotPlayingNum())
}

func TestRoundRejectsUnknownAction(t *testing.T) {
	t.Parallel()

	players := seatPlayers(100, 100)
	r := NewRound(2, 2)
	r.StartNewRound(0, nil)

	_, err := r.ProceedRound(players, Action(42), 0)
	require.ErrorIs(t, err, ErrInvalidAction)
}

func TestValidateBetSizeAlwaysFails(t *testing.T) {
	t.Parallel()

	r := NewRound(2, 2)
	for _, size := range []int{0, 2, 100} {
		require.ErrorIs(t, r.ValidateBetSize(size), ErrBetSizeUnvalidated)
	}
}

func TestStartNewRoundCopiesRaised(t *testing.T) {
	t.Parallel()

	raised := []int{1, 2}
	r := NewRound(2, 2)
	r.StartNewRound(0, raised)
	raised[0] = 50

	assert.Equal(t, []int{1, 2}, r.Raised())
}
