package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerBet(t *testing.T) {
	t.Parallel()

	p := NewPlayer(0, SB, 100)
	assert.Equal(t, 30, p.Bet(30))
	assert.Equal(t, 30, p.InChips())
	assert.Equal(t, 70, p.RemainedChips())
}

func TestPlayerBetClampsToStack(t *testing.T) {
	t.Parallel()

	p := NewPlayer(0, SB, 5)
	committed := p.Bet(20)

	assert.Equal(t, 5, committed)
	assert.Equal(t, 0, p.RemainedChips())
	assert.Equal(t, 5, p.InChips())
	assert.Equal(t, Alive, p.Status(), "status changes are the round's job")
}

func TestPlayerBetIgnoresNegativeAmounts(t *testing.T) {
	t.Parallel()

	p := NewPlayer(0, SB, 50)
	assert.Equal(t, 0, p.Bet(-10))
	assert.Equal(t, 50, p.RemainedChips())
	assert.Equal(t, 0, p.InChips())
}

func TestPlayerCloneCopiesHand(t *testing.T) {
	t.Parallel()

	p := NewPlayer(1, BB, 50)
	p.hand = testCards(t, "AhKd")
	cp := p.clone()
	cp.hand[0] = cp.hand[1]

	assert.NotEqual(t, p.hand[0], cp.hand[0])
}
