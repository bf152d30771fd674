package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "As", NewCard(Ace, Spades).String())
	assert.Equal(t, "2c", NewCard(Two, Clubs).String())
	assert.Equal(t, "Th", NewCard(Ten, Hearts).String())
	assert.Equal(t, "??", Card{Suit: 9}.String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "As", want: NewCard(Ace, Spades)},
		{input: "th", want: NewCard(Ten, Hearts)},
		{input: "TH", want: NewCard(Ten, Hearts)},
		{input: "10d", want: NewCard(Ten, Diamonds)},
		{input: "2c", want: NewCard(Two, Clubs)},
		{input: " Kd ", want: NewCard(King, Diamonds)},
		{input: "Xs", wantErr: true},
		{input: "Ax", wantErr: true},
		{input: "A", wantErr: true},
		{input: "", wantErr: true},
		{input: "11h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards("Th2s")
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Ten, Hearts), NewCard(Two, Spades)}, cards)

	cards, err = ParseCards("Ah, 10c Qd")
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Ace, Hearts), NewCard(Ten, Clubs), NewCard(Queen, Diamonds)}, cards)
	assert.Equal(t, "AhTcQd", FormatCards(cards))

	_, err = ParseCards("Th2")
	require.Error(t, err)

	cards, err = ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
