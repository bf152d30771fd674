package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{input: "f", want: Fold},
		{input: "F", want: Fold},
		{input: "x", want: Check},
		{input: "c", want: Call},
		{input: "b", want: Bet},
		{input: "r", want: Raise},
		{input: "RAISE", want: Raise},
		{input: "raise", want: Raise},
		{input: " Check ", want: Check},
		{input: "call", want: Call},
		{input: "z", wantErr: true},
		{input: "allin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShorthandRoundTrips(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for a := Fold; a <= Raise; a++ {
		s := Shorthand(a)
		assert.False(t, seen[s], "shorthand %q reused", s)
		seen[s] = true

		parsed, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, a, parsed)

		parsed, err = ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Len(t, seen, NumActions())
}
