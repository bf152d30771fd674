package judger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		contributions []int
		contending    []bool
		want          []Pot
	}{
		{
			name:          "single pot",
			contributions: []int{10, 10, 10},
			contending:    []bool{true, true, true},
			want:          []Pot{{Amount: 30, Eligible: []int{0, 1, 2}, Cap: 10}},
		},
		{
			name:          "all-in creates side pot",
			contributions: []int{20, 100, 100},
			contending:    []bool{true, true, true},
			want: []Pot{
				{Amount: 60, Eligible: []int{0, 1, 2}, Cap: 20},
				{Amount: 160, Eligible: []int{1, 2}, Cap: 100},
			},
		},
		{
			name:          "folded chips stay in the pots they reached",
			contributions: []int{50, 20, 100, 100},
			contending:    []bool{false, true, true, true},
			want: []Pot{
				{Amount: 80, Eligible: []int{1, 2, 3}, Cap: 20},
				{Amount: 190, Eligible: []int{2, 3}, Cap: 100},
			},
		},
		{
			name:          "overflow above every contender",
			contributions: []int{30, 10},
			contending:    []bool{false, true},
			want:          []Pot{{Amount: 40, Eligible: []int{1}, Cap: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pots := BuildPots(tt.contributions, tt.contending)
			assert.Equal(t, tt.want, pots)
			assert.Equal(t, sum(tt.contributions), Total(pots))
		})
	}
}
