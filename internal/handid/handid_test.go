package handid

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/solverbuddy/internal/randutil"
)

func TestGenerateIsValid(t *testing.T) {
	t.Parallel()

	id := NewGenerator(nil, nil).Generate()
	assert.Len(t, id, Length)
	require.NoError(t, Validate(id))
}

func TestGenerateEmbedsClockTime(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	start := time.Date(2025, time.November, 14, 15, 22, 0, 0, time.UTC)
	clock.Set(start)

	id := NewGenerator(clock, randutil.New(1)).Generate()
	got, err := Timestamp(id)
	require.NoError(t, err)
	assert.True(t, start.Equal(got), "got %s", got)
}

func TestGenerateTimeSorted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := quartz.NewMock(t)
	gen := NewGenerator(clock, randutil.New(7))

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, gen.Generate())
		clock.Advance(time.Millisecond).MustWait(ctx)
	}

	for i := 1; i < len(ids); i++ {
		assert.Negative(t, strings.Compare(ids[i-1], ids[i]), "ids %d and %d out of order", i-1, i)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	clock := quartz.NewMock(t)
	a := NewGenerator(clock, randutil.New(99)).Generate()
	b := NewGenerator(clock, randutil.New(99)).Generate()
	c := NewGenerator(clock, randutil.New(100)).Generate()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateUnique(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(nil, nil)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.Generate()
		assert.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: "01h2xcejqtf2nbrexx3vqjhp41"},
		{name: "too short", id: "01h2xcejqtf2nbrexx3vqjhp4", wantErr: true},
		{name: "too long", id: "01h2xcejqtf2nbrexx3vqjhp411", wantErr: true},
		{name: "first char overflow", id: "81h2xcejqtf2nbrexx3vqjhp41", wantErr: true},
		{name: "excluded letter", id: "01h2xcejqtf2nbrexx3vqjhpi1", wantErr: true},
		{name: "uppercase", id: "01H2XCEJQTF2NBREXX3VQJHP41", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVersionBits(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(quartz.NewMock(t), randutil.New(3))
	data, err := decodeBase32(gen.Generate())
	require.NoError(t, err)
	assert.Equal(t, byte(0x70), data[6]&0xf0)
	assert.Equal(t, byte(0x80), data[8]&0xc0)
}
