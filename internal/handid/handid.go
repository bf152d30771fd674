// Package handid generates time-sortable identifiers for hand histories.
package handid

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an identifier
const Length = 26

// RandSource supplies randomness; *rand.Rand from math/rand/v2 satisfies it
type RandSource interface {
	IntN(n int) int
}

// Generator creates UUIDv7 identifiers encoded as 26-character base32 strings
type Generator struct {
	clock      quartz.Clock
	randSource RandSource
}

// NewGenerator creates a generator. A nil clock uses the real clock and a nil
// RandSource uses crypto/rand.
func NewGenerator(clock quartz.Clock, randSource RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, randSource: randSource}
}

// Generate creates a new hand ID
func (g *Generator) Generate() string {
	return encodeBase32(g.uuidV7())
}

// uuidV7 lays out a 48-bit millisecond timestamp, the version and variant
// bits and 74 random bits.
func (g *Generator) uuidV7() [16]byte {
	var id [16]byte

	now := g.clock.Now().UnixMilli()
	for i := 0; i < 6; i++ {
		id[i] = byte(now >> (40 - 8*i))
	}

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.randSource.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

// encodeBase32 writes the 128 bits as 26 five-bit groups, padded with two
// leading zero bits.
func encodeBase32(data [16]byte) string {
	out := make([]byte, Length)
	for i := range out {
		var v byte
		for b := 0; b < 5; b++ {
			bit := i*5 + b - 2
			v <<= 1
			if bit >= 0 && data[bit/8]&(0x80>>(bit%8)) != 0 {
				v |= 1
			}
		}
		out[i] = alphabet[v]
	}
	return string(out)
}

func decodeBase32(id string) ([16]byte, error) {
	var data [16]byte
	if err := Validate(id); err != nil {
		return data, err
	}
	for i := 0; i < Length; i++ {
		v := strings.IndexByte(alphabet, id[i])
		for b := 0; b < 5; b++ {
			bit := i*5 + b - 2
			if bit < 0 || v&(0x10>>b) == 0 {
				continue
			}
			data[bit/8] |= 0x80 >> (bit % 8)
		}
	}
	return data, nil
}

// Validate checks that id is 26 characters of base32 representing at most 128 bits
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("hand ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("hand ID first character must be 0-7, got %c", id[0])
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}

// Timestamp returns the creation time embedded in id, at millisecond precision
func Timestamp(id string) (time.Time, error) {
	data, err := decodeBase32(id)
	if err != nil {
		return time.Time{}, err
	}
	var ms int64
	for i := 0; i < 6; i++ {
		ms = ms<<8 | int64(data[i])
	}
	return time.UnixMilli(ms).UTC(), nil
}
