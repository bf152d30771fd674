package judger

import "slices"

// Pot is a main or side pot and the seats that can win it
type Pot struct {
	Amount   int
	Eligible []int // Seat numbers eligible for this pot
	// Cap is the per-seat contribution level that closes this pot
	Cap int
}

// BuildPots splits the committed chips into a main pot and side pots. A new
// pot opens at every distinct contribution level of a contending seat; chips
// from folded seats fall into whichever pots their contribution reaches.
func BuildPots(contributions []int, contending []bool) []Pot {
	levels := make([]int, 0, len(contributions))
	for seat, c := range contributions {
		if contending[seat] && c > 0 {
			levels = append(levels, c)
		}
	}
	slices.Sort(levels)
	levels = slices.Compact(levels)

	var pots []Pot
	previous := 0
	for _, level := range levels {
		pot := Pot{Cap: level}
		for seat, c := range contributions {
			pot.Amount += min(c, level) - min(c, previous)
			if contending[seat] && c >= level {
				pot.Eligible = append(pot.Eligible, seat)
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		previous = level
	}

	// chips above the highest contender level belong to the last pot
	overflow := 0
	for _, c := range contributions {
		overflow += max(c-previous, 0)
	}
	if overflow > 0 {
		if len(pots) == 0 {
			pots = append(pots, Pot{Cap: previous, Eligible: contendingSeats(contending)})
		}
		pots[len(pots)-1].Amount += overflow
	}
	return pots
}

// Total returns the chips across all pots
func Total(pots []Pot) int {
	total := 0
	for _, p := range pots {
		total += p.Amount
	}
	return total
}

func contendingSeats(contending []bool) []int {
	seats := make([]int, 0, len(contending))
	for seat, ok := range contending {
		if ok {
			seats = append(seats, seat)
		}
	}
	return seats
}
