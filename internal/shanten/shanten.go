package shanten

import "github.com/taeho-gwon/mahjong-shanten/internal/count"

// Shanten returns the hand's overall deficiency: the best (lowest) of the
// standard, seven-pairs, and thirteen-orphans shapes.
func Shanten(hand count.HandCount, calls []count.Call) int {
	best := CalculateNormalDeficiency(hand, calls)
	if sp := CalculateSevenPairsDeficiency(hand); sp < best {
		best = sp
	}
	if to := CalculateThirteenOrphansDeficiency(hand); to < best {
		best = to
	}
	return best
}
