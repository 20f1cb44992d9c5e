package shanten

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// notApplicable is the deficiency reported for a shape a hand can never
// reach, so it never wins the min() against the shapes it can.
const notApplicable = 100

// CalculateSevenPairsDeficiency returns the seven-pairs shanten number.
// The shape is closed-hand only; a hand with any declared call can never
// reach it. excess counts tiles held beyond a pair (they can't form a
// second pair of the same tile); singles counts tiles held exactly once
// (each still needs a partner drawn).
func CalculateSevenPairsDeficiency(hand count.HandCount) int {
	if len(hand.Calls) > 0 {
		return notApplicable
	}
	excess, singles := 0, 0
	for _, t := range tile.All {
		n := int(hand.Concealed.Get(t))
		if n > 2 {
			excess += n - 2
		}
		if n == 1 {
			singles++
		}
	}
	if singles >= excess {
		return excess + (singles-excess+1)/2
	}
	return excess + 1
}
