package shanten

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// CalculateThirteenOrphansDeficiency returns the thirteen-orphans shanten
// number: all six terminals, all seven honors, plus a pair among them.
// Like seven pairs, the shape is closed-hand only.
func CalculateThirteenOrphansDeficiency(hand count.HandCount) int {
	if len(hand.Calls) > 0 {
		return notApplicable
	}
	kinds, hasPair := 0, false
	for _, t := range tile.TerminalsAndHonors {
		n := hand.Concealed.Get(t)
		if n == 0 {
			continue
		}
		kinds++
		if n >= 2 {
			hasPair = true
		}
	}
	pairBonus := 0
	if hasPair {
		pairBonus = 1
	}
	return 14 - kinds - pairBonus
}
