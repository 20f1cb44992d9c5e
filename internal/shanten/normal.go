package shanten

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/qd"
)

// CalculateNormalDeficiency returns the standard-shape shanten number for
// hand: four melds plus a pair, with calls already folded in as committed
// melds. 0 means tenpai or complete: the result never goes below 0.
func CalculateNormalDeficiency(hand count.HandCount, calls []count.Call) int {
	kb := qd.NewKnowledgeBase(hand)
	return minCost(blockTypes(hand, calls, kb))
}
