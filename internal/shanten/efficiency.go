package shanten

import (
	"sort"

	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// Draw is one tile that, drawn after a candidate discard, strictly reduces
// shanten, weighted by how many copies are still out there.
type Draw struct {
	Tile            tile.Tile
	RemainingCopies int
}

// DiscardOption is one candidate discard from a 14-tile hand, with the
// resulting 13-tile shanten and every draw that would improve on it.
type DiscardOption struct {
	Discard     tile.Tile
	Shanten     int
	Draws       []Draw
	UkeireCount int
}

// CalculateEfficiency ranks every distinct tile in a 14-tile hand as a
// discard candidate, by ukeire: the weighted count of draws that would
// strictly decrease shanten after that discard. Results are sorted by
// descending ukeire, then ascending tile order.
func CalculateEfficiency(hand count.HandCount, calls []count.Call) []DiscardOption {
	var options []DiscardOption
	for _, discard := range tile.All {
		if hand.Concealed.Get(discard) == 0 {
			continue
		}
		afterDiscard := hand.WithDiscardAndDraw(discard, nil)
		discardShanten := Shanten(afterDiscard, calls)

		opt := DiscardOption{Discard: discard, Shanten: discardShanten}
		for _, draw := range tile.All {
			remaining := 4 - int(hand.Get(draw))
			if remaining <= 0 {
				continue
			}
			candidate := afterDiscard
			candidate.Concealed = candidate.Concealed.Clone()
			candidate.Concealed.Add(draw, 1)
			if Shanten(candidate, calls) < discardShanten {
				opt.Draws = append(opt.Draws, Draw{Tile: draw, RemainingCopies: remaining})
				opt.UkeireCount += remaining
			}
		}
		options = append(options, opt)
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].UkeireCount != options[j].UkeireCount {
			return options[i].UkeireCount > options[j].UkeireCount
		}
		return options[i].Discard < options[j].Discard
	})
	return options
}
