package count

import (
	"fmt"

	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// HandCount is the structured view of a hand the deficiency search
// operates on: the concealed tiles (drawn tile included, when present) plus
// one TileCount per declared call.
type HandCount struct {
	Concealed TileCount
	Calls     []TileCount
}

// CreateFromHand builds a HandCount from concealed tiles, declared calls,
// and an optional drawn tile (nil if none). It enforces the data-model
// invariants: no tile count above 4, and a total of 13 or 14 tiles.
func CreateFromHand(concealedTiles []tile.Tile, calls []Call, draw *tile.Tile) (HandCount, error) {
	all := make([]tile.Tile, len(concealedTiles), len(concealedTiles)+1)
	copy(all, concealedTiles)
	if draw != nil {
		all = append(all, *draw)
	}

	concealed := New(tile.All)
	for _, t := range all {
		v := concealed.Get(t) + 1
		if v > 4 {
			return HandCount{}, fmt.Errorf("%w: tile %v appears more than 4 times", ErrInvalidHand, t)
		}
		concealed.Set(t, v)
	}

	callCounts := make([]TileCount, 0, len(calls))
	for _, c := range calls {
		if len(c.Tiles) != 3 && len(c.Tiles) != 4 {
			return HandCount{}, fmt.Errorf("%w: call must have 3 or 4 tiles, got %d", ErrInvalidHand, len(c.Tiles))
		}
		callCounts = append(callCounts, c.ToTileCount())
	}

	hc := HandCount{Concealed: concealed, Calls: callCounts}

	total := concealed.Total()
	for _, cc := range callCounts {
		total += cc.Total()
	}
	if total != 13 && total != 14 {
		return HandCount{}, fmt.Errorf("%w: hand has %d tiles, want 13 or 14", ErrInvalidHand, total)
	}

	for _, t := range tile.All {
		if hc.Get(t) > 4 {
			return HandCount{}, fmt.Errorf("%w: tile %v appears more than 4 times across calls", ErrInvalidHand, t)
		}
	}

	return hc, nil
}

// Get returns the total number of copies of t across the concealed count
// and all call counts.
func (h HandCount) Get(t tile.Tile) uint8 {
	total := h.Concealed.Get(t)
	for _, cc := range h.Calls {
		total += cc.Get(t)
	}
	return total
}

// Total returns the hand's total tile count (13 or 14).
func (h HandCount) Total() int {
	total := h.Concealed.Total()
	for _, cc := range h.Calls {
		total += cc.Total()
	}
	return total
}

// WithDiscardAndDraw returns a copy of h with one copy of discard removed
// from the concealed count and one copy of draw added, used by the
// efficiency ranker to build the 13-tile and candidate 14-tile hands. It
// assumes discard is present in the concealed count.
func (h HandCount) WithDiscardAndDraw(discard tile.Tile, draw *tile.Tile) HandCount {
	next := HandCount{Concealed: h.Concealed.Clone(), Calls: h.Calls}
	next.Concealed.Add(discard, -1)
	if draw != nil {
		next.Concealed.Add(*draw, 1)
	}
	return next
}
