package handnotation

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// Hand is the boundary representation of a player's hand: concealed tiles
// in hand-code order, an optional drawn tile, and any declared calls. It
// carries the open/closed distinction that count.HandCount deliberately
// drops once it has flattened everything down to tile counts.
type Hand struct {
	Concealed []tile.Tile
	Draw      *tile.Tile
	Calls     []count.Call
}

// IsOpened reports whether the hand has any call other than a concealed
// quad, which is the only call that leaves a hand counted as closed.
func (h Hand) IsOpened() bool {
	for _, c := range h.Calls {
		if !c.IsConcealed() {
			return true
		}
	}
	return false
}

// ToHandCount flattens the hand into the tile-count form the deficiency
// search operates on.
func (h Hand) ToHandCount() (count.HandCount, error) {
	return count.CreateFromHand(h.Concealed, h.Calls, h.Draw)
}
