// Package count implements the fixed-size tile multisets (TileCount,
// HandCount) the deficiency search operates on.
package count

import (
	"fmt"

	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// TileCount is a multiset of tiles restricted to a declared block (e.g. the
// nine tiles of one suit, or a single honor tile). Every count is bounded
// to 0..4. The zero value is not useful; construct with New or
// CreateFromTiles.
const numTiles = 34

type TileCount struct {
	block   []tile.Tile
	inBlock [numTiles]bool
	counts  [numTiles]uint8
}

// New returns an all-zero TileCount over block.
func New(block []tile.Tile) TileCount {
	var c TileCount
	c.block = block
	for _, t := range block {
		c.inBlock[t] = true
	}
	return c
}

// CreateFromTiles sums the indicator vectors of tiles into a TileCount over
// block.
func CreateFromTiles(tiles []tile.Tile, block []tile.Tile) TileCount {
	c := New(block)
	for _, t := range tiles {
		c.counts[t]++
	}
	return c
}

// Block returns the tiles this count is addressable over, in canonical
// order.
func (c TileCount) Block() []tile.Tile {
	return c.block
}

// Get returns the count for t, or 0 if t is outside the block.
func (c TileCount) Get(t tile.Tile) uint8 {
	if !c.inBlock[t] {
		return 0
	}
	return c.counts[t]
}

// Set writes the count for t. Panics if t is outside the block or v > 4:
// both are data-model invariant violations the boundary code must prevent
// before ever constructing a TileCount.
func (c *TileCount) Set(t tile.Tile, v uint8) {
	if !c.inBlock[t] {
		panic(fmt.Sprintf("count: tile %v outside block", t))
	}
	if v > 4 {
		panic(fmt.Sprintf("count: tile %v count %d exceeds 4", t, v))
	}
	c.counts[t] = v
}

// Add adds delta to the count for t, enforcing the same invariants as Set.
func (c *TileCount) Add(t tile.Tile, delta int) {
	c.Set(t, uint8(int(c.Get(t))+delta))
}

// Total sums the counts over the whole block.
func (c TileCount) Total() int {
	total := 0
	for _, t := range c.block {
		total += int(c.counts[t])
	}
	return total
}

// Clone returns an independent copy.
func (c TileCount) Clone() TileCount {
	return c
}

// Plus returns the componentwise sum of c and other, which must share the
// same block.
func (c TileCount) Plus(other TileCount) TileCount {
	out := New(c.block)
	for _, t := range c.block {
		out.counts[t] = c.counts[t] + other.counts[t]
	}
	return out
}
