package qd

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// EnumerateBlockTypes searches every quasi-decomposition of concealed over
// block and returns the deduplicated set of Types it can produce. block is
// one suit's nine tiles or a single honor; concealed must be a TileCount
// over that same block. kb decides whether a partial sequence found along
// the way is still completable from the wall.
//
// The search is a 6-branch backtrack, one branch per way the tile at the
// current scan position can be spent: set it aside as remainder, commit it
// to a triplet, a sequence, a pair, an edge wait, or a gap wait. Every
// branch strictly reduces the block's total remaining tile count, so the
// recursion always terminates; re-entering at the same scan position after
// a branch just lets a second copy of the same tile be spent a different
// way.
func EnumerateBlockTypes(block []tile.Tile, concealed count.TileCount, kb KnowledgeBase) []Type {
	c := concealed.Clone()
	remainder := count.New(block)
	var parts []Part
	seen := make(map[Type]bool)
	var results []Type

	var rec func(pos int)
	rec = func(pos int) {
		for pos < len(block) && c.Get(block[pos]) == 0 {
			pos++
		}
		if pos >= len(block) {
			typ := CreateFromQD(QuasiDecomposition{Parts: parts, Remainder: remainder})
			if !seen[typ] {
				seen[typ] = true
				results = append(results, typ)
			}
			return
		}

		t := block[pos]

		// 1. drop to remainder
		c.Add(t, -1)
		remainder.Add(t, 1)
		rec(pos)
		remainder.Add(t, -1)
		c.Add(t, 1)

		// 2. triplet
		if c.Get(t) >= 3 {
			c.Add(t, -3)
			parts = append(parts, Part{Kind: Triplet, Tiles: []tile.Tile{t, t, t}})
			rec(pos)
			parts = parts[:len(parts)-1]
			c.Add(t, 3)
		}

		// 3. sequence
		if n1, ok := t.Next(); ok {
			if n2, ok2 := n1.Next(); ok2 && c.Get(n1) >= 1 && c.Get(n2) >= 1 {
				c.Add(t, -1)
				c.Add(n1, -1)
				c.Add(n2, -1)
				parts = append(parts, Part{Kind: Sequence, Tiles: []tile.Tile{t, n1, n2}})
				rec(pos)
				parts = parts[:len(parts)-1]
				c.Add(t, 1)
				c.Add(n1, 1)
				c.Add(n2, 1)
			}
		}

		// 4. pair
		if c.Get(t) >= 2 {
			c.Add(t, -2)
			parts = append(parts, Part{Kind: Pair, Tiles: []tile.Tile{t, t}})
			rec(pos)
			parts = parts[:len(parts)-1]
			c.Add(t, 2)
		}

		// 5. edge partial sequence: t and its immediate successor, waiting on
		// whichever neighbor(s) of the pair still exist (penchan if only one
		// side does, ryanmen if both do).
		if n1, ok := t.Next(); ok && c.Get(n1) >= 1 {
			c.Add(t, -1)
			c.Add(n1, -1)
			parts = append(parts, Part{Kind: PartialSequence, Tiles: []tile.Tile{t, n1}, Incompletable: !kb.anyLive(adjacentWaits(t, n1))})
			rec(pos)
			parts = parts[:len(parts)-1]
			c.Add(t, 1)
			c.Add(n1, 1)
		}

		// 6. gap partial sequence (kanchan): t and the tile two ranks above
		// it, waiting on the tile in between.
		if n1, ok := t.Next(); ok {
			if n2, ok2 := n1.Next(); ok2 && c.Get(n2) >= 1 {
				c.Add(t, -1)
				c.Add(n2, -1)
				parts = append(parts, Part{Kind: PartialSequence, Tiles: []tile.Tile{t, n2}, Incompletable: !kb.IsLive(n1)})
				rec(pos)
				parts = parts[:len(parts)-1]
				c.Add(t, 1)
				c.Add(n2, 1)
			}
		}
	}

	rec(0)
	return results
}

// adjacentWaits returns the tile(s) that would complete an edge partial
// sequence made of the two consecutive tiles lo, hi (hi == lo.Next()):
// the tile below lo and the tile above hi, whichever exist.
func adjacentWaits(lo, hi tile.Tile) []tile.Tile {
	var waits []tile.Tile
	if p, ok := lo.Prev(); ok {
		waits = append(waits, p)
	}
	if n, ok := hi.Next(); ok {
		waits = append(waits, n)
	}
	return waits
}

func (kb KnowledgeBase) anyLive(waits []tile.Tile) bool {
	for _, w := range waits {
		if kb.IsLive(w) {
			return true
		}
	}
	return false
}
