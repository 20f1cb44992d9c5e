// Package shanten computes hand deficiency (shanten) and discard/draw
// efficiency by combining the quasi-decomposition search over each suit and
// honor block of a hand.
package shanten

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/qd"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// blocks is every independent decomposition unit a standard hand splits
// into: the three number suits and each of the seven honor tiles on its
// own, since honors never form a sequence.
func blocks() [][]tile.Tile {
	out := make([][]tile.Tile, 0, 10)
	out = append(out, tile.Mans, tile.Pins, tile.Sous)
	for _, h := range tile.Honors {
		out = append(out, []tile.Tile{h})
	}
	return out
}

func restrict(tc count.TileCount, block []tile.Tile) count.TileCount {
	out := count.New(block)
	for _, t := range block {
		out.Set(t, tc.Get(t))
	}
	return out
}

// callTypeForBlock sums the Types contributed by every declared call whose
// tiles fall in block. Calls are never searched: CreateFromCallCount fixes
// their shape outright.
func callTypeForBlock(calls []count.Call, block []tile.Tile) qd.Type {
	var total qd.Type
	if len(block) == 0 {
		return total
	}
	for _, c := range calls {
		if len(c.Tiles) == 0 {
			continue
		}
		inBlock := false
		for _, t := range block {
			if t == c.Tiles[0] {
				inBlock = true
				break
			}
		}
		if !inBlock {
			continue
		}
		decomp := qd.CreateFromCallCount(c.Kind, c.Tiles)
		total = total.Add(qd.CreateFromQD(decomp))
	}
	return total
}

// combine merges two Type sets by summing every pair and deduplicating,
// the cross-product step that folds one more block into the running
// whole-hand total.
func combine(a, b []qd.Type) []qd.Type {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	seen := make(map[qd.Type]bool, len(a)*len(b))
	out := make([]qd.Type, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			sum := x.Add(y)
			if !seen[sum] {
				seen[sum] = true
				out = append(out, sum)
			}
		}
	}
	return out
}

// blockTypes enumerates the possible Types a hand's blocks can combine
// into, folding in any declared calls.
func blockTypes(hand count.HandCount, calls []count.Call, kb qd.KnowledgeBase) []qd.Type {
	result := []qd.Type{{}}
	for _, block := range blocks() {
		concealed := restrict(hand.Concealed, block)
		concealedTypes := qd.EnumerateBlockTypes(block, concealed, kb)
		callType := callTypeForBlock(calls, block)
		blockSet := make([]qd.Type, len(concealedTypes))
		for i, t := range concealedTypes {
			blockSet[i] = t.Add(callType)
		}
		if len(blockSet) == 0 {
			blockSet = []qd.Type{callType}
		}
		result = combine(result, blockSet)
	}
	return result
}

func minCost(types []qd.Type) int {
	best := 8
	for _, t := range types {
		if c := t.Cost(); c < best {
			best = c
		}
	}
	return best
}
