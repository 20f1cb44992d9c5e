package qd

import (
	"testing"

	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

func fullKnowledgeBase() KnowledgeBase {
	remaining := count.New(tile.All)
	for _, t := range tile.All {
		remaining.Set(t, 4)
	}
	return KnowledgeBase{remaining: remaining}
}

func mustParseBlock(t *testing.T, codes ...string) []tile.Tile {
	t.Helper()
	out := make([]tile.Tile, len(codes))
	for i, c := range codes {
		tt, err := tile.Parse(c)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c, err)
		}
		out[i] = tt
	}
	return out
}

func bestType(types []Type) Type {
	best := types[0]
	for _, ty := range types[1:] {
		if ty.Cost() < best.Cost() {
			best = ty
		}
	}
	return best
}

func TestEnumerateThreeSequences(t *testing.T) {
	block := tile.Mans
	tiles := mustParseBlock(t, "1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m")
	concealed := count.CreateFromTiles(tiles, block)
	types := EnumerateBlockTypes(block, concealed, fullKnowledgeBase())
	if len(types) == 0 {
		t.Fatalf("expected at least one type")
	}
	best := bestType(types)
	if best.NumSequences != 3 {
		t.Fatalf("best.NumSequences = %d, want 3", best.NumSequences)
	}
	if best.RemainderSize != 0 {
		t.Fatalf("best.RemainderSize = %d, want 0", best.RemainderSize)
	}
}

func TestEnumerateTripletAndPair(t *testing.T) {
	block := tile.Mans
	tiles := mustParseBlock(t, "1m", "1m", "1m", "2m", "2m")
	concealed := count.CreateFromTiles(tiles, block)
	types := EnumerateBlockTypes(block, concealed, fullKnowledgeBase())
	best := bestType(types)
	if best.NumTriplets != 1 || best.NumPairs != 1 {
		t.Fatalf("best = %+v, want 1 triplet + 1 pair", best)
	}
}

func TestEnumerateGapPartialCompletable(t *testing.T) {
	block := tile.Mans
	tiles := mustParseBlock(t, "1m", "3m")
	concealed := count.CreateFromTiles(tiles, block)
	types := EnumerateBlockTypes(block, concealed, fullKnowledgeBase())
	found := false
	for _, ty := range types {
		if ty.NumPartials == 1 && ty.NumIncompletablePartials == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a completable gap partial among %+v", types)
	}
}

func TestEnumerateGapPartialIncompletable(t *testing.T) {
	block := tile.Mans
	tiles := mustParseBlock(t, "1m", "3m")
	concealed := count.CreateFromTiles(tiles, block)
	remaining := count.New(tile.All)
	kb := KnowledgeBase{remaining: remaining} // every tile already exhausted
	types := EnumerateBlockTypes(block, concealed, kb)
	for _, ty := range types {
		if ty.NumPartials != 0 {
			t.Fatalf("with no live tiles left, partial should be incompletable: %+v", ty)
		}
	}
}
