package count

import (
	"testing"

	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

func mustTiles(t *testing.T, codes ...string) []tile.Tile {
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

func TestCreateFromHandValidTotals(t *testing.T) {
	concealed := mustTiles(t, "1m", "1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m", "1p", "2p", "3p")
	hc, err := CreateFromHand(concealed, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hc.Total() != 13 {
		t.Fatalf("Total() = %d, want 13", hc.Total())
	}
}

func TestCreateFromHandRejectsBadTotal(t *testing.T) {
	concealed := mustTiles(t, "1m", "2m", "3m")
	if _, err := CreateFromHand(concealed, nil, nil); err == nil {
		t.Fatalf("expected error for 3-tile hand")
	}
}

func TestCreateFromHandRejectsFiveCopies(t *testing.T) {
	five := make([]tile.Tile, 0, 14)
	t1, _ := tile.Parse("1m")
	for i := 0; i < 5; i++ {
		five = append(five, t1)
	}
	rest := mustTiles(t, "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m", "1p")
	five = append(five, rest...)
	if _, err := CreateFromHand(five, nil, nil); err == nil {
		t.Fatalf("expected error for a tile appearing 5 times")
	}
}

func TestCallCountsTowardGet(t *testing.T) {
	concealed := mustTiles(t, "1m", "2m", "3m", "4p", "4p", "4p", "4p", "1z", "1z", "1z")
	calls := []Call{{Kind: OpenSequence, Tiles: mustTiles(t, "5s", "6s", "7s")}}
	hc, err := CreateFromHand(concealed, calls, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	five, _ := tile.Parse("5s")
	if hc.Get(five) != 1 {
		t.Fatalf("Get(5s) = %d, want 1 (from call)", hc.Get(five))
	}
	four, _ := tile.Parse("4p")
	if hc.Get(four) != 4 {
		t.Fatalf("Get(4p) = %d, want 4", hc.Get(four))
	}
}

func TestWithDiscardAndDraw(t *testing.T) {
	concealed := mustTiles(t, "1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m", "1p", "2p", "3p", "1z", "1z")
	hc, err := CreateFromHand(concealed, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	discard, _ := tile.Parse("9m")
	draw, _ := tile.Parse("9p")
	next := hc.WithDiscardAndDraw(discard, &draw)
	if next.Total() != 14 {
		t.Fatalf("Total() after discard+draw = %d, want 14", next.Total())
	}
	if next.Get(discard) != 0 {
		t.Fatalf("discarded tile still present")
	}
	if next.Get(draw) != 1 {
		t.Fatalf("drawn tile missing")
	}
	if hc.Get(discard) != 1 {
		t.Fatalf("original hand mutated by WithDiscardAndDraw")
	}
}
