package shanten

import (
	"testing"

	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/handnotation"
)

func mustHand(t *testing.T, code string) count.HandCount {
	t.Helper()
	tiles, err := handnotation.ParseHandCode(code)
	if err != nil {
		t.Fatalf("ParseHandCode(%q): %v", code, err)
	}
	hc, err := count.CreateFromHand(tiles, nil, nil)
	if err != nil {
		t.Fatalf("CreateFromHand: %v", err)
	}
	return hc
}

func TestCompleteHandIsZero(t *testing.T) {
	hand := mustHand(t, "123456789m123p55z")
	if got := Shanten(hand, nil); got != 0 {
		t.Fatalf("Shanten() = %d, want 0", got)
	}
}

func TestTenpaiHandIsZero(t *testing.T) {
	hand := mustHand(t, "123456789m12p55z")
	if got := Shanten(hand, nil); got != 0 {
		t.Fatalf("Shanten() = %d, want 0", got)
	}
}

func TestSevenPairsCompleteHand(t *testing.T) {
	hand := mustHand(t, "11223344556677z")
	if got := CalculateSevenPairsDeficiency(hand); got != 0 {
		t.Fatalf("CalculateSevenPairsDeficiency() = %d, want 0", got)
	}
}

func TestThirteenOrphansAllKindsNoPair(t *testing.T) {
	hand := mustHand(t, "19m19p19s1234567z")
	if got := CalculateThirteenOrphansDeficiency(hand); got != 1 {
		t.Fatalf("CalculateThirteenOrphansDeficiency() = %d, want 1", got)
	}
}

func TestEfficiencyRanksDiscards(t *testing.T) {
	hand := mustHand(t, "123456789m11p345s")
	options := CalculateEfficiency(hand, nil)
	if len(options) == 0 {
		t.Fatalf("expected at least one discard option")
	}
	for i := 1; i < len(options); i++ {
		if options[i-1].UkeireCount < options[i].UkeireCount {
			t.Fatalf("options not sorted by descending ukeire at index %d: %+v", i, options)
		}
	}
}
