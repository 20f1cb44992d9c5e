package handnotation

import (
	"testing"

	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

func TestParseHandCodeCounts(t *testing.T) {
	tiles, err := ParseHandCode("123456789m123p55z")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tiles) != 14 {
		t.Fatalf("len(tiles) = %d, want 14", len(tiles))
	}
	if tiles[0] != tile.New(tile.Man, 1) {
		t.Fatalf("tiles[0] = %v, want 1m", tiles[0])
	}
}

func TestParseHandCodeRejectsTrailingDigits(t *testing.T) {
	if _, err := ParseHandCode("123m45"); err == nil {
		t.Fatalf("expected error for trailing digits with no suit")
	}
}

func TestParseHandCodeRejectsBadRank(t *testing.T) {
	if _, err := ParseHandCode("8z"); err == nil {
		t.Fatalf("expected error for out-of-range honor rank")
	}
}

func TestFormatHandCodeRoundTrip(t *testing.T) {
	const code = "123456789m123p55z"
	tiles, err := ParseHandCode(code)
	if err != nil {
		t.Fatalf("ParseHandCode: %v", err)
	}
	if got := FormatHandCode(tiles); got != code {
		t.Fatalf("FormatHandCode() = %q, want %q", got, code)
	}
}
