package qd

import (
	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// QuasiDecomposition is one candidate partial decomposition of a block's
// concealed tiles: the committed parts found so far, plus whatever tiles
// are left over as remainder.
type QuasiDecomposition struct {
	Parts     []Part
	Remainder count.TileCount
}

// CreateFromCallCount builds the fixed, already-complete quasi-decomposition
// contributed by one declared call. A call is never searched over: it is
// always exactly one triplet, one sequence, or one quad, decided entirely
// by CallKind.
func CreateFromCallCount(kind count.CallKind, tiles []tile.Tile) QuasiDecomposition {
	sorted := append([]tile.Tile(nil), tiles...)
	switch kind {
	case count.OpenSequence:
		return QuasiDecomposition{Parts: []Part{{Kind: Sequence, Tiles: sorted}}}
	default:
		// OpenTriplet, OpenQuad and ConcealedQuad all stand as one
		// triplet for shanten purposes; the fourth tile of a quad never
		// changes a hand's deficiency.
		return QuasiDecomposition{Parts: []Part{{Kind: Triplet, Tiles: sorted[:3]}}}
	}
}

func (qd QuasiDecomposition) clone() QuasiDecomposition {
	return QuasiDecomposition{
		Parts:     append([]Part(nil), qd.Parts...),
		Remainder: qd.Remainder,
	}
}
