// Package qd implements the quasi-decomposition search: the partial
// decomposition of one block of a hand's concealed tiles into melds and
// proto-melds that the standard-shape deficiency calculation is built on.
package qd

import "github.com/taeho-gwon/mahjong-shanten/internal/tile"

// PartType is the closed set of decomposition parts a quasi-decomposition
// can be built from.
type PartType uint8

const (
	Triplet PartType = iota
	Sequence
	Pair            // two matching tiles, usable as the hand's head
	PartialSequence // an edge (penchan) or gap (kanchan) wait, one tile short of a Sequence
)

// Part is one committed piece of a quasi-decomposition: its kind and the
// tiles it covers. Incompletable is only meaningful for a PartialSequence:
// it records whether the knowledge base had already ruled out every copy of
// the tile that would complete it, at the moment the search committed to
// this part.
type Part struct {
	Kind          PartType
	Tiles         []tile.Tile
	Incompletable bool
}
