package count

import "github.com/taeho-gwon/mahjong-shanten/internal/tile"

// CallKind distinguishes the ways a meld can be declared.
type CallKind uint8

const (
	OpenTriplet CallKind = iota
	OpenSequence
	OpenQuad
	ConcealedQuad
)

// Call is a declared meld: its kind and the tiles it is made of (3 tiles,
// or 4 for a quad).
type Call struct {
	Kind  CallKind
	Tiles []tile.Tile
}

// IsConcealed reports whether the call stays concealed for open/closed
// scoring purposes. Only a concealed quad does.
func (c Call) IsConcealed() bool {
	return c.Kind == ConcealedQuad
}

// ToTileCount returns the call's tiles as a TileCount over tile.All, for
// use as one of HandCount's call counts.
func (c Call) ToTileCount() TileCount {
	return CreateFromTiles(c.Tiles, tile.All)
}
