package tile

import (
	"errors"
	"fmt"
)

// ErrInvalidTileCode is wrapped with the offending code by Parse.
var ErrInvalidTileCode = errors.New("tile: invalid tile code")

// Parse reads a single canonical tile code such as "5m" or "7z".
func Parse(code string) (Tile, error) {
	if len(code) != 2 {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidTileCode, code)
	}
	rank := int(code[0] - '0')
	if rank < 1 || rank > 9 {
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidTileCode, code)
	}
	var s Suit
	switch code[1] {
	case 'm':
		s = Man
	case 'p':
		s = Pin
	case 's':
		s = Sou
	case 'z':
		s = Honor
		if rank > 7 {
			return Invalid, fmt.Errorf("%w: %q", ErrInvalidTileCode, code)
		}
	default:
		return Invalid, fmt.Errorf("%w: %q", ErrInvalidTileCode, code)
	}
	return New(s, rank), nil
}
