// Package handnotation parses and formats the compact hand notation used
// at the CLI and service boundaries: a run of digits per suit followed by
// that suit's letter, e.g. "123456789m123p55z" for three man runs, one pin
// run, and a pair of 5z (white dragon).
package handnotation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/taeho-gwon/mahjong-shanten/internal/tile"
)

// ErrInvalidHandCode is wrapped by every parse failure in this package.
var ErrInvalidHandCode = errors.New("handnotation: invalid hand code")

// ParseHandCode parses a hand code into its tiles, in the order they
// appear. "123m123m" and "112233m" both parse; whether the caller then
// treats the result as valid hand-sized input is up to count.CreateFromHand.
func ParseHandCode(code string) ([]tile.Tile, error) {
	var tiles []tile.Tile
	var digits []byte

	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == 'm' || c == 'p' || c == 's' || c == 'z':
			if len(digits) == 0 {
				return nil, fmt.Errorf("%w: suit %q with no preceding digits", ErrInvalidHandCode, string(c))
			}
			suit := suitFor(c)
			for _, d := range digits {
				rank := int(d - '0')
				t, err := tileFor(suit, rank)
				if err != nil {
					return nil, err
				}
				tiles = append(tiles, t)
			}
			digits = digits[:0]
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidHandCode, string(c))
		}
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("%w: trailing digits %q with no suit", ErrInvalidHandCode, string(digits))
	}
	return tiles, nil
}

// FormatHandCode renders tiles back into the compact notation, grouping
// consecutive same-suit runs under one trailing suit letter and leaving
// untouched the relative order tiles were given in.
func FormatHandCode(tiles []tile.Tile) string {
	var b strings.Builder
	i := 0
	for i < len(tiles) {
		suit := tiles[i].Suit()
		j := i
		for j < len(tiles) && tiles[j].Suit() == suit {
			b.WriteByte(byte('0' + tiles[j].Rank()))
			j++
		}
		b.WriteString(suit.String())
		i = j
	}
	return b.String()
}

func suitFor(c byte) tile.Suit {
	switch c {
	case 'm':
		return tile.Man
	case 'p':
		return tile.Pin
	case 's':
		return tile.Sou
	default:
		return tile.Honor
	}
}

func tileFor(suit tile.Suit, rank int) (tile.Tile, error) {
	maxRank := 9
	if suit == tile.Honor {
		maxRank = 7
	}
	if rank < 1 || rank > maxRank {
		return tile.Invalid, fmt.Errorf("%w: rank %d invalid for suit %s", ErrInvalidHandCode, rank, suit)
	}
	return tile.New(suit, rank), nil
}
