package main

import (
	"fmt"

	"github.com/taeho-gwon/mahjong-shanten/internal/count"
	"github.com/taeho-gwon/mahjong-shanten/internal/handnotation"
)

// parseHand parses a bare hand code into a count.HandCount. Declared calls
// are out of scope for the CLI; every analysis it runs is on a fully
// concealed hand.
func parseHand(code string) (count.HandCount, error) {
	tiles, err := handnotation.ParseHandCode(code)
	if err != nil {
		return count.HandCount{}, err
	}
	hc, err := count.CreateFromHand(tiles, nil, nil)
	if err != nil {
		return count.HandCount{}, fmt.Errorf("hand %q: %w", code, err)
	}
	return hc, nil
}
