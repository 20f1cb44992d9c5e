package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taeho-gwon/mahjong-shanten/internal/shanten"
)

var efficiencyCmd = &cobra.Command{
	Use:   "efficiency <14-tile-hand-code>",
	Short: "Rank discards by ukeire for a 14-tile hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hand, err := parseHand(args[0])
		if err != nil {
			return err
		}
		if hand.Total() != 14 {
			return fmt.Errorf("efficiency requires a 14-tile hand, got %d tiles", hand.Total())
		}

		for _, opt := range shanten.CalculateEfficiency(hand, nil) {
			fmt.Printf("discard %-3s -> shanten %d, ukeire %d\n", opt.Discard, opt.Shanten, opt.UkeireCount)
			for _, d := range opt.Draws {
				fmt.Printf("    %-3s x%d\n", d.Tile, d.RemainingCopies)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(efficiencyCmd)
}
