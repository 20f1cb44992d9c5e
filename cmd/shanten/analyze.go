package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taeho-gwon/mahjong-shanten/internal/shanten"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <hand-code>",
	Short: "Report the shanten number for a hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hand, err := parseHand(args[0])
		if err != nil {
			return err
		}

		normal := shanten.CalculateNormalDeficiency(hand, nil)
		sevenPairs := shanten.CalculateSevenPairsDeficiency(hand)
		thirteenOrphans := shanten.CalculateThirteenOrphansDeficiency(hand)
		best := shanten.Shanten(hand, nil)

		fmt.Printf("shanten: %d\n", best)
		fmt.Printf("  standard:         %d\n", normal)
		fmt.Printf("  seven pairs:      %d\n", sevenPairs)
		fmt.Printf("  thirteen orphans: %d\n", thirteenOrphans)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
