// Command shanten computes mahjong hand deficiency (shanten) and discard
// efficiency, either one-shot from the CLI or as a standing analysis
// service over nats and websockets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shanten",
	Short: "Mahjong shanten and efficiency calculator",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
