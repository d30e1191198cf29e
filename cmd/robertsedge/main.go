package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "robertsedge [file.pgm]",
	Short: "Detect and enhance edges in binary PGM images with the Roberts Cross operator",
	Long: `Reads a binary PGM (P5) image, writes its Roberts Cross edge map to
<name>_Robert.PGM and the edge-enhanced image to <name>_Realce.PGM.
When no file is given the name is read from standard input.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runDetect,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
