package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tdionizio/robertsedge/internal/pgm"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect the header of a binary PGM image",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return diagnose(fmt.Errorf("reading %s: %w", path, err))
	}
	defer f.Close()

	info, err := pgm.GetInfo(f)
	if err != nil {
		return diagnose(fmt.Errorf("parsing %s: %w", path, err))
	}
	st, err := f.Stat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Max value:  %d\n", info.MaxValue)
	fmt.Fprintf(out, "Samples:    %d\n", info.Width*info.Height)
	fmt.Fprintf(out, "File size:  %d bytes (%.1f KB)\n", st.Size(), float64(st.Size())/1024)
	if len(info.Comments) == 0 {
		fmt.Fprintln(out, "Comments:   none")
		return nil
	}
	fmt.Fprintln(out, "Comments:")
	for _, c := range info.Comments {
		fmt.Fprintf(out, "  # %s\n", c)
	}
	return nil
}
