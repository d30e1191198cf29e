package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdionizio/robertsedge/internal/pgm"
	"github.com/tdionizio/robertsedge/internal/resample"
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Rescale a binary PGM image",
	RunE:  runResize,
}

func init() {
	resizeCmd.Flags().StringP("input", "i", "", "Input PGM file")
	resizeCmd.Flags().StringP("output", "o", "", "Output PGM file")
	resizeCmd.Flags().Int("width", 0, "Target width (0 keeps the aspect ratio)")
	resizeCmd.Flags().Int("height", 0, "Target height (0 keeps the aspect ratio)")
	resizeCmd.Flags().String("interp", "lanczos3", "Interpolation (nearest, bilinear, bicubic, mitchell, lanczos2, lanczos3)")
	resizeCmd.MarkFlagRequired("input")
	resizeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	interpStr, _ := cmd.Flags().GetString("interp")

	interp, err := resample.ParseInterpolation(interpStr)
	if err != nil {
		return err
	}

	src, err := pgm.DecodeFile(inputPath)
	if err != nil {
		return diagnose(err)
	}

	dst, err := resample.Resize(src, width, height, interp)
	if err != nil {
		return err
	}

	if err := pgm.EncodeFile(outputPath, dst); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Resized %dx%d → %dx%d (%s): %s\n",
		src.Width, src.Height, dst.Width, dst.Height, interp, outputPath)
	return nil
}
