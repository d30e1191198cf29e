package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdionizio/robertsedge/internal/export"
	"github.com/tdionizio/robertsedge/internal/pgm"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert a binary PGM image to PNG, BMP or TIFF",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("input", "i", "", "Input PGM file")
	exportCmd.Flags().StringP("output", "o", "", "Output file (.png, .bmp, .tif)")
	exportCmd.MarkFlagRequired("input")
	exportCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := export.FormatFromPath(outputPath)
	if err != nil {
		return err
	}

	img, err := pgm.DecodeFile(inputPath)
	if err != nil {
		return diagnose(err)
	}

	if err := export.WriteFile(outputPath, img); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %dx%d PGM → %s (%s)\n", img.Width, img.Height, outputPath, format)
	return nil
}
