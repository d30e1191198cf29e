package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdionizio/robertsedge/internal/pgm"
	"github.com/tdionizio/robertsedge/internal/pipeline"
)

func init() {
	rootCmd.Flags().Float32("blur", 0, "Gaussian pre-blur sigma applied before edge detection (0 disables)")
	rootCmd.Flags().String("times-log", pipeline.DefaultTimesLog, "File the filter time is appended to (empty disables)")
}

func runDetect(cmd *cobra.Command, args []string) error {
	blur, _ := cmd.Flags().GetFloat32("blur")
	timesLog, _ := cmd.Flags().GetString("times-log")

	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	} else {
		name, err := promptFilename(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		inputPath = name
	}

	report, err := pipeline.Process(inputPath, pipeline.Options{
		BlurSigma: blur,
		TimesLog:  timesLog,
	})
	if err != nil {
		return diagnose(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loaded %s: %dx%d, max value %d\n",
		report.Input, report.Original.Width, report.Original.Height, report.Original.MaxValue)
	fmt.Fprintf(out, "Roberts filter: %s\n", report.Elapsed)
	fmt.Fprintf(out, "Edges:    %s (max value %d)\n", report.EdgesPath, report.Edges.MaxValue)
	fmt.Fprintf(out, "Enhanced: %s\n", report.EnhancedPath)
	return nil
}

// promptFilename asks for the input file and reads one line.
func promptFilename(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter the .pgm file to open: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading file name: %w", err)
	}
	name := strings.TrimRight(line, "\r\n")
	if name == "" {
		return "", errors.New("no input file given")
	}
	return name, nil
}

// diagnose prefixes pipeline errors with a short explanation for the user.
func diagnose(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("file not found: %w", err)
	case errors.Is(err, pgm.ErrFormat):
		return fmt.Errorf("file is not a binary .PGM (P5) image: %w", err)
	case errors.Is(err, pgm.ErrSize):
		return fmt.Errorf("resolution too high, at most 1920x1080 pixels are supported: %w", err)
	case errors.Is(err, pgm.ErrDepth):
		return fmt.Errorf("images with more than 8 bits per pixel are not supported: %w", err)
	case errors.Is(err, pgm.ErrTruncated):
		return fmt.Errorf("header and pixel data are inconsistent: %w", err)
	default:
		return err
	}
}
