package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	edgesSuffix    = "_Robert.PGM"
	enhancedSuffix = "_Realce.PGM"

	// DefaultTimesLog is the file filter timings are appended to.
	DefaultTimesLog = "Tempos.txt"
)

// Report describes a completed Process call.
type Report struct {
	*Result
	Input        string
	EdgesPath    string
	EnhancedPath string
}

// OutputNames derives the edge map and enhanced image paths from the input
// name by dropping its last four characters (the extension).
func OutputNames(input string) (edges, enhanced string) {
	stem := input
	if len(stem) >= 4 {
		stem = stem[:len(stem)-4]
	}
	return stem + edgesSuffix, stem + enhancedSuffix
}

// Process runs the pipeline on the file at input and writes both outputs next
// to it. Nothing is written unless decoding and filtering succeed.
func Process(input string, opts Options) (*Report, error) {
	f, err := os.Open(filepath.Clean(input))
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	result, err := Run(f, opts)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}

	edgesPath, enhancedPath := OutputNames(input)
	if err := writeImage(edgesPath, result.Edges); err != nil {
		return nil, err
	}
	if err := writeImage(enhancedPath, result.Enhanced); err != nil {
		return nil, err
	}

	if opts.TimesLog != "" {
		if err := AppendTiming(opts.TimesLog, input, result.Elapsed); err != nil {
			return nil, fmt.Errorf("timing log: %w", err)
		}
	}

	return &Report{
		Result:       result,
		Input:        input,
		EdgesPath:    edgesPath,
		EnhancedPath: enhancedPath,
	}, nil
}
