package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/tdionizio/robertsedge/internal/edge"
	"github.com/tdionizio/robertsedge/internal/ir"
	"github.com/tdionizio/robertsedge/internal/pgm"
)

// Options controls the edge detection pipeline.
type Options struct {
	BlurSigma float32 // Gaussian pre-blur applied before filtering; 0 disables it
	TimesLog  string  // file the filter time is appended to; empty disables it
}

// Result holds the output of a pipeline run.
type Result struct {
	Original *ir.GrayImage // decoded input, untouched
	Edges    *ir.GrayImage // Roberts Cross gradient map
	Enhanced *ir.GrayImage // original + edges, saturated
	Elapsed  time.Duration // time spent in the Roberts filter
}

// Run executes decode → blur → Roberts → composite. It writes nothing; on
// error no partial result is returned.
func Run(r io.Reader, opts Options) (*Result, error) {
	// 1. Decode PGM
	original, err := pgm.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	// 2. Optional pre-blur on a private copy; the composite below still
	// reads the unblurred original.
	source := edge.Blur(original, opts.BlurSigma)

	// 3. Roberts Cross
	start := time.Now()
	edges := edge.Roberts(source)
	elapsed := time.Since(start)

	// 4. Enhance
	enhanced, err := edge.Combine(original, edges)
	if err != nil {
		return nil, fmt.Errorf("composite: %w", err)
	}

	return &Result{
		Original: original,
		Edges:    edges,
		Enhanced: enhanced,
		Elapsed:  elapsed,
	}, nil
}
