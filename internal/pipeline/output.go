package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tdionizio/robertsedge/internal/ir"
	"github.com/tdionizio/robertsedge/internal/pgm"
)

func writeImage(path string, img *ir.GrayImage) error {
	if err := pgm.EncodeFile(path, img); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// AppendTiming appends "\n<input> <seconds>" to the log at path, creating it
// if needed.
func AppendTiming(path, input string, elapsed time.Duration) (err error) {
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = fmt.Fprintf(f, "\n%s %f", input, elapsed.Seconds())
	return err
}
