package pgm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// Encode writes img as a binary PGM: "P5\n<w> <h>\n<max>\n", the raw samples
// in row-major order and a trailing newline.
func Encode(w io.Writer, img *ir.GrayImage) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", Magic, img.Width, img.Height, img.MaxValue); err != nil {
		return err
	}
	if _, err := bw.Write(img.Pixels); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeFile creates (or truncates) path and writes img to it. A file that
// could not be written completely is removed.
func EncodeFile(path string, img *ir.GrayImage) error {
	if err := img.Validate(); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return writeFile(path, func(w io.Writer) error {
		return Encode(w, img)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
