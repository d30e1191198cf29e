// Package export writes gray images in formats other than PGM.
package export

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// Format is an output image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q", filepath.Ext(path))
	}
}

// Write encodes img to w. Samples are written as-is; MaxValue is not used to
// rescale them.
func Write(w io.Writer, img *ir.GrayImage, format Format) error {
	if err := img.Validate(); err != nil {
		return err
	}
	g := img.ToGray()
	switch format {
	case FormatPNG:
		return png.Encode(w, g)
	case FormatBMP:
		return bmp.Encode(w, g)
	case FormatTIFF:
		return tiff.Encode(w, g, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteFile encodes img into path using the format implied by its extension.
func WriteFile(path string, img *ir.GrayImage) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := img.Validate(); err != nil {
		return err
	}

	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, img, format); err != nil {
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
