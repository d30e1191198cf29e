package edge

import (
	"errors"
	"fmt"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// ErrDimensionMismatch is returned when combining images of different shape.
var ErrDimensionMismatch = errors.New("image dimensions do not match")

// Combine adds the edge map to the original pixel by pixel, saturating at
// 255. Neither input is modified. The result carries MaxValue 255.
func Combine(original, edges *ir.GrayImage) (*ir.GrayImage, error) {
	if !ir.SameSize(original, edges) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			original.Width, original.Height, edges.Width, edges.Height)
	}
	if len(original.Pixels) != len(edges.Pixels) {
		return nil, fmt.Errorf("%w: %d vs %d samples", ErrDimensionMismatch, len(original.Pixels), len(edges.Pixels))
	}

	out := ir.New(original.Width, original.Height, ir.MaxSampleValue)
	for i, v := range original.Pixels {
		out.Pixels[i] = Truncate(int(v) + int(edges.Pixels[i]))
	}
	return out, nil
}
