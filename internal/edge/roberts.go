// Package edge implements the Roberts Cross gradient filter and the
// operations built around it: saturating truncation, compositing of an edge
// map over its source, and optional Gaussian pre-blur.
package edge

import (
	"math"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// Truncate clamps x into the range of a single-byte sample.
func Truncate(x int) uint8 {
	if x > ir.MaxSampleValue {
		return ir.MaxSampleValue
	}
	if x < 0 {
		return 0
	}
	return uint8(x)
}

// Roberts computes the Roberts Cross gradient magnitude of src.
//
// For each pixel P(r,c):
//
//	Gx = P(r,c)   - P(r+1,c+1)
//	Gy = P(r,c+1) - P(r+1,c)
//	out(r,c) = round(sqrt(Gx² + Gy²))
//
// Neighbors beyond the right and bottom borders read as 0; the top and left
// borders are never touched. src is only read; the result is a new image of
// the same size whose MaxValue is the largest magnitude produced (at least 1
// so the result stays encodable).
func Roberts(src *ir.GrayImage) *ir.GrayImage {
	w, h := src.Width, src.Height
	out := ir.New(w, h, 1)

	for r := 0; r < h; r++ {
		row := src.Pixels[r*w : (r+1)*w]
		var below []byte
		if r+1 < h {
			below = src.Pixels[(r+1)*w : (r+2)*w]
		}
		dst := out.Pixels[r*w : (r+1)*w]

		for c := 0; c < w; c++ {
			p := int(row[c])
			right := sampleAt(row, c+1)
			down := sampleAt(below, c)
			diag := sampleAt(below, c+1)

			gx := p - diag
			gy := right - down
			mag := math.Round(math.Sqrt(float64(gx*gx + gy*gy)))
			dst[c] = Truncate(int(mag))
		}
	}

	out.MaxValue = maxValue(out.Pixels)
	return out
}

// sampleAt returns row[i], or 0 when i falls in the zero border.
func sampleAt(row []byte, i int) int {
	if i >= len(row) {
		return 0
	}
	return int(row[i])
}

func maxValue(pix []byte) int {
	m := byte(1)
	for _, v := range pix {
		if v > m {
			m = v
		}
	}
	return int(m)
}
