package edge

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// Blur returns a Gaussian-blurred copy of src. A sigma of zero or less
// returns a plain clone. MaxValue is carried over unchanged.
func Blur(src *ir.GrayImage, sigma float32) *ir.GrayImage {
	if sigma <= 0 {
		return src.Clone()
	}

	g := gift.New(gift.GaussianBlur(sigma))
	in := src.ToGray()
	dst := image.NewGray(g.Bounds(in.Bounds()))
	g.Draw(dst, in)

	out := ir.New(src.Width, src.Height, src.MaxValue)
	for y := 0; y < src.Height; y++ {
		copy(out.Pixels[y*src.Width:(y+1)*src.Width], dst.Pix[y*dst.Stride:y*dst.Stride+src.Width])
	}
	return out
}
