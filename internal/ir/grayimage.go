package ir

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// MaxSamples is the largest supported pixel count (1920x1080).
const MaxSamples = 2073600

// MaxSampleValue is the ceiling for single-byte samples.
const MaxSampleValue = 255

// ErrInvalidImage is returned by Validate for images that break the
// GrayImage invariants.
var ErrInvalidImage = errors.New("invalid gray image")

// GrayImage is the intermediate representation passed between the decoder,
// the edge filter, the compositor and the encoder. Pixels are stored as one
// byte per sample in row-major order.
type GrayImage struct {
	Width    int
	Height   int
	MaxValue int
	Pixels   []byte // len = Width * Height
}

// New allocates a zeroed image. It does not validate its arguments.
func New(width, height, maxValue int) *GrayImage {
	return &GrayImage{
		Width:    width,
		Height:   height,
		MaxValue: maxValue,
		Pixels:   make([]byte, width*height),
	}
}

// Validate checks dimensions, sample ceiling, max value and buffer length.
func (img *GrayImage) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, img.Width, img.Height)
	}
	if img.Width > MaxSamples/img.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d samples", ErrInvalidImage, img.Width, img.Height, MaxSamples)
	}
	if img.MaxValue <= 0 || img.MaxValue > MaxSampleValue {
		return fmt.Errorf("%w: max value %d", ErrInvalidImage, img.MaxValue)
	}
	if len(img.Pixels) != img.Width*img.Height {
		return fmt.Errorf("%w: expected %d samples, got %d", ErrInvalidImage, img.Width*img.Height, len(img.Pixels))
	}
	return nil
}

// At returns the sample at (row, col). Out-of-range positions read as 0.
func (img *GrayImage) At(row, col int) byte {
	if row < 0 || row >= img.Height || col < 0 || col >= img.Width {
		return 0
	}
	return img.Pixels[row*img.Width+col]
}

// Set writes the sample at (row, col). Out-of-range positions are ignored.
func (img *GrayImage) Set(row, col int, v byte) {
	if row < 0 || row >= img.Height || col < 0 || col >= img.Width {
		return
	}
	img.Pixels[row*img.Width+col] = v
}

// Clone returns a deep copy.
func (img *GrayImage) Clone() *GrayImage {
	pixels := make([]byte, len(img.Pixels))
	copy(pixels, img.Pixels)
	return &GrayImage{
		Width:    img.Width,
		Height:   img.Height,
		MaxValue: img.MaxValue,
		Pixels:   pixels,
	}
}

// SameSize reports whether a and b have identical dimensions.
func SameSize(a, b *GrayImage) bool {
	return a.Width == b.Width && a.Height == b.Height
}

// ToGray copies the samples into an *image.Gray so the image can be handed
// to image.Image based libraries. Samples are not rescaled by MaxValue.
func (img *GrayImage) ToGray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		copy(g.Pix[y*g.Stride:y*g.Stride+img.Width], img.Pixels[y*img.Width:(y+1)*img.Width])
	}
	return g
}

// FromImage converts any image.Image to a GrayImage, going through
// color.GrayModel for non-gray sources. MaxValue is set to 255.
func FromImage(src image.Image) (*GrayImage, error) {
	b := src.Bounds()
	out := &GrayImage{
		Width:    b.Dx(),
		Height:   b.Dy(),
		MaxValue: MaxSampleValue,
	}
	if out.Width <= 0 || out.Height <= 0 || out.Width > MaxSamples/out.Height {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, out.Width, out.Height)
	}
	out.Pixels = make([]byte, out.Width*out.Height)

	if g, ok := src.(*image.Gray); ok {
		for y := 0; y < out.Height; y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pixels[y*out.Width:(y+1)*out.Width], g.Pix[off:off+out.Width])
		}
		return out, nil
	}

	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			out.Pixels[y*out.Width+x] = c.Y
		}
	}
	return out, nil
}
