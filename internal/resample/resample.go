// Package resample rescales gray images with github.com/nfnt/resize.
package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/nfnt/resize"

	"github.com/tdionizio/robertsedge/internal/ir"
)

// Interpolation selects the resampling kernel.
type Interpolation int

const (
	InterpolationNearest Interpolation = iota
	InterpolationBilinear
	InterpolationBicubic
	InterpolationMitchellNetravali
	InterpolationLanczos2
	InterpolationLanczos3
)

// ParseInterpolation converts a kernel name to an Interpolation.
func ParseInterpolation(s string) (Interpolation, error) {
	switch s {
	case "nearest":
		return InterpolationNearest, nil
	case "bilinear":
		return InterpolationBilinear, nil
	case "bicubic":
		return InterpolationBicubic, nil
	case "mitchell":
		return InterpolationMitchellNetravali, nil
	case "lanczos2":
		return InterpolationLanczos2, nil
	case "lanczos3":
		return InterpolationLanczos3, nil
	default:
		return 0, fmt.Errorf("unknown interpolation: %q", s)
	}
}

func (i Interpolation) String() string {
	switch i {
	case InterpolationNearest:
		return "nearest"
	case InterpolationBilinear:
		return "bilinear"
	case InterpolationBicubic:
		return "bicubic"
	case InterpolationMitchellNetravali:
		return "mitchell"
	case InterpolationLanczos2:
		return "lanczos2"
	case InterpolationLanczos3:
		return "lanczos3"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

func (i Interpolation) kernel() resize.InterpolationFunction {
	switch i {
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

// Resize scales src to width x height. A zero width or height keeps the
// aspect ratio. The result must stay within ir.MaxSamples.
func Resize(src *ir.GrayImage, width, height int, interp Interpolation) (*ir.GrayImage, error) {
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	width, height, err := targetSize(src, width, height)
	if err != nil {
		return nil, err
	}

	scaled := resize.Resize(uint(width), uint(height), src.ToGray(), interp.kernel())

	out, err := ir.FromImage(scaled)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	out.MaxValue = src.MaxValue
	for _, v := range out.Pixels {
		if int(v) > out.MaxValue {
			out.MaxValue = int(v)
		}
	}
	return out, nil
}

// targetSize fills in a zero side the way resize.Resize derives it and checks
// the final size against the sample ceiling before anything is allocated.
func targetSize(src *ir.GrayImage, width, height int) (int, int, error) {
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	if width == 0 && height == 0 {
		return 0, 0, errors.New("target width and height are both zero")
	}

	w, h := float64(width), float64(height)
	if width == 0 {
		w = math.Floor(0.7 + float64(src.Width)*h/float64(src.Height))
	}
	if height == 0 {
		h = math.Floor(0.7 + float64(src.Height)*w/float64(src.Width))
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("target size %.0fx%.0f is empty", w, h)
	}
	if w > ir.MaxSamples || h > ir.MaxSamples || w*h > ir.MaxSamples {
		return 0, 0, fmt.Errorf("target size %.0fx%.0f exceeds %d pixels", w, h, ir.MaxSamples)
	}
	return int(w), int(h), nil
}
