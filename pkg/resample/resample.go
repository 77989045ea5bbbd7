// Package resample downsizes baked distance fields to their final output
// resolution.
//
// Fields are baked at source resolution and shrunk afterwards, so the
// filter must interpolate to keep the field smooth. Catmull-Rom is used.
package resample

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/distbake/distbake/pkg/errors"
)

// Downscale resizes src to width x height with a smooth interpolating
// filter. The caller derives the dimensions from the target long edge and
// the preserved aspect ratio; this function applies whatever it is given.
func Downscale(src *image.Gray, width, height int) (*image.Gray, error) {
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing field to resample")
	}
	if width < 1 || height < 1 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "target size %dx%d must be positive", width, height)
	}

	if b := src.Bounds(); b.Dx() == width && b.Dy() == height {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
