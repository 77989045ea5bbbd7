package field

import (
	"image"

	"github.com/distbake/distbake/pkg/errors"
)

// PaddedBitmap is the rasterized source shape surrounded by a border of Pad
// background pixels on every side, so a full search window around any
// logical output pixel stays in bounds. It is built once before the compute
// phase and read-only thereafter.
type PaddedBitmap struct {
	Gray  *image.Gray
	Pad   int
	Class Classifier
}

// NewPaddedBitmap wraps a grayscale bitmap whose logical content is centered
// inside a border of pad pixels. The bitmap must be at least 2*pad+1 on each
// axis so a non-empty logical region remains.
func NewPaddedBitmap(gray *image.Gray, pad int, class Classifier) (*PaddedBitmap, error) {
	if gray == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing source bitmap")
	}
	if pad < 1 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "padding must be at least 1, got %d", pad)
	}
	b := gray.Bounds()
	if b.Dx() <= 2*pad || b.Dy() <= 2*pad {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"source bitmap %dx%d too small for padding %d", b.Dx(), b.Dy(), pad)
	}
	return &PaddedBitmap{Gray: gray, Pad: pad, Class: class}, nil
}

// Width returns the logical (unpadded) width.
func (p *PaddedBitmap) Width() int { return p.Gray.Bounds().Dx() - 2*p.Pad }

// Height returns the logical (unpadded) height.
func (p *PaddedBitmap) Height() int { return p.Gray.Bounds().Dy() - 2*p.Pad }
