// Package raster turns vector and raster inputs into the padded grayscale
// bitmap the distance search scans.
//
// SVG sources are parsed with oksvg and rasterized with rasterx at the
// requested long-edge resolution. Raster sources are converted to grayscale
// and smoothly resized to the same resolution. Either way the shape lands
// centered inside a border of background pixels wide enough that a full
// search window around any logical pixel stays in bounds.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/distbake/distbake/pkg/errors"
	"github.com/distbake/distbake/pkg/field"
)

// Shape is a parsed vector source and its intrinsic aspect ratio.
type Shape struct {
	icon   *oksvg.SvgIcon
	aspect float64
}

// ParseSVG parses SVG data into a renderable shape.
func ParseSVG(data []byte) (*Shape, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse SVG")
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "SVG has no usable view box")
	}
	return &Shape{icon: icon, aspect: icon.ViewBox.W / icon.ViewBox.H}, nil
}

// Aspect returns width/height of the source shape. It is preserved through
// every resize; both axes always use the scale implied by the long edge.
func (s *Shape) Aspect() float64 { return s.aspect }

// Size computes pixel dimensions from an aspect ratio and the length of the
// longer edge. Dimensions never drop below 1.
func Size(aspect float64, longEdge int) (w, h int) {
	if aspect < 1 {
		w, h = int(float64(longEdge)*aspect), longEdge
	} else {
		w, h = longEdge, int(float64(longEdge)/aspect)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Rasterize renders the shape at longEdge resolution into a bitmap padded
// with pad background pixels on every side. The shape is drawn with its own
// fill colors onto the background the classifier treats as outside, so a
// plain black-on-white SVG classifies as inside by default.
func (s *Shape) Rasterize(longEdge, pad int, class field.Classifier) (*field.PaddedBitmap, error) {
	if err := errors.ValidateSourceSize(longEdge); err != nil {
		return nil, err
	}

	w, h := Size(s.aspect, longEdge)
	full := image.Rect(0, 0, w+2*pad, h+2*pad)

	rgba := image.NewRGBA(full)
	draw.Draw(rgba, full, image.NewUniform(color.Gray{Y: class.Background()}), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(full.Dx(), full.Dy(), rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(full.Dx(), full.Dy(), scanner)
	s.icon.SetTarget(float64(pad), float64(pad), float64(w), float64(h))
	s.icon.Draw(dasher, 1.0)

	return field.NewPaddedBitmap(toGray(rgba), pad, class)
}

// FromImage builds the padded bitmap from an already rasterized source. The
// image is converted to grayscale and smoothly resized so its long edge
// matches longEdge, then surrounded with the background border.
func FromImage(img image.Image, longEdge, pad int, class field.Classifier) (*field.PaddedBitmap, float64, error) {
	if err := errors.ValidateSourceSize(longEdge); err != nil {
		return nil, 0, err
	}
	b := img.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		return nil, 0, errors.New(errors.ErrCodeInvalidInput, "source image is empty")
	}

	aspect := float64(b.Dx()) / float64(b.Dy())
	w, h := Size(aspect, longEdge)

	full := image.Rect(0, 0, w+2*pad, h+2*pad)
	gray := image.NewGray(full)
	bg := class.Background()
	for i := range gray.Pix {
		gray.Pix[i] = bg
	}
	inner := image.Rect(pad, pad, pad+w, pad+h)
	xdraw.CatmullRom.Scale(gray, inner, img, b, xdraw.Src, nil)

	padded, err := field.NewPaddedBitmap(gray, pad, class)
	if err != nil {
		return nil, 0, err
	}
	return padded, aspect, nil
}

// toGray collapses the rendered RGBA canvas to 8-bit luminance.
func toGray(rgba *image.RGBA) *image.Gray {
	gray := image.NewGray(rgba.Bounds())
	draw.Draw(gray, gray.Bounds(), rgba, rgba.Bounds().Min, draw.Src)
	return gray
}
