// Package imageio reads source bitmaps and writes baked fields to disk.
package imageio

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for raster source inputs.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/distbake/distbake/pkg/errors"
)

// IsVector reports whether path names an SVG source by extension.
func IsVector(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// DecodeBytes decodes raster image data (PNG, JPEG or GIF). name is used in
// error messages only.
func DecodeBytes(data []byte, name string) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to decode %s", name)
	}
	return img, nil
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img as PNG and writes it to path.
func WritePNG(path string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes already encoded artifact bytes to path.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidOutput, err, "failed to write %s", path)
	}
	return nil
}
