package imageio

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/distbake/distbake/pkg/errors"
)

func TestIsVector(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"shape.svg", true},
		{"SHAPE.SVG", true},
		{"shape.png", false},
		{"shape.svg.png", false},
		{"shape", false},
	}
	for _, tt := range tests {
		if got := IsVector(tt.path); got != tt.want {
			t.Errorf("IsVector(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWriteAndDecodeRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	img.SetGray(1, 2, color.Gray{Y: 42})

	path := filepath.Join(t.TempDir(), "field.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeBytes(data, path)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("decoded size = %dx%d, want 4x4", b.Dx(), b.Dy())
	}
	r, g, bl, _ := decoded.At(1, 2).RGBA()
	if r>>8 != 42 || g>>8 != 42 || bl>>8 != 42 {
		t.Errorf("decoded pixel = (%d,%d,%d), want 42 gray", r>>8, g>>8, bl>>8)
	}
}

func TestDecodeBytes_Garbage(t *testing.T) {
	_, err := DecodeBytes([]byte("definitely not a png"), "garbage.png")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("DecodeBytes() error = %v, want INVALID_INPUT", err)
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.png"), []byte{1})
	if !errors.Is(err, errors.ErrCodeInvalidOutput) {
		t.Errorf("WriteFile() error = %v, want INVALID_OUTPUT", err)
	}
}
