package field

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvert_FlipsExtremes(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.Pix[0] = 0
	img.Pix[1] = 255

	Invert(img)

	assert.Equal(t, uint8(255), img.Pix[0])
	assert.Equal(t, uint8(0), img.Pix[1])
}

func TestInvert_TwiceIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	img := image.NewGray(image.Rect(0, 0, 16, 9))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	original := append([]uint8(nil), img.Pix...)

	Invert(img)
	Invert(img)

	assert.Equal(t, original, img.Pix)
}
