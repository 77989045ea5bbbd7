package field

import "image"

// Invert flips the polarity of a completed field in place, replacing every
// byte v with 255-v. Applying it twice is the identity. It must only run
// after Compute has returned, never concurrently with it.
func Invert(img *image.Gray) {
	for i, v := range img.Pix {
		img.Pix[i] = 255 - v
	}
}
