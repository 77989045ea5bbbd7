// Package field bakes signed distance fields out of binarized grayscale
// bitmaps.
//
// Each output byte encodes the signed Euclidean distance, in source pixels,
// from a pixel to the nearest pixel of the opposite classification. The
// search is a brute-force scan of a square window around every pixel, with
// no spatial pruning and no exact two-pass transform; rows are independent,
// so the scan parallelizes across a worker pool.
package field

import (
	"math"

	"github.com/distbake/distbake/pkg/errors"
)

// Kernel is a precomputed look-up table of Euclidean distances from the
// center of a square search window to every other cell of the window.
// It is built once and shared read-only by all workers.
type Kernel struct {
	// Dist holds the distances in row-major order, side length Dim().
	Dist []float64

	// MaxDist is the search radius in source pixels.
	MaxDist int
}

// NewKernel builds the distance table for a search radius of maxDist source
// pixels. The window side length is 2*maxDist+1 and the center cell has
// distance 0. The table is neither sorted nor pruned; lookups during the
// search are exhaustive.
func NewKernel(maxDist int) (*Kernel, error) {
	if err := errors.ValidateMaxDist(maxDist); err != nil {
		return nil, err
	}

	dim := maxDist*2 + 1
	dist := make([]float64, dim*dim)
	for j := 0; j < dim; j++ {
		for i := 0; i < dim; i++ {
			dx := float64(i - maxDist)
			dy := float64(j - maxDist)
			dist[j*dim+i] = math.Sqrt(dx*dx + dy*dy)
		}
	}
	return &Kernel{Dist: dist, MaxDist: maxDist}, nil
}

// Dim returns the side length of the search window.
func (k *Kernel) Dim() int { return k.MaxDist*2 + 1 }

// MaxWindow returns the distance from the window center to its farthest
// corner. Signed distances are clamped to [-MaxWindow, +MaxWindow] before
// normalization.
func (k *Kernel) MaxWindow() float64 {
	return math.Sqrt(2 * float64(k.MaxDist) * float64(k.MaxDist))
}
