package field

import (
	"image"
	"runtime"
	"sync"

	"github.com/distbake/distbake/pkg/errors"
)

// DefaultWorkers is used when hardware concurrency cannot be detected.
const DefaultWorkers = 4

// unresolved is a sentinel minimum larger than any kernel distance. A pixel
// whose window contains no opposite-classified cell keeps it and gets
// clamped to the window maximum.
const unresolved = 1e6

// ResolveWorkers turns a requested worker count into an effective one.
// Zero means auto-detect from hardware concurrency, falling back to
// DefaultWorkers if detection reports nothing usable. Explicit requests are
// returned unchanged and validated by Compute.
func ResolveWorkers(requested int) int {
	if requested != 0 {
		return requested
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return DefaultWorkers
}

// RowOwner assigns output rows to workers by interleaving: worker t owns
// rows t, t+workers, t+2*workers, and so on. Correctness only needs the
// partition to be disjoint and complete; interleaving additionally keeps the
// load near uniform since per-pixel cost is constant.
func RowOwner(row, workers int) int { return row % workers }

// Compute bakes the signed distance field for the logical region of src.
//
// For every logical pixel it classifies the source pixel under the window
// center, scans the full kernel window for cells of the opposite
// classification, and takes the minimum precomputed distance. The minimum is
// clamped to the window maximum, signed negative when the center is inside,
// and mapped linearly from [-MaxWindow, +MaxWindow] onto [0, 255] with
// truncation.
//
// Rows are statically partitioned across workers goroutines per RowOwner;
// each worker writes a disjoint row set, so the phase needs no locks. Compute
// blocks until every worker has finished and never exposes partial results.
// Output is byte-identical for any worker count.
func Compute(src *PaddedBitmap, k *Kernel, workers int) (*image.Gray, error) {
	if src == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing source bitmap")
	}
	if k == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "missing search kernel")
	}
	if workers < 1 {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "worker count must be at least 1, got %d", workers)
	}
	if src.Pad < k.MaxDist {
		return nil, errors.New(errors.ErrCodeInvalidParameter,
			"search radius %d exceeds source padding %d", k.MaxDist, src.Pad)
	}

	width, height := src.Width(), src.Height()
	out := image.NewGray(image.Rect(0, 0, width, height))

	dim := k.Dim()
	maxWindow := k.MaxWindow()
	class := src.Class
	pix := src.Gray.Pix
	stride := src.Gray.Stride
	// Offset from a logical pixel to the top-left cell of its window.
	off := src.Pad - k.MaxDist

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(worker int) {
			defer wg.Done()
			for y := worker; y < height; y += workers {
				outRow := out.Pix[y*out.Stride : y*out.Stride+width]
				for x := 0; x < width; x++ {
					inside := class.Inside(pix[(y+src.Pad)*stride+x+src.Pad])

					minDist := float64(unresolved)
					ki := 0
					for j := 0; j < dim; j++ {
						rowStart := (y+off+j)*stride + x + off
						winRow := pix[rowStart : rowStart+dim]
						for i := 0; i < dim; i++ {
							if class.Inside(winRow[i]) != inside {
								if d := k.Dist[ki]; d < minDist {
									minDist = d
								}
							}
							ki++
						}
					}

					if minDist > maxWindow {
						minDist = maxWindow
					}
					if inside {
						minDist = -minDist
					}
					outRow[x] = uint8((minDist/maxWindow + 1) * 0.5 * 255)
				}
			}
		}(w)
	}
	wg.Wait()

	return out, nil
}
