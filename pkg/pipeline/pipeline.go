// Package pipeline provides the core bake pipeline for distbake.
//
// This package implements the complete rasterize → compute → resample →
// encode pipeline behind the CLI. Centralizing it keeps parameter defaults
// and validation in one place and makes the stages reusable and testable
// without a terminal attached.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Rasterize: render the vector shape (or normalize a raster input) into
//     a padded grayscale bitmap
//  2. Compute: bake the signed distance field across a worker pool
//  3. Resample: smoothly downsize the field to the target resolution
//  4. Encode: produce the final PNG artifact
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{Input: "logo.svg"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("logo.png", result.Artifact, 0o644)
package pipeline

import (
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/distbake/distbake/pkg/errors"
	"github.com/distbake/distbake/pkg/field"
)

// =============================================================================
// Default Values - Single Source of Truth
// =============================================================================

const (
	// DefaultSourceSize is the long edge, in pixels, the input is rasterized
	// to. Larger sources produce higher quality fields at the cost of
	// processing time.
	DefaultSourceSize = 3000

	// DefaultMaxDist is the search radius in source pixels. It should scale
	// proportionally with the source size; too large a radius causes
	// problems with concave shapes with small detail.
	DefaultMaxDist = 8

	// DefaultTargetDivisor derives the default output long edge from the
	// source long edge.
	DefaultTargetDivisor = 16
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a bake run.
type Options struct {
	// Input is the source file: an SVG, or a pre-rasterized PNG/JPEG/GIF.
	Input string

	// SourceSize is the long edge the input is rasterized to.
	// Zero selects DefaultSourceSize.
	SourceSize int

	// MaxDist is the search radius in source pixels. Zero selects
	// DefaultMaxDist. Output values map
	// [-sqrt(2)*MaxDist, +sqrt(2)*MaxDist] onto [0, 255].
	MaxDist int

	// TargetSize is the long edge of the output field. Zero selects
	// SourceSize / DefaultTargetDivisor.
	TargetSize int

	// Threads is the worker count for the compute phase. Zero auto-detects
	// hardware concurrency.
	Threads int

	// Negate flips the classification so lighter-than-midgray pixels count
	// as inside, and inverts the polarity of the output field.
	Negate bool

	// KeepSource asks the runner to retain the padded source bitmap on the
	// result for debugging output.
	KeepSource bool

	// Refresh bypasses the artifact cache.
	Refresh bool

	// Logger receives stage progress. Nil means the default logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks every parameter before any computation
// starts and fills in defaults. On failure the whole run aborts; no stage
// runs and no output is written.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "missing input file")
	}

	if o.SourceSize == 0 {
		o.SourceSize = DefaultSourceSize
	}
	if err := errors.ValidateSourceSize(o.SourceSize); err != nil {
		return err
	}

	if o.MaxDist == 0 {
		o.MaxDist = DefaultMaxDist
	}
	if err := errors.ValidateMaxDist(o.MaxDist); err != nil {
		return err
	}

	if err := errors.ValidateTargetSize(o.TargetSize); err != nil {
		return err
	}
	if o.TargetSize == 0 {
		o.TargetSize = o.SourceSize / DefaultTargetDivisor
		if o.TargetSize < 1 {
			o.TargetSize = 1
		}
	}

	if err := errors.ValidateThreads(o.Threads); err != nil {
		return err
	}
	o.Threads = field.ResolveWorkers(o.Threads)

	return nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifact is the final encoded PNG.
	Artifact []byte

	// Width and Height are the output field dimensions.
	Width, Height int

	// Source is the padded source bitmap, populated only when
	// Options.KeepSource is set.
	Source *image.Gray

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RenderedWidth  int
	RenderedHeight int
	Threads        int
	RasterTime     time.Duration
	ComputeTime    time.Duration
	ResampleTime   time.Duration
}

// Elapsed returns the total time spent in pipeline stages.
func (s Stats) Elapsed() time.Duration {
	return s.RasterTime + s.ComputeTime + s.ResampleTime
}
