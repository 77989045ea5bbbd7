// Package pkg provides the core libraries for distbake distance field baking.
//
// # Overview
//
// Distbake turns a binarized source image into a grayscale signed distance
// field, the texture format popularized for crisp text and icon magnification.
// The pkg directory is organized into the following areas:
//
//  1. [field] - Domain logic (classification, kernel, brute-force field compute)
//  2. [raster] - Input handling (SVG parsing, rasterization, raster ingestion)
//  3. [resample] - Output downsampling
//  4. [pipeline] - Orchestration (rasterize → compute → resample → encode)
//  5. [cache] - Baked artifact caching
//
// # Architecture
//
// The typical data flow through distbake:
//
//	SVG or raster input
//	         ↓
//	    [raster] package (rasterize at source size, pad with background)
//	         ↓
//	    [field] package (signed distance compute across a worker pool)
//	         ↓
//	    [resample] package (Catmull-Rom downscale to target size)
//	         ↓
//	    grayscale PNG output
//
// # Quick Start
//
// Bake a distance field from an SVG:
//
//	import (
//	    "context"
//	    "github.com/distbake/distbake/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Input: "shape.svg",
//	})
//	// result.Artifact holds the encoded PNG
//
// # Main Packages
//
// [field] - Signed Euclidean distance computation. A precomputed kernel of
// window distances is scanned around every pixel of a padded source bitmap;
// rows are statically partitioned across a fixed worker pool so the output
// is identical for any worker count.
//
// [raster] - Shape input. SVG sources are parsed and rasterized at the
// requested resolution with a background border; pre-rasterized images are
// resized into the same padded layout.
//
// [resample] - High-quality Catmull-Rom downscaling from the oversampled
// field to the compact output resolution.
//
// [pipeline] - The complete bake pipeline used by the CLI. Validates options,
// checks the artifact cache, runs the stages and encodes the result.
//
// [cache] - Content-addressed artifact cache keyed on the source bytes and
// all bake parameters, with TTL-based expiry.
//
// [errors] - Coded errors with user-facing messages.
//
// [imageio] - Image decoding and PNG encoding helpers.
//
// [observability] - Optional hooks for metrics and tracing backends.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/field/...        # Specific package
//
// [field]: https://pkg.go.dev/github.com/distbake/distbake/pkg/field
// [raster]: https://pkg.go.dev/github.com/distbake/distbake/pkg/raster
// [resample]: https://pkg.go.dev/github.com/distbake/distbake/pkg/resample
// [pipeline]: https://pkg.go.dev/github.com/distbake/distbake/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/distbake/distbake/pkg/cache
// [errors]: https://pkg.go.dev/github.com/distbake/distbake/pkg/errors
// [imageio]: https://pkg.go.dev/github.com/distbake/distbake/pkg/imageio
// [observability]: https://pkg.go.dev/github.com/distbake/distbake/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/distbake/distbake/pkg/buildinfo
package pkg
