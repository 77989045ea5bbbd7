package pipeline

import (
	"bytes"
	"context"
	"image"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/distbake/distbake/pkg/cache"
	"github.com/distbake/distbake/pkg/errors"
	"github.com/distbake/distbake/pkg/field"
	"github.com/distbake/distbake/pkg/imageio"
	"github.com/distbake/distbake/pkg/observability"
	"github.com/distbake/distbake/pkg/raster"
	"github.com/distbake/distbake/pkg/resample"
)

// Runner executes the bake pipeline with caching.
//
// The Runner is stateless except for the cache and logger - multiple
// goroutines can safely share one Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and logger.
// A nil cache disables caching; a nil logger uses the default.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete rasterize → compute → resample → encode
// pipeline. It validates all parameters before any stage starts, blocks
// until the compute phase has fully joined, and never returns a partial
// field.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read %s", opts.Input)
	}

	key := cache.FieldKey(cache.Params{
		SourceHash: cache.Hash(data),
		SourceSize: opts.SourceSize,
		MaxDist:    opts.MaxDist,
		TargetSize: opts.TargetSize,
		Negate:     opts.Negate,
	})

	// The debug source bitmap is not cached, so a KeepSource run has to
	// rasterize regardless.
	if !opts.Refresh && !opts.KeepSource {
		if artifact, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if cfg, _, err := image.DecodeConfig(bytes.NewReader(artifact)); err == nil {
				observability.Cache().OnCacheHit(ctx, "field")
				logger.Debug("artifact served from cache", "key", key[:13])
				return &Result{
					Artifact: artifact,
					Width:    cfg.Width,
					Height:   cfg.Height,
					CacheHit: true,
					Stats:    Stats{Threads: opts.Threads},
				}, nil
			}
			// Undecodable cached artifact: drop it and rebake.
			_ = r.Cache.Delete(ctx, key)
		}
		observability.Cache().OnCacheMiss(ctx, "field")
	}

	result := &Result{Stats: Stats{Threads: opts.Threads}}

	// Stage 1: Rasterize
	rasterStart := time.Now()
	observability.Bake().OnRasterizeStart(ctx, opts.Input, opts.SourceSize)
	src, aspect, err := r.rasterize(data, opts)
	if err != nil {
		observability.Bake().OnRasterizeComplete(ctx, opts.Input, 0, 0, time.Since(rasterStart), err)
		return nil, err
	}
	observability.Bake().OnRasterizeComplete(ctx, opts.Input, src.Width(), src.Height(), time.Since(rasterStart), nil)
	result.Stats.RasterTime = time.Since(rasterStart)
	result.Stats.RenderedWidth = src.Width()
	result.Stats.RenderedHeight = src.Height()
	if opts.KeepSource {
		result.Source = src.Gray
	}

	logger.Info("rasterized source",
		"width", src.Width(),
		"height", src.Height(),
		"duration", result.Stats.RasterTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Compute
	computeStart := time.Now()
	observability.Bake().OnComputeStart(ctx, src.Width(), src.Height(), opts.Threads)
	kernel, err := field.NewKernel(opts.MaxDist)
	if err != nil {
		return nil, err
	}
	df, err := field.Compute(src, kernel, opts.Threads)
	observability.Bake().OnComputeComplete(ctx, src.Width(), src.Height(), time.Since(computeStart), err)
	if err != nil {
		return nil, err
	}
	if opts.Negate {
		field.Invert(df)
	}
	result.Stats.ComputeTime = time.Since(computeStart)

	logger.Info("baked distance field",
		"threads", opts.Threads,
		"max_dist", opts.MaxDist,
		"duration", result.Stats.ComputeTime)

	// Stage 3+4: Resample and encode
	resampleStart := time.Now()
	tw, th := raster.Size(aspect, opts.TargetSize)
	observability.Bake().OnResampleStart(ctx, tw, th)
	final, err := resample.Downscale(df, tw, th)
	if err != nil {
		observability.Bake().OnResampleComplete(ctx, tw, th, time.Since(resampleStart), err)
		return nil, err
	}
	artifact, err := imageio.EncodePNG(final)
	observability.Bake().OnResampleComplete(ctx, tw, th, time.Since(resampleStart), err)
	if err != nil {
		return nil, err
	}
	result.Stats.ResampleTime = time.Since(resampleStart)
	result.Artifact = artifact
	result.Width = tw
	result.Height = th

	logger.Info("resampled field",
		"width", tw,
		"height", th,
		"duration", result.Stats.ResampleTime)

	if err := r.Cache.Set(ctx, key, artifact, cache.TTLField); err == nil {
		observability.Cache().OnCacheSet(ctx, "field", len(artifact))
	}

	return result, nil
}

// rasterize builds the padded source bitmap from either a vector or a
// raster input and returns it with the source aspect ratio.
func (r *Runner) rasterize(data []byte, opts Options) (*field.PaddedBitmap, float64, error) {
	class := field.Classifier{Negate: opts.Negate}

	if imageio.IsVector(opts.Input) {
		shape, err := raster.ParseSVG(data)
		if err != nil {
			return nil, 0, err
		}
		src, err := shape.Rasterize(opts.SourceSize, opts.MaxDist, class)
		if err != nil {
			return nil, 0, err
		}
		return src, shape.Aspect(), nil
	}

	img, err := imageio.DecodeBytes(data, opts.Input)
	if err != nil {
		return nil, 0, err
	}
	return raster.FromImage(img, opts.SourceSize, opts.MaxDist, class)
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
