package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/distbake/distbake/pkg/imageio"
	"github.com/distbake/distbake/pkg/pipeline"
)

// bakeOpts holds the command-line flags for the bake command.
type bakeOpts struct {
	output     string // output PNG path, derived from the input when empty
	sourceSize int    // long edge the input is rasterized to
	maxDist    int    // search radius in source pixels
	targetSize int    // long edge of the output field
	threads    int    // worker count, 0 = hardware concurrency
	negate     bool   // treat lighter-than-midgray as inside
	saveSource string // write the padded source bitmap here for debugging
	noCache    bool   // disable the artifact cache
	refresh    bool   // bypass cached artifacts
	configFile string // explicit config file path
}

// bakeCommand creates the bake command, the main entry point of the tool.
func (c *CLI) bakeCommand() *cobra.Command {
	var opts bakeOpts

	cmd := &cobra.Command{
		Use:   "bake [input]",
		Short: "Bake a signed distance field from an SVG or raster image",
		Long: `Bake rasterizes the input at --source-size resolution, searches around
every pixel for the nearest pixel on the other side of the shape outline, and
writes the signed distances as a grayscale PNG. Values map
[-sqrt(2)*maxdist, +sqrt(2)*maxdist] onto [0, 255], so mid-gray marks the
outline itself.

By default black (or darker than mid-gray) colors in the source are assumed
to be inside the shape. With --negate white (or lighter than mid-gray) colors
are assumed to be inside.

A larger --source-size produces higher quality output but increases
processing time. The --max-dist radius should be scaled proportionally as the
source size changes; using a too large value can cause problems with concave
shapes with small detail.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBake(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file (default: input name with .png)")
	cmd.Flags().IntVar(&opts.sourceSize, "source-size", 0, fmt.Sprintf("long edge the input is rasterized to (default %d)", pipeline.DefaultSourceSize))
	cmd.Flags().IntVar(&opts.maxDist, "max-dist", 0, fmt.Sprintf("search radius in source pixels (default %d)", pipeline.DefaultMaxDist))
	cmd.Flags().IntVar(&opts.targetSize, "target-size", 0, "long edge of the output (default source-size/16)")
	cmd.Flags().IntVarP(&opts.threads, "threads", "t", 0, "worker threads (default: hardware threads)")
	cmd.Flags().BoolVar(&opts.negate, "negate", false, "treat lighter-than-midgray colors as inside the shape")
	cmd.Flags().StringVar(&opts.saveSource, "save-source", "", "save the rasterized source bitmap as a PNG for debugging")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "rebake even if a cached artifact exists")
	cmd.Flags().StringVar(&opts.configFile, "config", "", "config file (default ~/.config/distbake/config.toml)")

	return cmd
}

// runBake loads defaults, executes the pipeline and writes the outputs.
func (c *CLI) runBake(ctx context.Context, input string, opts *bakeOpts) error {
	logger := loggerFromContext(ctx)

	pOpts := pipeline.Options{
		Input:      input,
		SourceSize: opts.sourceSize,
		MaxDist:    opts.maxDist,
		TargetSize: opts.targetSize,
		Threads:    opts.threads,
		Negate:     opts.negate,
		KeepSource: opts.saveSource != "",
		Refresh:    opts.refresh,
		Logger:     logger,
	}

	cfgPath := opts.configFile
	if cfgPath == "" {
		if p, err := configPath(); err == nil {
			cfgPath = p
		}
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	cfg.apply(&pOpts)

	runner := c.newRunner(opts.noCache)

	// The runner logs its own stage progress; in quiet mode show a spinner
	// instead so long bakes don't look stuck.
	var spin *Spinner
	if !c.Verbose() {
		spin = newSpinnerWithContext(ctx, "Baking distance field...")
		spin.Start()
	}

	p := newProgress(logger)
	result, err := runner.Execute(ctx, pOpts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Baked %dx%d field", result.Width, result.Height))

	output := outputPath(opts.output, input)
	if err := imageio.WriteFile(output, result.Artifact); err != nil {
		return err
	}

	if opts.saveSource != "" && result.Source != nil {
		if err := imageio.WritePNG(opts.saveSource, result.Source); err != nil {
			return err
		}
		printFile(opts.saveSource)
	}

	printSuccess("Generated %s", output)
	printBakeStats(result.Width, result.Height, result.Stats.Threads, result.CacheHit)
	return nil
}

// outputPath derives the output file path. An empty output falls back to the
// input name with a .png extension; if that would overwrite the input (a
// raster .png source), a _df suffix is added.
func outputPath(output, input string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	out := base + ".png"
	if out == input {
		out = base + "_df.png"
	}
	return out
}
