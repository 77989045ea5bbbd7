package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/distbake/distbake/pkg/errors"
	"github.com/distbake/distbake/pkg/pipeline"
)

// Config holds default bake parameters loaded from the user config file.
// Flags always win over the config file; the config file wins over the
// built-in defaults.
type Config struct {
	SourceSize int  `toml:"source_size"`
	MaxDist    int  `toml:"max_dist"`
	TargetSize int  `toml:"target_size"`
	Threads    int  `toml:"threads"`
	Negate     bool `toml:"negate"`
}

// loadConfig reads a TOML config from path. A missing file is not an error
// and yields the zero config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to parse config %s", path)
	}
	return cfg, nil
}

// apply fills any pipeline option still at its zero value from the config.
func (cfg Config) apply(opts *pipeline.Options) {
	if opts.SourceSize == 0 {
		opts.SourceSize = cfg.SourceSize
	}
	if opts.MaxDist == 0 {
		opts.MaxDist = cfg.MaxDist
	}
	if opts.TargetSize == 0 {
		opts.TargetSize = cfg.TargetSize
	}
	if opts.Threads == 0 {
		opts.Threads = cfg.Threads
	}
	if cfg.Negate {
		opts.Negate = true
	}
}
