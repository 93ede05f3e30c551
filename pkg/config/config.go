// Package config loads the optional hnotes TOML configuration file.
//
// Nothing is read unless a path is passed explicitly (the --config flag);
// there is no search path and no environment lookup. A config file looks like:
//
//	[output]
//	path = "notes.html"
//	format = "html"
//
//	[input]
//	max_bytes = 10000
//
//	[log]
//	verbose = false
//
//	[cache]
//	dir = "/tmp/hnotes-cache"
//	ttl = "24h"
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults. Diagram geometry is fixed and has no configuration keys.
package config

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/errors"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/io"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/pipeline"
)

// DefaultCacheTTL is how long cached artifacts stay valid.
const DefaultCacheTTL = 24 * time.Hour

// Config is the decoded configuration file.
type Config struct {
	Output Output `toml:"output"`
	Input  Input  `toml:"input"`
	Log    Log    `toml:"log"`
	Cache  Cache  `toml:"cache"`
}

// Output names the document to write. When no path is given it follows the
// format: "hierarchical_notes.svg" for svg, and so on.
type Output struct {
	Path   string `toml:"path"`
	Format string `toml:"format"`

	pathSet bool
}

// PathSet reports whether the config file named an output path.
func (o Output) PathSet() bool { return o.pathSet }

// OutputPathFor is the default output file for format.
func OutputPathFor(format string) string {
	return strings.TrimSuffix(pipeline.DefaultOutput, "."+pipeline.DefaultFormat) + "." + format
}

type Input struct {
	MaxBytes int64 `toml:"max_bytes"`
}

type Log struct {
	Verbose bool `toml:"verbose"`
}

// Cache configures the artifact cache. An empty Dir disables it.
type Cache struct {
	Dir string   `toml:"dir"`
	TTL Duration `toml:"ttl"`
}

// Duration is a time.Duration decoded from a Go duration string ("90m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: Output{Path: pipeline.DefaultOutput, Format: pipeline.DefaultFormat},
		Input:  Input{MaxBytes: io.DefaultMaxBytes},
		Cache:  Cache{TTL: Duration{DefaultCacheTTL}},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	cfg.Output.pathSet = md.IsDefined("output", "path")
	if !cfg.Output.pathSet {
		cfg.Output.Path = OutputPathFor(cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if err := pipeline.ValidateFormat(c.Output.Format); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.format")
	}
	if err := errors.ValidateOutputPath(c.Output.Path); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.path")
	}
	if c.Input.MaxBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "input.max_bytes must be positive, got %d", c.Input.MaxBytes)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}
