// Package cli implements the hnotes command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/buildinfo"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/cache"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/config"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "hnotes"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cacheDir   string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RegisterHooks routes pipeline and cache events to the CLI logger.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders an outline.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.renderCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")
	root.PersistentFlags().StringVar(&c.cacheDir, "cache-dir", "", "enable the artifact cache in this directory")

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Cache
// =============================================================================

// loadConfig returns the defaults, or the --config file laid over them.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(c.configPath)
}

// resolveCacheDir picks --cache-dir over the config file. Empty means the
// cache is disabled.
func (c *CLI) resolveCacheDir(cfg config.Config) string {
	if c.cacheDir != "" {
		return c.cacheDir
	}
	return cfg.Cache.Dir
}

func newCache(dir string) (cache.Cache, error) {
	if dir == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
