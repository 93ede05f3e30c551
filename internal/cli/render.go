package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/config"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/io"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/pipeline"
)

// renderOpts holds the command-line flags for rendering.
type renderOpts struct {
	output  string     // output file path
	format  formatFlag // output format
	scale   float64    // PNG scale factor
	refresh bool       // bypass cached artifacts
}

// formatFlag is a pflag.Value restricted to the supported output formats.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }
func (f *formatFlag) Type() string   { return "format" }

func (f *formatFlag) Set(s string) error {
	if err := pipeline.ValidateFormat(s); err != nil {
		return err
	}
	*f = formatFlag(s)
	return nil
}

// renderCommand creates the command that turns an outline into a diagram.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		output: pipeline.DefaultOutput,
		format: formatFlag(pipeline.DefaultFormat),
		scale:  pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   appName + " [file]",
		Short: "Render an indented text outline as a tree diagram",
		Long: `hnotes reads a plain-text outline where every two leading spaces mean one
level deeper, and writes an HTML page with an SVG tree of rounded boxes.

With no file argument a built-in sample outline is rendered. Use "-" to read
the outline from standard input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg, &opts); err != nil {
				return err
			}
			if cfg.Log.Verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.runRender(cmd, args, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().VarP(&opts.format, "format", "f", "output format: html, svg, json, pdf, png")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// applyFlags lays explicitly set flags over cfg. Unless an output path was
// given by flag or config file, the output name follows the final format.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *renderOpts) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = string(opts.format)
	}
	switch {
	case flags.Changed("output"):
		cfg.Output.Path = opts.output
	case !cfg.Output.PathSet():
		cfg.Output.Path = config.OutputPathFor(cfg.Output.Format)
	}
	return cfg.Validate()
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, cfg config.Config, opts renderOpts) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	source, name, err := readInput(cmd, args, cfg.Input.MaxBytes)
	if err != nil {
		return err
	}
	c.Logger.Debug("read outline", "input", name, "bytes", len(source))

	store, err := newCache(c.resolveCacheDir(cfg))
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer store.Close()

	runner := pipeline.NewRunner(store, cfg.Cache.TTL.Duration, c.Logger)
	result, err := runner.Execute(ctx, source, pipeline.Options{
		Format:  cfg.Output.Format,
		Scale:   opts.scale,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := io.WriteFileAtomic(cfg.Output.Path, result.Artifact); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", name))

	out := cmd.OutOrStdout()
	printSuccess(out, "Wrote %s", cfg.Output.Path)
	printStats(out, result.Stats.NodeCount, result.Stats.MaxDepth, result.CacheHit)
	return nil
}

// readInput returns the outline source and a display name for it.
func readInput(cmd *cobra.Command, args []string, maxBytes int64) ([]byte, string, error) {
	if len(args) == 0 {
		return []byte(sampleOutline), "built-in sample", nil
	}
	if args[0] == "-" {
		data, err := io.ReadOutline(cmd.InOrStdin(), maxBytes)
		return data, "stdin", err
	}
	data, err := io.ImportOutline(args[0], maxBytes)
	return data, args[0], err
}
