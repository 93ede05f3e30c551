// Package pipeline runs the parse → layout → render pipeline for hnotes.
//
// The CLI hands the raw outline text to a [Runner] and gets back a rendered
// artifact. Each stage is also exposed on its own:
//
//	runner := pipeline.NewRunner(nil, 0, logger)
//	result, err := runner.Execute(ctx, source, pipeline.Options{Format: pipeline.FormatHTML})
//	if err != nil {
//	    return err
//	}
//	page := result.Artifact
//
// # Stages
//
//  1. Parse: split the text into lines and build the outline tree
//  2. Layout: position every box and resolve parent heights
//  3. Render: serialize the tree in the requested format
//
// Parse, layout, and HTML/SVG/JSON rendering cannot fail. PDF and PNG
// rendering shells out to rsvg-convert and can. When the runner has a cache,
// rendered artifacts are stored under a key derived from the source text, the
// format, and the build version.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/errors"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOutput is the file written when no output path is given.
	DefaultOutput = "hierarchical_notes.html"

	// DefaultFormat is the default output format.
	DefaultFormat = FormatHTML

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// Formats lists the supported output formats in display order.
var Formats = []string{FormatHTML, FormatSVG, FormatJSON, FormatPDF, FormatPNG}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatSVG:  true,
	FormatJSON: true,
	FormatPDF:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: html, svg, json, pdf, png)", format)
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	Format  string  // Output format, one of Formats
	Scale   float64 // PNG scale factor
	Refresh bool    // Ignore cached artifacts (still stores the new one)

	Logger *log.Logger
}

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the options.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %v", o.Scale)
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in log output.
	RunID string

	// Root is the laid-out outline tree.
	Root *outline.Node

	// Format is the format of Artifact.
	Format string

	// Artifact is the rendered document.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether Artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LineCount  int
	NodeCount  int
	MaxDepth   int
	Height     float64 // Document height
	Extent     float64 // Right edge of the right-most box
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}
