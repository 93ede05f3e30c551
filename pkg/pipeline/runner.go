package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/buildinfo"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/cache"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/observability"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/layout"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/sink"
)

// Runner executes the pipeline with an optional artifact cache.
type Runner struct {
	Cache  cache.Cache
	TTL    time.Duration
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching; a nil logger
// uses log.Default().
func NewRunner(c cache.Cache, ttl time.Duration, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, TTL: ttl, Logger: logger}
}

// Execute runs parse → layout → render over source.
func (r *Runner) Execute(ctx context.Context, source []byte, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	result := &Result{RunID: uuid.NewString(), Format: opts.Format}

	// Stage 1: Parse
	start := time.Now()
	root, lineCount := Parse(source)
	result.Root = root
	result.Stats.LineCount = lineCount
	result.Stats.NodeCount = root.Count()
	result.Stats.MaxDepth = root.MaxDepth()
	result.Stats.ParseTime = time.Since(start)
	hooks.OnParseComplete(ctx, lineCount, result.Stats.NodeCount, result.Stats.ParseTime)

	opts.Logger.Info("parsed outline",
		"run", result.RunID,
		"lines", lineCount,
		"nodes", result.Stats.NodeCount,
		"depth", result.Stats.MaxDepth)

	// Stage 2: Layout
	start = time.Now()
	Layout(root)
	result.Stats.Height = sink.DocumentHeight(root)
	result.Stats.Extent, _ = layout.Bounds(root)
	result.Stats.LayoutTime = time.Since(start)
	hooks.OnLayoutComplete(ctx, result.Stats.NodeCount, result.Stats.Height, result.Stats.LayoutTime)

	opts.Logger.Debug("computed layout", "height", result.Stats.Height, "duration", result.Stats.LayoutTime)
	if result.Stats.Extent > sink.DocumentWidth {
		opts.Logger.Warn("outline is deeper than the page is wide; right-most boxes will be clipped",
			"extent", result.Stats.Extent, "width", sink.DocumentWidth)
	}

	// Stage 3: Render
	start = time.Now()
	artifact, hit, err := r.render(ctx, root, source, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Format, len(artifact), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifact = artifact
	result.CacheHit = hit

	opts.Logger.Info("rendered document",
		"format", opts.Format,
		"bytes", len(artifact),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// render produces the artifact for a laid-out root, consulting the cache
// first. The cache key is derived from source.
func (r *Runner) render(ctx context.Context, root *outline.Node, source []byte, opts Options) ([]byte, bool, error) {
	key := cache.ArtifactKey(source, r.keyOpts(opts))
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			hooks.OnCacheHit(ctx, opts.Format)
			return data, true, nil
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "err", err)
		}
		hooks.OnCacheMiss(ctx, opts.Format)
	}

	data, err := Render(root, opts)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		opts.Logger.Warn("cache write failed", "err", err)
	} else {
		hooks.OnCacheSet(ctx, opts.Format, len(data))
	}
	return data, false, nil
}

func (r *Runner) keyOpts(opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: opts.Format, Version: buildinfo.Version}
	if opts.Format == FormatPNG {
		k.Scale = opts.Scale
	}
	return k
}
