// Package pkg provides the libraries behind hnotes, which turns an indented
// plain-text outline into a tree diagram of rounded boxes.
//
// # Overview
//
// Every outline line becomes a box. Two leading spaces put a line one level
// deeper; a box's parent is the nearest earlier line one level up. The data
// flow:
//
//	outline text
//	     ↓
//	[outline] package (split lines, build the tree, wrap box text)
//	     ↓
//	[render/tree/layout] package (position boxes, grow parents)
//	     ↓
//	[render/tree/sink] package (HTML/SVG/JSON, PDF/PNG via [render])
//	     ↓
//	[io] package (atomic write)
//
// [pipeline] runs the three middle stages behind a single call and caches
// rendered artifacts through [cache].
//
// # Quick Start
//
//	root := outline.Parse(outline.SplitLines("Fruits\n  Apple\n  Pear"))
//	layout.Apply(root, layout.OriginX, layout.OriginY)
//	page := sink.RenderHTML(root)
//	err := io.WriteFileAtomic("hierarchical_notes.html", page)
//
// # Main Packages
//
// [outline] - The node tree and the indentation parser.
//
// [textwrap] - Greedy word wrapping with a fixed per-character width.
//
// [render/tree/layout] - Horizontal tree layout with top-aligned parents.
//
// [render/tree/sink] - Output formats. Box text is written verbatim.
//
// [config] - The optional TOML config file.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for pipeline and cache events.
//
// # Testing
//
//	go test ./...               # All tests
//	go test -run Example ./...  # Examples only
//
// PDF and PNG tests need rsvg-convert on PATH and are skipped otherwise.
//
// [outline]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline
// [textwrap]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/textwrap
// [render]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render
// [render/tree/layout]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/layout
// [render/tree/sink]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/sink
// [io]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/cache
// [config]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/config
// [errors]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/observability
package pkg
