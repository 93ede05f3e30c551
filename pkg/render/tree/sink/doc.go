// Package sink provides output format renderers for laid-out outline trees.
//
// # Overview
//
// A "sink" turns a tree positioned by [layout.Apply] into a final document:
//
//   - HTML: a static page embedding the SVG drawing (the default output)
//   - SVG: the bare drawing
//   - JSON: box geometry export for external tools
//   - PDF and PNG: converted from SVG (requires rsvg-convert)
//
// # Drawing
//
// [RenderSVG] walks the tree in pre-order. For every child it emits a
// connector from the child's left edge midpoint to the parent's top edge
// midpoint, then draws the child's whole subtree. Only after all children
// does the parent emit its rounded rectangle and one text element per display
// line, so parent boxes paint over the connectors that reach them.
//
// The canvas has a fixed width ([DocumentWidth]) and a height derived from
// the root's laid-out height.
//
// Box text is inserted verbatim. No XML escaping is performed, so outline
// text containing markup becomes markup in the document.
//
// # Usage
//
//	root := outline.Parse(lines)
//	layout.Apply(root, layout.OriginX, layout.OriginY)
//	page := sink.RenderHTML(root)
//
// [layout.Apply]: github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/layout.Apply
package sink
