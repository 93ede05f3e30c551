// Package render turns laid-out outline trees into documents.
//
// # Overview
//
// Rendering is split across subpackages:
//
//   - [tree/layout]: assigns box coordinates and heights
//   - [tree/sink]: output formats (HTML, SVG, JSON, PDF, PNG)
//
// This package holds the format conversion shared by the sinks. [ToPDF] and
// [ToPNG] convert an SVG document using the external rsvg-convert tool (from
// librsvg):
//
//	svg := sink.RenderSVG(root)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// A missing tool is reported as a CONVERSION_FAILED error.
//
// [tree/layout]: github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/layout
// [tree/sink]: github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/sink
package render
