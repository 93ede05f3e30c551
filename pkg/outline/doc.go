// Package outline parses indentation-structured text into a tree of boxes.
//
// # Input
//
// An outline is a sequence of lines. Two leading spaces make one level of
// nesting; only the space character counts, so tabs are treated as content.
//
//	Project
//	  Design
//	    Sketches
//	  Build
//	Release
//
// # Parsing
//
// [Parse] never fails. Every line becomes a [Node], including blank lines,
// which become empty boxes. A line indented deeper than its predecessor
// allows is attached to the deepest ancestor still open rather than
// rejected, so malformed indentation degrades into a flatter tree.
//
// All nodes hang off a synthetic root labelled [RootLabel]. Each node's text
// is wrapped with [textwrap.Wrap] as it is created, and its height is set
// from the resulting line count. Positions are left at zero for the layout
// pass to fill in.
//
// [textwrap.Wrap]: github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/textwrap.Wrap
package outline
