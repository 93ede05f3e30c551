// Package layout assigns coordinates to an outline tree.
//
// # Overview
//
// The layout is a single depth-first pass. Horizontal position encodes depth:
// every level sits one box width plus [HorizontalGap] to the right of its
// parent. Vertical position encodes document order: siblings stack downward,
// separated by [VerticalGap], and each sibling is placed only after the one
// above it has been fully laid out, so its final height is known.
//
// # Heights
//
// Leaves keep the height their text needs. A parent grows to cover the
// vertical span of its children but never shrinks below its own text height.
//
// Parents are top-aligned with their first child rather than centered on the
// span of their subtree.
//
// # Usage
//
//	root := outline.Parse(lines)
//	layout.Apply(root, layout.OriginX, layout.OriginY)
//	w, h := layout.Bounds(root)
package layout
