package layout

import "github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"

// Spacing between boxes, in pixels.
const (
	HorizontalGap = 50.0
	VerticalGap   = 20.0
)

// Default origin of the root box within the drawing.
const (
	OriginX = 10.0
	OriginY = 10.0
)

// Apply positions n at (x, y) and lays out its subtree to the right of it.
// Heights of parents are enlarged in place to span their children.
func Apply(n *outline.Node, x, y float64) {
	n.X, n.Y = x, y

	childX := x + outline.BoxWidth + HorizontalGap
	childY := y
	for _, c := range n.Children {
		Apply(c, childX, childY)
		childY += c.Height + VerticalGap
	}

	if len(n.Children) > 0 {
		span := childY - VerticalGap - y
		n.Height = max(n.Height, span)
	}
}

// Bounds returns the right-most and bottom-most coordinates reached by any
// box in the tree rooted at n.
func Bounds(n *outline.Node) (right, bottom float64) {
	n.Walk(func(b *outline.Node, _ int) {
		right = max(right, b.X+b.Width)
		bottom = max(bottom, b.Bottom())
	})
	return right, bottom
}
