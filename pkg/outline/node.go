package outline

import "github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/textwrap"

// Box geometry shared by parsing, layout, and rendering. All values are in
// pixels.
const (
	BoxWidth   = 250.0
	LineHeight = 20.0
	Padding    = textwrap.Padding
)

// RootLabel is the content of the synthetic root node.
const RootLabel = "Root"

// Node is one box in the outline tree. Children are owned by their parent
// and kept in document order; there are no back-references.
type Node struct {
	Content  string
	Children []*Node
	Lines    []string

	X, Y          float64
	Width, Height float64
}

func newNode(content string) *Node {
	n := &Node{
		Content: content,
		Lines:   textwrap.Wrap(content, BoxWidth),
		Width:   BoxWidth,
	}
	n.Height = n.TextHeight()
	return n
}

// TextHeight is the height needed for the node's own display lines.
func (n *Node) TextHeight() float64 {
	return float64(len(n.Lines))*LineHeight + 2*Padding
}

// Bottom returns the y coordinate of the node's lower edge.
func (n *Node) Bottom() float64 { return n.Y + n.Height }

// Walk visits n and its descendants in pre-order. The root is at depth 0.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree rooted at n, including n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) { count++ })
	return count
}

// MaxDepth returns the depth of the deepest node below n (0 for a leaf).
func (n *Node) MaxDepth() int {
	deepest := 0
	n.Walk(func(_ *Node, d int) { deepest = max(deepest, d) })
	return deepest
}
