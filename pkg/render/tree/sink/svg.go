package sink

import (
	"bytes"
	"fmt"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/layout"
)

const (
	// DocumentWidth is the fixed width of the SVG canvas.
	DocumentWidth = 1000.0
	// CornerRadius rounds every box.
	CornerRadius = 10.0
	// TextBaseline is the offset of the first text baseline below a box top.
	TextBaseline = outline.Padding + 15
	// FontSize is the label font size in pixels.
	FontSize = 14
)

// RenderSVG draws a laid-out tree as an SVG document.
//
// Each subtree is drawn before its parent's box: connector, then the child's
// own subtree, for every child in order, and finally the parent's box and
// text on top. Box text is written verbatim without XML escaping.
func RenderSVG(root *outline.Node) []byte {
	var buf bytes.Buffer
	writeSVG(&buf, root)
	return buf.Bytes()
}

// DocumentHeight is the canvas height for a laid-out tree: the root's full
// height plus a margin above and below.
func DocumentHeight(root *outline.Node) float64 {
	return root.Y + root.Height + layout.OriginY
}

func writeSVG(buf *bytes.Buffer, root *outline.Node) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f">`+"\n",
		DocumentWidth, DocumentHeight(root))
	renderNode(buf, root)
	buf.WriteString("</svg>\n")
}

func renderNode(buf *bytes.Buffer, n *outline.Node) {
	for _, c := range n.Children {
		renderConnector(buf, n, c)
		renderNode(buf, c)
	}
	renderBox(buf, n)
	renderText(buf, n)
}

// renderConnector links a child's left-middle to its parent's top-center.
func renderConnector(buf *bytes.Buffer, parent, child *outline.Node) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#555" stroke-width="1.5"/>`+"\n",
		child.X, child.Y+child.Height/2,
		parent.X+parent.Width/2, parent.Y)
}

func renderBox(buf *bytes.Buffer, n *outline.Node) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.0f" ry="%.0f" fill="#fff" stroke="#333" stroke-width="1.5"/>`+"\n",
		n.X, n.Y, n.Width, n.Height, CornerRadius, CornerRadius)
}

func renderText(buf *bytes.Buffer, n *outline.Node) {
	for i, line := range n.Lines {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="monospace" font-size="%d" fill="#111">%s</text>`+"\n",
			n.X+outline.Padding, n.Y+TextBaseline+float64(i)*outline.LineHeight, FontSize, line)
	}
}
