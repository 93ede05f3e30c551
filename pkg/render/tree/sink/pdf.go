package sink

import (
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render"
)

// RenderPDF renders the tree as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(root *outline.Node) ([]byte, error) {
	return render.ToPDF(RenderSVG(root))
}
