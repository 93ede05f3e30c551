package pipeline

import (
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/layout"
)

// Layout positions root at the default origin.
func Layout(root *outline.Node) {
	layout.Apply(root, layout.OriginX, layout.OriginY)
}
