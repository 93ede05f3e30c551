package pipeline

import "github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"

// Parse builds the outline tree for source text.
func Parse(source []byte) (*outline.Node, int) {
	lines := outline.SplitLines(string(source))
	return outline.Parse(lines), len(lines)
}
