package pipeline

import (
	"fmt"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/render/tree/sink"
)

// Render serializes a laid-out tree in opts.Format.
func Render(root *outline.Node, opts Options) ([]byte, error) {
	switch opts.Format {
	case FormatHTML:
		return sink.RenderHTML(root), nil
	case FormatSVG:
		return sink.RenderSVG(root), nil
	case FormatJSON:
		return sink.RenderJSON(root)
	case FormatPDF:
		return sink.RenderPDF(root)
	case FormatPNG:
		return sink.RenderPNG(root, sink.WithScale(opts.Scale))
	default:
		return nil, fmt.Errorf("render: %w", ValidateFormat(opts.Format))
	}
}
