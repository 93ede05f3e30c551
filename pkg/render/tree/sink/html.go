package sink

import (
	"bytes"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body { margin: 0; }</style>
</head>
<body>
`

const htmlTail = `</body>
</html>
`

// RenderHTML wraps the SVG drawing of root in a static HTML5 page.
func RenderHTML(root *outline.Node) []byte {
	var buf bytes.Buffer
	buf.WriteString(htmlHead)
	writeSVG(&buf, root)
	buf.WriteString(htmlTail)
	return buf.Bytes()
}
