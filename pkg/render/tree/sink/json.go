package sink

import (
	"encoding/json"

	"github.com/Nathan-Franck/SimpleHeirarchicalNoteViewer/pkg/outline"
)

type jsonOutput struct {
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	NodeCount int      `json:"node_count"`
	MaxDepth  int      `json:"max_depth"`
	Root      jsonNode `json:"root"`
}

type jsonNode struct {
	Content  string     `json:"content"`
	Lines    []string   `json:"lines"`
	Depth    int        `json:"depth"`
	X        float64    `json:"x"`
	Y        float64    `json:"y"`
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Children []jsonNode `json:"children,omitempty"`
}

// RenderJSON exports the laid-out tree with its document dimensions, for
// tools that want box geometry without parsing SVG.
func RenderJSON(root *outline.Node) ([]byte, error) {
	out := jsonOutput{
		Width:     DocumentWidth,
		Height:    DocumentHeight(root),
		NodeCount: root.Count(),
		MaxDepth:  root.MaxDepth(),
		Root:      buildJSONNode(root, 0),
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONNode(n *outline.Node, depth int) jsonNode {
	jn := jsonNode{
		Content: n.Content,
		Lines:   n.Lines,
		Depth:   depth,
		X:       n.X,
		Y:       n.Y,
		Width:   n.Width,
		Height:  n.Height,
	}
	if jn.Lines == nil {
		jn.Lines = []string{}
	}
	for _, c := range n.Children {
		jn.Children = append(jn.Children, buildJSONNode(c, depth+1))
	}
	return jn
}
