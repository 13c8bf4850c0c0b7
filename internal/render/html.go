package render

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
	"github.com/Avi18971911/diagviewer/internal/sizeunit"
	"github.com/dustin/go-humanize"
)

const boardTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.ClusterName}} disk usage</title>
<style>
body { font-family: sans-serif; margin: 16px; }
.board { position: relative; }
.node { position: absolute; overflow: hidden; box-sizing: border-box; color: #fff; font-size: 11px; line-height: 1.2; }
.node-label { padding: 2px 4px; white-space: pre-line; }
.node-value { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.ClusterName}}</h1>
<div class="board" style="{{.BoardStyle}}">
{{- range .Leaves}}
<div class="node" title="{{.Title}}" style="{{.Style}}"><div class="node-label">{{.Label}}<div class="node-value">{{.Value}}</div></div></div>
{{- end}}
</div>
</body>
</html>
`

var board = template.Must(template.New("board").Parse(boardTemplate))

type boardView struct {
	ClusterName string
	BoardStyle  template.CSS
	Leaves      []leafView
}

type leafView struct {
	Title string
	Style template.CSS
	Label string
	Value string
}

// HTML writes a standalone page with one absolutely positioned div per leaf of result.
func HTML(w io.Writer, cluster *model.Cluster, result *layout.Result) error {
	palette := NewPalette(cluster)
	view := boardView{
		ClusterName: cluster.Name,
		BoardStyle:  template.CSS(fmt.Sprintf("width: %spx; height: %spx", px(result.Width), px(result.Height))),
		Leaves:      make([]leafView, 0, len(result.Leaves)),
	}
	for _, leaf := range result.Leaves {
		view.Leaves = append(view.Leaves, leafView{
			Title: leaf.CompositeID + "\n" + humanize.Comma(leaf.SizeBytes),
			Style: template.CSS(fmt.Sprintf(
				"left: %spx; top: %spx; width: %spx; height: %spx; background: %s",
				px(leaf.Rect.X0),
				px(leaf.Rect.Y0),
				px(leaf.Rect.Width()),
				px(leaf.Rect.Height()),
				palette.Color(leaf.GroupKey),
			)),
			Label: leafLabel(leaf),
			Value: sizeunit.Format(leaf.SizeBytes),
		})
	}
	if err := board.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}
	return nil
}

func leafLabel(leaf layout.LeafDescriptor) string {
	if leaf.Free {
		return model.FreeSpaceIndex
	}
	return leaf.Index + "\nshard: " + leaf.Shard
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
