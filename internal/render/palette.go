package render

import "github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"

// tableau10 is the ten colour categorical scheme from Tableau.
var tableau10 = []string{
	"#4e79a7",
	"#f28e2c",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc949",
	"#af7aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ab",
}

// Palette assigns colours to node names in cluster order, cycling after ten nodes.
type Palette struct {
	colors map[string]string
}

func NewPalette(cluster *model.Cluster) *Palette {
	colors := make(map[string]string, len(cluster.Nodes))
	for i, node := range cluster.Nodes {
		colors[node.Name] = tableau10[i%len(tableau10)]
	}
	return &Palette{colors: colors}
}

// Color returns the colour of the named node. Names outside the cluster get the last scheme colour.
func (p *Palette) Color(nodeName string) string {
	if c, ok := p.colors[nodeName]; ok {
		return c
	}
	return tableau10[len(tableau10)-1]
}
