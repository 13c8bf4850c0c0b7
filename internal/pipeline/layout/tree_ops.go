package layout

import (
	"cmp"
	"fmt"

	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func Children(n model.TreeNode) []model.TreeNode {
	switch v := n.(type) {
	case *model.Cluster:
		children := make([]model.TreeNode, len(v.Nodes))
		for i, node := range v.Nodes {
			children[i] = node
		}
		return children
	case *model.Node:
		shards := v.Shards()
		children := make([]model.TreeNode, len(shards))
		for i, shard := range shards {
			children[i] = shard
		}
		return children
	case *model.Shard:
		return nil
	default:
		panic(fmt.Sprintf("unexpected tree node %T", n))
	}
}

// Weight is the node's own weight; clusters and nodes only weigh what their shards weigh.
func Weight(n model.TreeNode) int64 {
	switch v := n.(type) {
	case *model.Cluster, *model.Node:
		return 0
	case *model.Shard:
		return v.SizeBytes
	default:
		panic(fmt.Sprintf("unexpected tree node %T", n))
	}
}

// Comparer orders sibling shards by index name, then by size. It is not safe for concurrent use.
type Comparer struct {
	collator *collate.Collator
}

func NewComparer() *Comparer {
	return &Comparer{
		collator: collate.New(language.Und),
	}
}

// Compare returns 0 unless both nodes are shards, so stable sorts keep insertion order for nodes.
func (c *Comparer) Compare(a, b model.TreeNode) int {
	sa, ok := a.(*model.Shard)
	if !ok {
		return 0
	}
	sb, ok := b.(*model.Shard)
	if !ok {
		return 0
	}
	if r := c.collator.CompareString(sa.Index, sb.Index); r != 0 {
		return r
	}
	return cmp.Compare(sa.SizeBytes, sb.SizeBytes)
}
