package service

import (
	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
)

// nodeDelta is the output of one pass over a source: the shards each node gains.
type nodeDelta struct {
	entries []deltaEntry
}

type deltaEntry struct {
	nodeName string
	key      string
	shard    *model.Shard
}

func (d *nodeDelta) add(nodeName, key string, shard *model.Shard) {
	d.entries = append(d.entries, deltaEntry{nodeName: nodeName, key: key, shard: shard})
}

// NodeSetBuilder accumulates nodes by name across passes, keeping first-discovery order.
type NodeSetBuilder struct {
	nodes  []*model.Node
	byName map[string]*model.Node
}

func NewNodeSetBuilder() *NodeSetBuilder {
	return &NodeSetBuilder{
		byName: make(map[string]*model.Node),
	}
}

func (b *NodeSetBuilder) getOrCreate(name string) *model.Node {
	node, ok := b.byName[name]
	if !ok {
		node = model.NewNode(name)
		b.byName[name] = node
		b.nodes = append(b.nodes, node)
	}
	return node
}

func (b *NodeSetBuilder) Merge(delta nodeDelta) {
	for _, entry := range delta.entries {
		b.getOrCreate(entry.nodeName).Put(entry.key, entry.shard)
	}
}

func (b *NodeSetBuilder) Cluster(name string) *model.Cluster {
	return &model.Cluster{
		Name:  name,
		Nodes: b.nodes,
	}
}
