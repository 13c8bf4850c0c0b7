package model

// TreeNode is implemented by *Cluster, *Node and *Shard only.
type TreeNode interface {
	treeNode()
	DisplayName() string
}

// FreeSpaceKey is the reserved child key of a node's free-space pseudo-shard.
const FreeSpaceKey = ""

// FreeSpaceIndex is the index name carried by free-space pseudo-shards.
const FreeSpaceIndex = "FREE"

type Cluster struct {
	Name  string
	Nodes []*Node
}

func (c *Cluster) treeNode() {}

func (c *Cluster) DisplayName() string { return c.Name }

func (c *Cluster) Node(name string) (*Node, bool) {
	for _, node := range c.Nodes {
		if node.Name == name {
			return node, true
		}
	}
	return nil, false
}

// Node holds its shards in insertion order. It is only mutated while the tree is built.
type Node struct {
	Name   string
	shards []*Shard
	keys   map[string]int
}

func NewNode(name string) *Node {
	return &Node{
		Name: name,
		keys: make(map[string]int),
	}
}

func (n *Node) treeNode() {}

func (n *Node) DisplayName() string { return n.Name }

// Put inserts the shard under key, replacing any shard already stored there in place.
func (n *Node) Put(key string, shard *Shard) {
	if i, ok := n.keys[key]; ok {
		n.shards[i] = shard
		return
	}
	n.keys[key] = len(n.shards)
	n.shards = append(n.shards, shard)
}

func (n *Node) Shards() []*Shard {
	return n.shards
}

func (n *Node) Shard(key string) (*Shard, bool) {
	i, ok := n.keys[key]
	if !ok {
		return nil, false
	}
	return n.shards[i], true
}

func (n *Node) FreeSpace() (*Shard, bool) {
	return n.Shard(FreeSpaceKey)
}

func (n *Node) RealShardCount() int {
	if _, ok := n.keys[FreeSpaceKey]; ok {
		return len(n.shards) - 1
	}
	return len(n.shards)
}

func (n *Node) UsedBytes() int64 {
	var total int64
	for _, shard := range n.shards {
		if !shard.IsFreeSpace() {
			total += shard.SizeBytes
		}
	}
	return total
}

func (n *Node) FreeBytes() int64 {
	if free, ok := n.FreeSpace(); ok {
		return free.SizeBytes
	}
	return 0
}

type Shard struct {
	// Name is the composite shard instance id, unique within the cluster.
	Name      string
	Index     string
	Number    string
	NodeName  string
	SizeBytes int64
	free      bool
}

func NewShard(id, index, number, nodeName string, sizeBytes int64) *Shard {
	return &Shard{
		Name:      id,
		Index:     index,
		Number:    number,
		NodeName:  nodeName,
		SizeBytes: sizeBytes,
	}
}

func NewFreeSpace(nodeName string, availableBytes int64) *Shard {
	return &Shard{
		Name:      nodeName + "_" + FreeSpaceIndex,
		Index:     FreeSpaceIndex,
		NodeName:  nodeName,
		SizeBytes: availableBytes,
		free:      true,
	}
}

func (s *Shard) treeNode() {}

func (s *Shard) DisplayName() string { return s.Name }

func (s *Shard) IsFreeSpace() bool { return s.free }

// Label is the shard number, or FREE for a free-space pseudo-shard.
func (s *Shard) Label() string {
	if s.free {
		return FreeSpaceIndex
	}
	return s.Number
}
