package model

// Document file names inside a diagnostic bundle directory, without the .json suffix.
const (
	AllocationFile   = "allocation"
	IndicesStatsFile = "indices_stats"
	NodesFile        = "nodes"
	ShardsFile       = "shards"
	ClusterStateFile = "cluster_state"
)

var BundleFiles = []string{
	AllocationFile,
	IndicesStatsFile,
	NodesFile,
	ShardsFile,
	ClusterStateFile,
}

// Bundle holds the decoded documents of one diagnostic bundle.
type Bundle struct {
	Nodes        NodesDocument
	Shards       []ShardRecord
	IndicesStats IndicesStatsDocument
	ClusterState ClusterStateDocument
	Allocation   []AllocationRecord
}

func (b *Bundle) ClusterName() string {
	if b.Nodes.ClusterName != "" {
		return b.Nodes.ClusterName
	}
	return b.ClusterState.ClusterName
}
