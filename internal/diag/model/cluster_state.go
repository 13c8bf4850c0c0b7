package model

// ClusterStateDocument is the response of GET _cluster/state, saved as cluster_state.json.
// Its node ids are the ones used by the shard routing tables in indices_stats.json.
type ClusterStateDocument struct {
	ClusterName string                      `json:"cluster_name"`
	ClusterUUID string                      `json:"cluster_uuid,omitempty"`
	MasterNode  string                      `json:"master_node,omitempty"`
	Nodes       map[string]ClusterStateNode `json:"nodes"`
}

type ClusterStateNode struct {
	Name             string `json:"name"`
	EphemeralID      string `json:"ephemeral_id,omitempty"`
	TransportAddress string `json:"transport_address,omitempty"`
}
