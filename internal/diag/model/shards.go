package model

// ShardState values reported by _cat/shards.
const (
	ShardStarted      = "STARTED"
	ShardRelocating   = "RELOCATING"
	ShardInitializing = "INITIALIZING"
	ShardUnassigned   = "UNASSIGNED"
)

// ShardRecord is one row of GET _cat/shards?format=json, saved as shards.json.
// Node is nil for unassigned shards.
type ShardRecord struct {
	Index  string  `json:"index"`
	Shard  string  `json:"shard"`
	PriRep string  `json:"prirep,omitempty"`
	State  string  `json:"state,omitempty"`
	Docs   *string `json:"docs,omitempty"`
	Store  *string `json:"store,omitempty"`
	IP     *string `json:"ip,omitempty"`
	Node   *string `json:"node"`
}

func (s ShardRecord) NodeName() string {
	if s.Node == nil {
		return ""
	}
	return *s.Node
}

func (s ShardRecord) IsAssigned() bool {
	return s.NodeName() != "" && s.State != ShardUnassigned
}
