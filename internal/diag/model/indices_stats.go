package model

// IndicesStatsDocument is the response of GET _stats?level=shards, saved as indices_stats.json.
type IndicesStatsDocument struct {
	Indices map[string]IndexStats `json:"indices"`
}

// IndexStats maps a shard number to every instance (primary and replicas) of that shard.
type IndexStats struct {
	UUID   string                          `json:"uuid,omitempty"`
	Shards map[string][]ShardInstanceStats `json:"shards"`
}

type ShardInstanceStats struct {
	Routing ShardRouting `json:"routing"`
	Store   StoreStats   `json:"store"`
}

type ShardRouting struct {
	State          string  `json:"state"`
	Primary        bool    `json:"primary"`
	Node           string  `json:"node"`
	RelocatingNode *string `json:"relocating_node"`
}

// StoreStats fields are pointers so a missing field is distinguishable from zero.
type StoreStats struct {
	SizeInBytes             *int64 `json:"size_in_bytes,omitempty"`
	TotalDataSetSizeInBytes *int64 `json:"total_data_set_size_in_bytes,omitempty"`
}

// DataSetSize returns total_data_set_size_in_bytes, falling back to size_in_bytes
// for clusters that predate the data set field.
func (s StoreStats) DataSetSize() (int64, bool) {
	if s.TotalDataSetSizeInBytes != nil {
		return *s.TotalDataSetSizeInBytes, true
	}
	if s.SizeInBytes != nil {
		return *s.SizeInBytes, true
	}
	return 0, false
}
