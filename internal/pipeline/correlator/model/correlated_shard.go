package model

import (
	diagModel "github.com/Avi18971911/diagviewer/internal/diag/model"
)

// CorrelationKey identifies one shard instance: a shard copy held by one node.
type CorrelationKey struct {
	NodeId string
	Index  string
	Shard  string
}

func (k CorrelationKey) ShardId() string {
	return k.NodeId + "_" + k.Index + "_" + k.Shard
}

type CorrelatedShard struct {
	Id        string
	Index     string
	Shard     string
	PriRep    string
	NodeName  string
	NodeId    string
	SizeBytes int64
}

type CorrelationResult struct {
	// Shards keeps the order of the shard records it was built from.
	Shards      []CorrelatedShard
	Allocations []diagModel.AllocationRecord
	// Unassigned counts shard records that are not held by any node.
	Unassigned int
	byId       map[string]int
}

func NewCorrelationResult(
	shards []CorrelatedShard,
	allocations []diagModel.AllocationRecord,
	unassigned int,
) *CorrelationResult {
	byId := make(map[string]int, len(shards))
	for i, shard := range shards {
		byId[shard.Id] = i
	}
	return &CorrelationResult{
		Shards:      shards,
		Allocations: allocations,
		Unassigned:  unassigned,
		byId:        byId,
	}
}

func (r *CorrelationResult) ByID(id string) (CorrelatedShard, bool) {
	i, ok := r.byId[id]
	if !ok {
		return CorrelatedShard{}, false
	}
	return r.Shards[i], true
}
