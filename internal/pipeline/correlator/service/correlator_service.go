package service

import (
	"sort"

	diagModel "github.com/Avi18971911/diagviewer/internal/diag/model"
	"github.com/Avi18971911/diagviewer/internal/pipeline/correlator/model"
	"go.uber.org/zap"
)

type CorrelationInput struct {
	ShardRecords []diagModel.ShardRecord
	Statistics   diagModel.IndicesStatsDocument
	NodeIdByName map[string]string
	Allocations  []diagModel.AllocationRecord
}

type CorrelatorService interface {
	Correlate(input CorrelationInput) (*model.CorrelationResult, error)
}

type CorrelatorServiceImpl struct {
	logger *zap.Logger
}

func NewCorrelatorService(logger *zap.Logger) CorrelatorService {
	return &CorrelatorServiceImpl{
		logger: logger,
	}
}

// Correlate joins every assigned shard record with its statistics instance.
// The first record that cannot be joined aborts the whole correlation.
func (cs *CorrelatorServiceImpl) Correlate(input CorrelationInput) (*model.CorrelationResult, error) {
	shards := make([]model.CorrelatedShard, 0, len(input.ShardRecords))
	seen := make(map[string]struct{}, len(input.ShardRecords))
	unassigned := 0
	for _, record := range input.ShardRecords {
		if !record.IsAssigned() {
			unassigned++
			continue
		}
		nodeName := record.NodeName()
		nodeId, ok := input.NodeIdByName[nodeName]
		if !ok {
			return nil, &UnknownNodeError{NodeName: nodeName, Index: record.Index, Shard: record.Shard}
		}

		key := model.CorrelationKey{NodeId: nodeId, Index: record.Index, Shard: record.Shard}
		instance, err := findShardInstance(input.Statistics, key)
		if err != nil {
			return nil, err
		}
		size, ok := instance.Store.DataSetSize()
		if !ok {
			return nil, &MissingStatisticsError{
				Index:  key.Index,
				Shard:  key.Shard,
				NodeId: key.NodeId,
				Reason: "store statistics carry no size",
			}
		}

		shardId := key.ShardId()
		if _, dup := seen[shardId]; dup {
			return nil, &DuplicateShardError{ShardId: shardId}
		}
		seen[shardId] = struct{}{}

		shards = append(shards, model.CorrelatedShard{
			Id:        shardId,
			Index:     record.Index,
			Shard:     record.Shard,
			PriRep:    record.PriRep,
			NodeName:  nodeName,
			NodeId:    nodeId,
			SizeBytes: size,
		})
	}

	if unassigned > 0 {
		cs.logger.Info("Skipped unassigned shards", zap.Int("count", unassigned))
	}
	cs.logger.Debug(
		"Correlated shard records",
		zap.Int("shards", len(shards)),
		zap.Int("allocations", len(input.Allocations)),
	)
	return model.NewCorrelationResult(shards, input.Allocations, unassigned), nil
}

func findShardInstance(
	stats diagModel.IndicesStatsDocument,
	key model.CorrelationKey,
) (diagModel.ShardInstanceStats, error) {
	index, ok := stats.Indices[key.Index]
	if !ok {
		return diagModel.ShardInstanceStats{}, &MissingStatisticsError{
			Index: key.Index, Shard: key.Shard, NodeId: key.NodeId, Reason: "index not found",
		}
	}
	instances, ok := index.Shards[key.Shard]
	if !ok {
		return diagModel.ShardInstanceStats{}, &MissingStatisticsError{
			Index: key.Index, Shard: key.Shard, NodeId: key.NodeId, Reason: "shard number not found",
		}
	}

	var match *diagModel.ShardInstanceStats
	matches := 0
	for i := range instances {
		if instances[i].Routing.Node == key.NodeId {
			match = &instances[i]
			matches++
		}
	}
	switch {
	case matches == 0:
		return diagModel.ShardInstanceStats{}, &MissingStatisticsError{
			Index: key.Index, Shard: key.Shard, NodeId: key.NodeId, Reason: "no instance routed to node",
		}
	case matches > 1:
		return diagModel.ShardInstanceStats{}, &AmbiguousStatisticsError{
			Index: key.Index, Shard: key.Shard, NodeId: key.NodeId, Matches: matches,
		}
	}
	return *match, nil
}

// BuildNodeIdLookup maps node names to the node ids of the cluster state document.
func BuildNodeIdLookup(clusterState diagModel.ClusterStateDocument) (map[string]string, error) {
	lookup := make(map[string]string, len(clusterState.Nodes))
	for nodeId, node := range clusterState.Nodes {
		if existing, ok := lookup[node.Name]; ok {
			ids := []string{existing, nodeId}
			sort.Strings(ids)
			return nil, &DuplicateNodeNameError{NodeName: node.Name, NodeIds: ids}
		}
		lookup[node.Name] = nodeId
	}
	return lookup, nil
}
