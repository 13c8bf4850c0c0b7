package service

import (
	"fmt"

	diagModel "github.com/Avi18971911/diagviewer/internal/diag/model"
	correlatorModel "github.com/Avi18971911/diagviewer/internal/pipeline/correlator/model"
	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
	"github.com/Avi18971911/diagviewer/internal/sizeunit"
	"go.uber.org/zap"
)

type HierarchyBuilderService interface {
	Build(
		clusterName string,
		shards []correlatorModel.CorrelatedShard,
		allocations []diagModel.AllocationRecord,
	) (*model.Cluster, error)
}

type HierarchyBuilderServiceImpl struct {
	logger *zap.Logger
}

func NewHierarchyBuilderService(logger *zap.Logger) HierarchyBuilderService {
	return &HierarchyBuilderServiceImpl{
		logger: logger,
	}
}

// Build folds correlated shards and allocation records into a cluster tree.
// A node is created by whichever pass names it first; nothing is returned on error.
func (hbs *HierarchyBuilderServiceImpl) Build(
	clusterName string,
	shards []correlatorModel.CorrelatedShard,
	allocations []diagModel.AllocationRecord,
) (*model.Cluster, error) {
	builder := NewNodeSetBuilder()
	builder.Merge(shardPass(shards))

	freeSpace, err := allocationPass(allocations, hbs.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to read free space from allocation records: %w", err)
	}
	builder.Merge(freeSpace)

	cluster := builder.Cluster(clusterName)
	hbs.logger.Debug(
		"Built cluster hierarchy",
		zap.String("cluster", clusterName),
		zap.Int("nodes", len(cluster.Nodes)),
		zap.Int("shards", len(shards)),
	)
	return cluster, nil
}

func shardPass(shards []correlatorModel.CorrelatedShard) nodeDelta {
	var delta nodeDelta
	for _, shard := range shards {
		delta.add(
			shard.NodeName,
			shard.Id,
			model.NewShard(shard.Id, shard.Index, shard.Shard, shard.NodeName, shard.SizeBytes),
		)
	}
	return delta
}

func allocationPass(allocations []diagModel.AllocationRecord, logger *zap.Logger) (nodeDelta, error) {
	var delta nodeDelta
	for _, alloc := range allocations {
		if !alloc.HasDiskReport() {
			logger.Debug("Allocation record has no disk report", zap.String("node", alloc.Node))
			continue
		}
		available, err := sizeunit.Parse(*alloc.DiskAvail)
		if err != nil {
			return nodeDelta{}, fmt.Errorf("node %s: %w", alloc.Node, err)
		}
		delta.add(alloc.Node, model.FreeSpaceKey, model.NewFreeSpace(alloc.Node, available))
	}
	return delta, nil
}
