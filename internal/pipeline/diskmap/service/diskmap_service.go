package service

import (
	"fmt"

	diagModel "github.com/Avi18971911/diagviewer/internal/diag/model"
	correlatorService "github.com/Avi18971911/diagviewer/internal/pipeline/correlator/service"
	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
	hierarchyService "github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/service"
	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
	"go.uber.org/zap"
)

type DiskMapService interface {
	// BuildTree correlates the bundle and folds it into a cluster tree.
	BuildTree(bundle *diagModel.Bundle) (*model.Cluster, error)
	// Layout places an already built cluster tree on the canvas described by opts.
	Layout(cluster *model.Cluster, opts layout.Options) (*layout.Result, error)
	// Render builds the tree and lays it out on the canvas described by opts.
	Render(bundle *diagModel.Bundle, opts layout.Options) (*layout.Result, *model.Cluster, error)
}

type DiskMapServiceImpl struct {
	correlator correlatorService.CorrelatorService
	builder    hierarchyService.HierarchyBuilderService
	engine     *layout.LayoutEngine
	logger     *zap.Logger
}

func NewDiskMapService(
	correlator correlatorService.CorrelatorService,
	builder hierarchyService.HierarchyBuilderService,
	engine *layout.LayoutEngine,
	logger *zap.Logger,
) DiskMapService {
	return &DiskMapServiceImpl{
		correlator: correlator,
		builder:    builder,
		engine:     engine,
		logger:     logger,
	}
}

// NewDefaultDiskMapService wires the standard correlator, builder and engine around one logger.
func NewDefaultDiskMapService(logger *zap.Logger) DiskMapService {
	return NewDiskMapService(
		correlatorService.NewCorrelatorService(logger),
		hierarchyService.NewHierarchyBuilderService(logger),
		layout.NewLayoutEngine(logger),
		logger,
	)
}

func (dms *DiskMapServiceImpl) BuildTree(bundle *diagModel.Bundle) (*model.Cluster, error) {
	lookup, err := correlatorService.BuildNodeIdLookup(bundle.ClusterState)
	if err != nil {
		return nil, fmt.Errorf("failed to index cluster state nodes: %w", err)
	}

	correlated, err := dms.correlator.Correlate(correlatorService.CorrelationInput{
		ShardRecords: bundle.Shards,
		Statistics:   bundle.IndicesStats,
		NodeIdByName: lookup,
		Allocations:  bundle.Allocation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to correlate shards: %w", err)
	}

	cluster, err := dms.builder.Build(bundle.ClusterName(), correlated.Shards, correlated.Allocations)
	if err != nil {
		return nil, fmt.Errorf("failed to build cluster hierarchy: %w", err)
	}
	dms.logger.Info(
		"Built disk map tree",
		zap.String("cluster", cluster.Name),
		zap.Int("nodes", len(cluster.Nodes)),
		zap.Int("shards", len(correlated.Shards)),
		zap.Int("unassigned", correlated.Unassigned),
	)
	return cluster, nil
}

func (dms *DiskMapServiceImpl) Render(
	bundle *diagModel.Bundle,
	opts layout.Options,
) (*layout.Result, *model.Cluster, error) {
	cluster, err := dms.BuildTree(bundle)
	if err != nil {
		return nil, nil, err
	}
	result, err := dms.Layout(cluster, opts)
	if err != nil {
		return nil, nil, err
	}
	return result, cluster, nil
}

func (dms *DiskMapServiceImpl) Layout(cluster *model.Cluster, opts layout.Options) (*layout.Result, error) {
	result, err := dms.engine.Layout(cluster, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out cluster %s: %w", cluster.Name, err)
	}
	return result, nil
}
