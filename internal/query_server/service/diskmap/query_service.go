package diskmap

import (
	"errors"
	"fmt"

	"github.com/Avi18971911/diagviewer/internal/cache"
	diagModel "github.com/Avi18971911/diagviewer/internal/diag/model"
	diskMapService "github.com/Avi18971911/diagviewer/internal/pipeline/diskmap/service"
	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
	"go.uber.org/zap"
)

// DiskMapQueryService answers layout queries against one loaded bundle.
type DiskMapQueryService interface {
	Cluster() *model.Cluster
	Defaults() layout.Options
	Layout(opts layout.Options) (*layout.Result, error)
}

type DiskMapQueryServiceImpl struct {
	cluster  *model.Cluster
	service  diskMapService.DiskMapService
	cache    cache.LayoutCache
	defaults layout.Options
	logger   *zap.Logger
}

// NewDiskMapQueryService builds the cluster tree up front so a bundle that does not
// correlate is rejected before the server starts listening.
func NewDiskMapQueryService(
	bundle *diagModel.Bundle,
	service diskMapService.DiskMapService,
	cache cache.LayoutCache,
	defaults layout.Options,
	logger *zap.Logger,
) (DiskMapQueryService, error) {
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default layout: %w", err)
	}
	cluster, err := service.BuildTree(bundle)
	if err != nil {
		return nil, fmt.Errorf("failed to build disk map: %w", err)
	}
	return &DiskMapQueryServiceImpl{
		cluster:  cluster,
		service:  service,
		cache:    cache,
		defaults: defaults,
		logger:   logger,
	}, nil
}

func (qs *DiskMapQueryServiceImpl) Cluster() *model.Cluster {
	return qs.cluster
}

func (qs *DiskMapQueryServiceImpl) Defaults() layout.Options {
	return qs.defaults
}

func (qs *DiskMapQueryServiceImpl) Layout(opts layout.Options) (*layout.Result, error) {
	cached, err := qs.cache.Get(opts)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		qs.logger.Warn("Failed to read layout cache", zap.Error(err))
	}

	result, err := qs.service.Layout(qs.cluster, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to render layout: %w", err)
	}
	if err := qs.cache.Put(opts, result); err != nil {
		qs.logger.Warn("Failed to cache layout", zap.String("key", cache.Key(opts)), zap.Error(err))
	}
	return result, nil
}
