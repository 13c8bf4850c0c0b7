package capture

import (
	"context"
	"fmt"
	"time"

	"github.com/Avi18971911/diagviewer/internal/db/elasticsearch/client"
	"github.com/Avi18971911/diagviewer/internal/diag/loader"
	"github.com/Avi18971911/diagviewer/internal/diag/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const DefaultTimeout = 30 * time.Second

type fetchFunc func(ctx context.Context) ([]byte, error)

type CaptureService interface {
	// Capture fetches the bundle documents from a live cluster into dir and checks that they load back.
	Capture(ctx context.Context, dir string) (*model.Bundle, error)
}

type CaptureServiceImpl struct {
	client  client.DiagnosticsClient
	fs      afero.Fs
	loader  *loader.Loader
	timeout time.Duration
	logger  *zap.Logger
}

func NewCaptureService(
	client client.DiagnosticsClient,
	fs afero.Fs,
	timeout time.Duration,
	logger *zap.Logger,
) CaptureService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CaptureServiceImpl{
		client:  client,
		fs:      fs,
		loader:  loader.NewLoader(fs, logger),
		timeout: timeout,
		logger:  logger,
	}
}

func (cs *CaptureServiceImpl) Capture(ctx context.Context, dir string) (*model.Bundle, error) {
	if err := cs.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bundle directory %s: %w", dir, err)
	}

	fetchers := map[string]fetchFunc{
		model.AllocationFile:   cs.client.CatAllocation,
		model.IndicesStatsFile: cs.client.IndicesStats,
		model.NodesFile:        cs.client.NodesInfo,
		model.ShardsFile:       cs.client.CatShards,
		model.ClusterStateFile: cs.client.ClusterState,
	}
	for _, name := range model.BundleFiles {
		if err := cs.captureDocument(ctx, dir, name, fetchers[name]); err != nil {
			return nil, err
		}
	}

	bundle, err := cs.loader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to validate captured bundle: %w", err)
	}
	return bundle, nil
}

func (cs *CaptureServiceImpl) captureDocument(ctx context.Context, dir, name string, fetch fetchFunc) error {
	fetchCtx, cancel := context.WithTimeout(ctx, cs.timeout)
	defer cancel()
	body, err := fetch(fetchCtx)
	if err != nil {
		return fmt.Errorf("failed to capture %s: %w", name, err)
	}

	path := loader.FilePath(dir, name)
	if err := afero.WriteFile(cs.fs, path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cs.logger.Info("Captured bundle document", zap.String("path", path), zap.Int("bytes", len(body)))
	return nil
}
