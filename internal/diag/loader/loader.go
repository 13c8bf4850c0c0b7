package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Avi18971911/diagviewer/internal/diag/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Loader struct {
	fs     afero.Fs
	logger *zap.Logger
}

func NewLoader(fs afero.Fs, logger *zap.Logger) *Loader {
	return &Loader{
		fs:     fs,
		logger: logger,
	}
}

// Load decodes the five documents of the bundle in dir. Any missing or malformed file aborts.
func (l *Loader) Load(dir string) (*model.Bundle, error) {
	var bundle model.Bundle
	targets := map[string]interface{}{
		model.AllocationFile:   &bundle.Allocation,
		model.IndicesStatsFile: &bundle.IndicesStats,
		model.NodesFile:        &bundle.Nodes,
		model.ShardsFile:       &bundle.Shards,
		model.ClusterStateFile: &bundle.ClusterState,
	}
	for _, name := range model.BundleFiles {
		if err := l.decode(dir, name, targets[name]); err != nil {
			return nil, err
		}
	}
	l.logger.Info(
		"Loaded diagnostic bundle",
		zap.String("dir", dir),
		zap.String("cluster", bundle.ClusterName()),
		zap.Int("shards", len(bundle.Shards)),
		zap.Int("allocations", len(bundle.Allocation)),
	)
	return &bundle, nil
}

func (l *Loader) decode(dir, name string, target interface{}) error {
	path := FilePath(dir, name)
	f, err := l.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingDocument, path)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	l.logger.Debug("Decoded bundle document", zap.String("path", path))
	return nil
}

func FilePath(dir, name string) string {
	return filepath.Join(dir, name+".json")
}

var ErrMissingDocument = errors.New("bundle document not found")
