package cache

import (
	"errors"
	"fmt"

	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
)

// LayoutCache keeps computed layouts of one bundle so repeated requests for the same
// canvas skip the layout pass. Eviction is based on LFU admission and sampled LRU.
type LayoutCache interface {
	Get(opts layout.Options) (*layout.Result, error)
	Put(opts layout.Options, result *layout.Result) error
}

type LayoutCacheImpl struct {
	cache  *ristretto.Cache
	logger *zap.Logger
}

// NewLayoutCache creates a cache holding at most maxEntries layouts.
func NewLayoutCache(maxEntries int64, logger *zap.Logger) (*LayoutCacheImpl, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("layout cache needs a positive capacity, got %d", maxEntries)
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create layout cache: %w", err)
	}
	return &LayoutCacheImpl{cache: c, logger: logger}, nil
}

func Key(opts layout.Options) string {
	return fmt.Sprintf("%gx%gp%g", opts.Width, opts.Height, opts.Padding)
}

func (lc *LayoutCacheImpl) Get(opts layout.Options) (*layout.Result, error) {
	key := Key(opts)
	value, found := lc.cache.Get(key)
	if !found {
		return nil, ErrKeyNotFound
	}
	result, ok := value.(*layout.Result)
	if !ok {
		return nil, fmt.Errorf("value not of expected type %T returned from cache when getting", value)
	}
	lc.logger.Debug("Layout cache hit", zap.String("key", key))
	return result, nil
}

// Put stores result and waits until it is visible to Get.
func (lc *LayoutCacheImpl) Put(opts layout.Options, result *layout.Result) error {
	if !lc.cache.Set(Key(opts), result, 1) {
		return ErrSetFailed
	}
	lc.cache.Wait()
	return nil
}

func (lc *LayoutCacheImpl) Close() {
	lc.cache.Close()
}

var (
	ErrKeyNotFound = errors.New("key not found within the cache")
	ErrSetFailed   = errors.New("failed to set value in cache")
)
