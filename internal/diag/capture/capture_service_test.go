package capture

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/Avi18971911/diagviewer/internal/db/elasticsearch/client"
	"github.com/Avi18971911/diagviewer/internal/diag/loader"
	"github.com/Avi18971911/diagviewer/internal/diag/model"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var logger *zap.Logger

func TestMain(m *testing.M) {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	code := m.Run()
	os.Exit(code)
}

var responses = map[string]string{
	"/_cat/shards":          `[{"index":"idx1","shard":"0","prirep":"p","state":"STARTED","node":"A"}]`,
	"/_cat/allocation":      `[{"shards":"1","disk.avail":"1kb","node":"A"}]`,
	"/_nodes":               `{"cluster_name":"live","nodes":{"id-a":{"name":"A"}}}`,
	"/_cluster/state/nodes": `{"cluster_name":"live","nodes":{"id-a":{"name":"A"}}}`,
	"/_stats":               `{"indices":{"idx1":{"shards":{"0":[{"routing":{"state":"STARTED","primary":true,"node":"id-a"},"store":{"size_in_bytes":42}}]}}}}`,
}

func startFakeCluster(t *testing.T, failPath string) client.DiagnosticsClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		body, ok := responses[r.URL.Path]
		if !ok || r.URL.Path == failPath {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    []string{srv.URL},
		DisableRetry: true,
	})
	require.NoError(t, err)
	return client.NewDiagnosticsClientImpl(es)
}

func TestCaptureService_Capture(t *testing.T) {
	t.Run("Writes all five documents and loads them back", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		cs := NewCaptureService(startFakeCluster(t, ""), fs, time.Second, logger)

		bundle, err := cs.Capture(context.Background(), "/out/bundle")
		require.NoError(t, err)

		for _, name := range model.BundleFiles {
			exists, err := afero.Exists(fs, loader.FilePath("/out/bundle", name))
			require.NoError(t, err)
			assert.True(t, exists, name)
		}
		assert.Equal(t, "live", bundle.ClusterName())
		require.Len(t, bundle.Shards, 1)
		assert.Equal(t, "idx1", bundle.Shards[0].Index)
		size, ok := bundle.IndicesStats.Indices["idx1"].Shards["0"][0].Store.DataSetSize()
		assert.True(t, ok)
		assert.Equal(t, int64(42), size)
	})

	t.Run("Stops at the first failing request", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		cs := NewCaptureService(startFakeCluster(t, "/_stats"), fs, time.Second, logger)

		_, err := cs.Capture(context.Background(), "/out/bundle")
		require.Error(t, err)
		assert.Contains(t, err.Error(), model.IndicesStatsFile)

		exists, err := afero.Exists(fs, loader.FilePath("/out/bundle", model.ShardsFile))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
