package client

import (
	"context"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// DiagnosticsClient fetches the raw documents that make up a diagnostic bundle.
// Every method returns the response body untouched so it can be written to disk as is.
type DiagnosticsClient interface {
	// CatShards lists every shard copy and the node holding it
	// https://www.elastic.co/guide/en/elasticsearch/reference/current/cat-shards.html
	CatShards(ctx context.Context) ([]byte, error)
	// CatAllocation reports per node disk usage, sizes stay human readable
	// https://www.elastic.co/guide/en/elasticsearch/reference/current/cat-allocation.html
	CatAllocation(ctx context.Context) ([]byte, error)
	// NodesInfo https://www.elastic.co/guide/en/elasticsearch/reference/current/cluster-nodes-info.html
	NodesInfo(ctx context.Context) ([]byte, error)
	// ClusterState is restricted to the nodes metric
	// https://www.elastic.co/guide/en/elasticsearch/reference/current/cluster-state.html
	ClusterState(ctx context.Context) ([]byte, error)
	// IndicesStats is requested at shard level so per copy store sizes are present
	// https://www.elastic.co/guide/en/elasticsearch/reference/current/indices-stats.html
	IndicesStats(ctx context.Context) ([]byte, error)
}

type DiagnosticsClientImpl struct {
	es *elasticsearch.Client
}

func NewDiagnosticsClientImpl(es *elasticsearch.Client) *DiagnosticsClientImpl {
	return &DiagnosticsClientImpl{es: es}
}

func (d *DiagnosticsClientImpl) CatShards(ctx context.Context) ([]byte, error) {
	res, err := d.es.Cat.Shards(
		d.es.Cat.Shards.WithContext(ctx),
		d.es.Cat.Shards.WithFormat("json"),
	)
	return readBody("cat shards", res, err)
}

func (d *DiagnosticsClientImpl) CatAllocation(ctx context.Context) ([]byte, error) {
	res, err := d.es.Cat.Allocation(
		d.es.Cat.Allocation.WithContext(ctx),
		d.es.Cat.Allocation.WithFormat("json"),
	)
	return readBody("cat allocation", res, err)
}

func (d *DiagnosticsClientImpl) NodesInfo(ctx context.Context) ([]byte, error) {
	res, err := d.es.Nodes.Info(
		d.es.Nodes.Info.WithContext(ctx),
	)
	return readBody("nodes info", res, err)
}

func (d *DiagnosticsClientImpl) ClusterState(ctx context.Context) ([]byte, error) {
	res, err := d.es.Cluster.State(
		d.es.Cluster.State.WithContext(ctx),
		d.es.Cluster.State.WithMetric("nodes"),
	)
	return readBody("cluster state", res, err)
}

func (d *DiagnosticsClientImpl) IndicesStats(ctx context.Context) ([]byte, error) {
	res, err := d.es.Indices.Stats(
		d.es.Indices.Stats.WithContext(ctx),
		d.es.Indices.Stats.WithLevel("shards"),
	)
	return readBody("indices stats", res, err)
}

func readBody(op string, res *esapi.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", op, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("failed to execute %s: %s", op, res.String())
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response body: %w", op, err)
	}
	return body, nil
}
