package service

import (
	"testing"

	diagModel "github.com/Avi18971911/diagviewer/internal/diag/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func shardRecord(index, shard, node string) diagModel.ShardRecord {
	return diagModel.ShardRecord{Index: index, Shard: shard, State: diagModel.ShardStarted, Node: strPtr(node)}
}

func instance(nodeId string, size int64) diagModel.ShardInstanceStats {
	return diagModel.ShardInstanceStats{
		Routing: diagModel.ShardRouting{Node: nodeId, State: diagModel.ShardStarted},
		Store:   diagModel.StoreStats{TotalDataSetSizeInBytes: int64Ptr(size)},
	}
}

func replicatedStats() diagModel.IndicesStatsDocument {
	return diagModel.IndicesStatsDocument{
		Indices: map[string]diagModel.IndexStats{
			"idx1": {
				Shards: map[string][]diagModel.ShardInstanceStats{
					"0": {instance("id-a", 100), instance("id-b", 110)},
					"1": {instance("id-a", 200), instance("id-b", 210)},
				},
			},
		},
	}
}

func TestCorrelatorService_Correlate(t *testing.T) {
	cs := NewCorrelatorService(zap.NewNop())
	lookup := map[string]string{"A": "id-a", "B": "id-b"}

	t.Run("Attaches the size of the instance held by the record's node", func(t *testing.T) {
		res, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{
				shardRecord("idx1", "0", "A"),
				shardRecord("idx1", "0", "B"),
				shardRecord("idx1", "1", "B"),
			},
			Statistics:   replicatedStats(),
			NodeIdByName: lookup,
		})
		require.NoError(t, err)
		require.Len(t, res.Shards, 3)
		assert.Equal(t, "id-a_idx1_0", res.Shards[0].Id)
		assert.Equal(t, int64(100), res.Shards[0].SizeBytes)
		assert.Equal(t, "A", res.Shards[0].NodeName)
		assert.Equal(t, int64(110), res.Shards[1].SizeBytes)
		assert.Equal(t, int64(210), res.Shards[2].SizeBytes)

		shard, ok := res.ByID("id-b_idx1_1")
		assert.True(t, ok)
		assert.Equal(t, "B", shard.NodeName)
		_, ok = res.ByID("id-a_idx1_1")
		assert.False(t, ok)
	})

	t.Run("Produces unique ids for replicas of the same shard", func(t *testing.T) {
		res, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{
				shardRecord("idx1", "0", "A"),
				shardRecord("idx1", "0", "B"),
				shardRecord("idx1", "1", "A"),
				shardRecord("idx1", "1", "B"),
			},
			Statistics:   replicatedStats(),
			NodeIdByName: lookup,
		})
		require.NoError(t, err)
		ids := make(map[string]struct{})
		for _, shard := range res.Shards {
			ids[shard.Id] = struct{}{}
		}
		assert.Len(t, ids, 4)
	})

	t.Run("Passes allocation records through unchanged", func(t *testing.T) {
		allocations := []diagModel.AllocationRecord{{Node: "A", DiskAvail: strPtr("1kb")}}
		res, err := cs.Correlate(CorrelationInput{
			Statistics:   replicatedStats(),
			NodeIdByName: lookup,
			Allocations:  allocations,
		})
		require.NoError(t, err)
		assert.Equal(t, allocations, res.Allocations)
		assert.Empty(t, res.Shards)
	})

	t.Run("Skips unassigned shards", func(t *testing.T) {
		res, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{
				shardRecord("idx1", "0", "A"),
				{Index: "idx1", Shard: "1", State: diagModel.ShardUnassigned},
			},
			Statistics:   replicatedStats(),
			NodeIdByName: lookup,
		})
		require.NoError(t, err)
		assert.Len(t, res.Shards, 1)
		assert.Equal(t, 1, res.Unassigned)
	})

	t.Run("Falls back to size_in_bytes when the data set size is absent", func(t *testing.T) {
		stats := diagModel.IndicesStatsDocument{Indices: map[string]diagModel.IndexStats{
			"old": {Shards: map[string][]diagModel.ShardInstanceStats{
				"0": {{
					Routing: diagModel.ShardRouting{Node: "id-a"},
					Store:   diagModel.StoreStats{SizeInBytes: int64Ptr(42)},
				}},
			}},
		}}
		res, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{shardRecord("old", "0", "A")},
			Statistics:   stats,
			NodeIdByName: lookup,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), res.Shards[0].SizeBytes)
	})
}

func TestCorrelatorService_Correlate_Errors(t *testing.T) {
	cs := NewCorrelatorService(zap.NewNop())
	lookup := map[string]string{"A": "id-a", "B": "id-b"}

	t.Run("Fails with UnknownNodeError when the node name is not in the lookup", func(t *testing.T) {
		res, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{shardRecord("idx1", "0", "C")},
			Statistics:   replicatedStats(),
			NodeIdByName: lookup,
		})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrUnknownNode)
		var unknown *UnknownNodeError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "C", unknown.NodeName)
	})

	tests := []struct {
		name   string
		record diagModel.ShardRecord
	}{
		{"index is missing", shardRecord("idx2", "0", "A")},
		{"shard number is missing", shardRecord("idx1", "7", "A")},
	}
	for _, tt := range tests {
		t.Run("Fails with MissingStatisticsError when the "+tt.name, func(t *testing.T) {
			_, err := cs.Correlate(CorrelationInput{
				ShardRecords: []diagModel.ShardRecord{tt.record},
				Statistics:   replicatedStats(),
				NodeIdByName: lookup,
			})
			assert.ErrorIs(t, err, ErrMissingStatistics)
		})
	}

	t.Run("Fails with MissingStatisticsError when no instance is routed to the node", func(t *testing.T) {
		_, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{shardRecord("idx1", "0", "C")},
			Statistics:   replicatedStats(),
			NodeIdByName: map[string]string{"C": "id-c"},
		})
		assert.ErrorIs(t, err, ErrMissingStatistics)
	})

	t.Run("Fails when store statistics carry no size", func(t *testing.T) {
		stats := diagModel.IndicesStatsDocument{Indices: map[string]diagModel.IndexStats{
			"idx1": {Shards: map[string][]diagModel.ShardInstanceStats{
				"0": {{Routing: diagModel.ShardRouting{Node: "id-a"}}},
			}},
		}}
		_, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{shardRecord("idx1", "0", "A")},
			Statistics:   stats,
			NodeIdByName: lookup,
		})
		assert.ErrorIs(t, err, ErrMissingStatistics)
	})

	t.Run("Fails with AmbiguousStatisticsError when two instances match", func(t *testing.T) {
		stats := diagModel.IndicesStatsDocument{Indices: map[string]diagModel.IndexStats{
			"idx1": {Shards: map[string][]diagModel.ShardInstanceStats{
				"0": {instance("id-a", 1), instance("id-a", 2)},
			}},
		}}
		_, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{shardRecord("idx1", "0", "A")},
			Statistics:   stats,
			NodeIdByName: lookup,
		})
		assert.ErrorIs(t, err, ErrAmbiguousStatistics)
	})

	t.Run("Fails with DuplicateShardError when a record repeats", func(t *testing.T) {
		_, err := cs.Correlate(CorrelationInput{
			ShardRecords: []diagModel.ShardRecord{
				shardRecord("idx1", "0", "A"),
				shardRecord("idx1", "0", "A"),
			},
			Statistics:   replicatedStats(),
			NodeIdByName: lookup,
		})
		assert.ErrorIs(t, err, ErrDuplicateShard)
	})
}

func TestBuildNodeIdLookup(t *testing.T) {
	t.Run("Maps node names to cluster state ids", func(t *testing.T) {
		lookup, err := BuildNodeIdLookup(diagModel.ClusterStateDocument{
			Nodes: map[string]diagModel.ClusterStateNode{
				"id-a": {Name: "A"},
				"id-b": {Name: "B"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"A": "id-a", "B": "id-b"}, lookup)
	})

	t.Run("Fails when two ids share a name", func(t *testing.T) {
		_, err := BuildNodeIdLookup(diagModel.ClusterStateDocument{
			Nodes: map[string]diagModel.ClusterStateNode{
				"id-a":  {Name: "A"},
				"id-a2": {Name: "A"},
			},
		})
		assert.ErrorIs(t, err, ErrDuplicateNodeName)
		var dup *DuplicateNodeNameError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, []string{"id-a", "id-a2"}, dup.NodeIds)
	})
}
