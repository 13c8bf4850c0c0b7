package service

import (
	"errors"
	"fmt"
)

type UnknownNodeError struct {
	NodeName string
	Index    string
	Shard    string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("shard %s/%s references node %q which is not in the cluster state", e.Index, e.Shard, e.NodeName)
}

func (e *UnknownNodeError) Is(target error) bool { return target == ErrUnknownNode }

type MissingStatisticsError struct {
	Index  string
	Shard  string
	NodeId string
	Reason string
}

func (e *MissingStatisticsError) Error() string {
	return fmt.Sprintf("no statistics for shard %s/%s on node %s: %s", e.Index, e.Shard, e.NodeId, e.Reason)
}

func (e *MissingStatisticsError) Is(target error) bool { return target == ErrMissingStatistics }

type AmbiguousStatisticsError struct {
	Index   string
	Shard   string
	NodeId  string
	Matches int
}

func (e *AmbiguousStatisticsError) Error() string {
	return fmt.Sprintf(
		"%d statistics instances match shard %s/%s on node %s, expected exactly one",
		e.Matches, e.Index, e.Shard, e.NodeId,
	)
}

func (e *AmbiguousStatisticsError) Is(target error) bool { return target == ErrAmbiguousStatistics }

type DuplicateNodeNameError struct {
	NodeName string
	NodeIds  []string
}

func (e *DuplicateNodeNameError) Error() string {
	return fmt.Sprintf("node name %q is used by more than one node id: %v", e.NodeName, e.NodeIds)
}

func (e *DuplicateNodeNameError) Is(target error) bool { return target == ErrDuplicateNodeName }

type DuplicateShardError struct {
	ShardId string
}

func (e *DuplicateShardError) Error() string {
	return fmt.Sprintf("shard instance %s appears more than once", e.ShardId)
}

func (e *DuplicateShardError) Is(target error) bool { return target == ErrDuplicateShard }

var (
	ErrUnknownNode         = errors.New("unknown node")
	ErrMissingStatistics   = errors.New("missing shard statistics")
	ErrAmbiguousStatistics = errors.New("ambiguous shard statistics")
	ErrDuplicateNodeName   = errors.New("duplicate node name")
	ErrDuplicateShard      = errors.New("duplicate shard instance")
)
