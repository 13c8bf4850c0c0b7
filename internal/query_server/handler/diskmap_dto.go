package handler

import (
	"github.com/Avi18971911/diagviewer/internal/pipeline/layout"
	"github.com/Avi18971911/diagviewer/internal/render"
)

// SummaryResponseDTO is the per node disk usage of the loaded bundle
// @swagger:model SummaryResponseDTO
type SummaryResponseDTO struct {
	// The cluster name reported by the bundle
	ClusterName string `json:"cluster_name"`
	// Totals per node in cluster order
	Nodes []render.NodeSummary `json:"nodes"`
	// The node rectangles of the requested layout
	Groups []layout.GroupDescriptor `json:"groups"`
}
