package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
	"github.com/Avi18971911/diagviewer/internal/sizeunit"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	borderColor = lipgloss.Color("#44475A")
	headerColor = lipgloss.Color("#8BE9FD")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF79C6"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(headerColor).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// NodeSummary is the disk usage of one node as shown in the summary table.
type NodeSummary struct {
	Name       string `json:"name"`
	ShardCount int    `json:"shardCount"`
	UsedBytes  int64  `json:"usedBytes"`
	FreeBytes  int64  `json:"freeBytes"`
	TotalBytes int64  `json:"totalBytes"`
}

func Summarize(cluster *model.Cluster) []NodeSummary {
	summaries := make([]NodeSummary, 0, len(cluster.Nodes))
	for _, node := range cluster.Nodes {
		used, free := node.UsedBytes(), node.FreeBytes()
		summaries = append(summaries, NodeSummary{
			Name:       node.Name,
			ShardCount: node.RealShardCount(),
			UsedBytes:  used,
			FreeBytes:  free,
			TotalBytes: used + free,
		})
	}
	return summaries
}

// Summary writes a terminal table with one row per node.
func Summary(w io.Writer, cluster *model.Cluster) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	t.Headers("NODE", "SHARDS", "USED", "FREE", "TOTAL")
	for _, s := range Summarize(cluster) {
		t.Row(
			s.Name,
			strconv.Itoa(s.ShardCount),
			sizeunit.Format(s.UsedBytes),
			sizeunit.Format(s.FreeBytes),
			sizeunit.Format(s.TotalBytes),
		)
	}

	if _, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(cluster.Name), t.Render()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
