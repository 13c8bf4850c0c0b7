package layout

import (
	"fmt"
	"sort"

	"github.com/Avi18971911/diagviewer/internal/pipeline/hierarchy/model"
	"go.uber.org/zap"
)

type positioned struct {
	node     model.TreeNode
	value    int64
	children []*positioned
	slot     Rect
	rect     Rect
	content  Rect
}

type LayoutEngine struct {
	logger *zap.Logger
}

func NewLayoutEngine(logger *zap.Logger) *LayoutEngine {
	return &LayoutEngine{
		logger: logger,
	}
}

// Layout sums, sorts and tiles the tree rooted at root onto a Width x Height canvas.
// Every internal region is shrunk by Padding before its children are tiled into it and
// every non-root node is inset by half the padding inside its tile, so siblings are
// separated by Padding at every level.
func (le *LayoutEngine) Layout(root model.TreeNode, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tree := summarize(root, NewComparer())
	canvas := Rect{X0: 0, Y0: 0, X1: opts.Width, Y1: opts.Height}
	degenerate := false
	place(tree, canvas, 0, opts.Padding, &degenerate)
	if degenerate {
		le.logger.Warn("Layout fell back to equal areas", zap.Error(ErrDegenerateInput))
	}

	result := &Result{
		Width:      opts.Width,
		Height:     opts.Height,
		Padding:    opts.Padding,
		Content:    tree.content,
		Degenerate: degenerate,
	}
	collect(tree, "", result)
	le.logger.Debug(
		"Laid out tree",
		zap.String("root", root.DisplayName()),
		zap.Int("groups", len(result.Groups)),
		zap.Int("leaves", len(result.Leaves)),
	)
	return result, nil
}

func summarize(n model.TreeNode, comparer *Comparer) *positioned {
	p := &positioned{node: n, value: Weight(n)}
	for _, child := range Children(n) {
		summarized := summarize(child, comparer)
		p.value += summarized.value
		p.children = append(p.children, summarized)
	}
	sort.SliceStable(p.children, func(i, j int) bool {
		return comparer.Compare(p.children[i].node, p.children[j].node) < 0
	})
	return p
}

func place(p *positioned, slot Rect, inset float64, padding float64, degenerate *bool) {
	p.slot = slot
	p.rect = slot.Inset(inset)
	if len(p.children) == 0 {
		p.content = p.rect
		return
	}

	childInset := padding / 2
	p.content = p.rect.Inset(padding - childInset)
	weights := make([]float64, len(p.children))
	for i, child := range p.children {
		weights[i] = float64(child.value)
	}
	slots, even := Squarify(weights, p.content)
	if even && p.content.Area() > 0 {
		*degenerate = true
	}
	for i, child := range p.children {
		place(child, slots[i], childInset, padding, degenerate)
	}
}

func collect(p *positioned, groupKey string, result *Result) {
	switch v := p.node.(type) {
	case *model.Cluster:
		for _, child := range p.children {
			collect(child, groupKey, result)
		}
	case *model.Node:
		result.Groups = append(result.Groups, GroupDescriptor{
			Name:       v.Name,
			Rect:       p.rect,
			Slot:       p.slot,
			Content:    p.content,
			SizeBytes:  p.value,
			FreeBytes:  v.FreeBytes(),
			ShardCount: v.RealShardCount(),
		})
		for _, child := range p.children {
			collect(child, v.Name, result)
		}
	case *model.Shard:
		if groupKey == "" {
			groupKey = v.NodeName
		}
		result.Leaves = append(result.Leaves, LeafDescriptor{
			CompositeID: v.Name,
			Rect:        p.rect,
			Slot:        p.slot,
			GroupKey:    groupKey,
			Index:       v.Index,
			Shard:       v.Label(),
			SizeBytes:   v.SizeBytes,
			Free:        v.IsFreeSpace(),
		})
	default:
		panic(fmt.Sprintf("unexpected tree node %T", p.node))
	}
}
