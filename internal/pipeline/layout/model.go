package layout

import (
	"errors"
	"fmt"
	"math"
)

type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

func (r Rect) Width() float64 { return r.X1 - r.X0 }

func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Inset shrinks r by p on every side. An axis that would turn negative collapses to its midline.
func (r Rect) Inset(p float64) Rect {
	x0, y0, x1, y1 := r.X0+p, r.Y0+p, r.X1-p, r.Y1-p
	if x1 < x0 {
		x0 = (x0 + x1) / 2
		x1 = x0
	}
	if y1 < y0 {
		y0 = (y0 + y1) / 2
		y1 = y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

type Options struct {
	Width   float64
	Height  float64
	Padding float64
}

func (o Options) Validate() error {
	if !finite(o.Width) || !finite(o.Height) || !finite(o.Padding) {
		return fmt.Errorf("%w: canvas and padding must be finite, got %gx%g padding %g",
			ErrInvalidOptions, o.Width, o.Height, o.Padding)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: canvas must be positive, got %gx%g", ErrInvalidOptions, o.Width, o.Height)
	}
	if o.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %g", ErrInvalidOptions, o.Padding)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LeafDescriptor is one shard or free-space rectangle handed to a renderer.
type LeafDescriptor struct {
	CompositeID string `json:"compositeId"`
	Rect        Rect   `json:"rect"`
	// Slot is the tile assigned to the leaf before padding was applied.
	Slot      Rect   `json:"-"`
	GroupKey  string `json:"groupKey"`
	Index     string `json:"index"`
	Shard     string `json:"shard"`
	SizeBytes int64  `json:"sizeBytes"`
	Free      bool   `json:"free"`
}

// GroupDescriptor is the rectangle of one cluster node.
type GroupDescriptor struct {
	Name       string `json:"name"`
	Rect       Rect   `json:"rect"`
	Slot       Rect   `json:"-"`
	Content    Rect   `json:"-"`
	SizeBytes  int64  `json:"sizeBytes"`
	FreeBytes  int64  `json:"freeBytes"`
	ShardCount int    `json:"shardCount"`
}

type Result struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
	// Content is the region the root's children were tiled into.
	Content Rect              `json:"-"`
	Groups  []GroupDescriptor `json:"groups"`
	Leaves  []LeafDescriptor  `json:"leaves"`
	// Degenerate is set when some region had only zero weights and was split evenly.
	Degenerate bool `json:"degenerate"`
}

var (
	ErrInvalidOptions  = errors.New("invalid layout options")
	ErrDegenerateInput = errors.New("all weights are zero, using equal areas")
)
