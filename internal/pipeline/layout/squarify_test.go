package layout

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-6

func overlapArea(a, b Rect) float64 {
	w := math.Min(a.X1, b.X1) - math.Max(a.X0, b.X0)
	h := math.Min(a.Y1, b.Y1) - math.Max(a.Y0, b.Y0)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

func assertTiles(t *testing.T, weights []float64, region Rect, rects []Rect) {
	t.Helper()
	require.Len(t, rects, len(weights))
	total := 0.0
	for _, w := range weights {
		total += w
	}
	covered := 0.0
	for i, r := range rects {
		assert.GreaterOrEqual(t, r.Width(), -epsilon)
		assert.GreaterOrEqual(t, r.Height(), -epsilon)
		assert.GreaterOrEqual(t, r.X0, region.X0-epsilon)
		assert.GreaterOrEqual(t, r.Y0, region.Y0-epsilon)
		assert.LessOrEqual(t, r.X1, region.X1+epsilon)
		assert.LessOrEqual(t, r.Y1, region.Y1+epsilon)
		assert.InDelta(t, region.Area()*weights[i]/total, r.Area(), 1e-6*region.Area())
		covered += r.Area()
		for j := i + 1; j < len(rects); j++ {
			assert.InDelta(t, 0, overlapArea(r, rects[j]), epsilon, "rects %d and %d overlap", i, j)
		}
	}
	assert.InDelta(t, region.Area(), covered, 1e-6*region.Area())
}

func TestSquarify(t *testing.T) {
	t.Run("Returns nothing for no weights", func(t *testing.T) {
		rects, degenerate := Squarify(nil, Rect{X1: 10, Y1: 10})
		assert.Empty(t, rects)
		assert.False(t, degenerate)
	})

	t.Run("Gives a single weight the whole region", func(t *testing.T) {
		region := Rect{X0: 2, Y0: 3, X1: 12, Y1: 8}
		rects, degenerate := Squarify([]float64{5}, region)
		assert.False(t, degenerate)
		require.Len(t, rects, 1)
		assert.InDelta(t, region.X0, rects[0].X0, epsilon)
		assert.InDelta(t, region.Y0, rects[0].Y0, epsilon)
		assert.InDelta(t, region.X1, rects[0].X1, epsilon)
		assert.InDelta(t, region.Y1, rects[0].Y1, epsilon)
	})

	t.Run("Tiles the region proportionally without gaps or overlaps", func(t *testing.T) {
		region := Rect{X0: 0, Y0: 0, X1: 1400, Y1: 700}
		weights := []float64{6, 6, 4, 3, 2, 2, 1}
		rects, degenerate := Squarify(weights, region)
		assert.False(t, degenerate)
		assertTiles(t, weights, region, rects)
	})

	t.Run("Tiles random weights in tall and wide regions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		regions := []Rect{{X1: 300, Y1: 900}, {X1: 900, Y1: 300}, {X0: 10, Y0: 10, X1: 20, Y1: 20}}
		for _, region := range regions {
			for trial := 0; trial < 20; trial++ {
				weights := make([]float64, 1+rng.Intn(40))
				for i := range weights {
					weights[i] = 1 + float64(rng.Intn(1<<20))
				}
				rects, _ := Squarify(weights, region)
				assertTiles(t, weights, region, rects)
			}
		}
	})

	t.Run("Keeps rectangles close to square for equal weights", func(t *testing.T) {
		weights := make([]float64, 16)
		for i := range weights {
			weights[i] = 1
		}
		rects, _ := Squarify(weights, Rect{X1: 400, Y1: 400})
		for _, r := range rects {
			ratio := math.Max(r.Width()/r.Height(), r.Height()/r.Width())
			assert.Less(t, ratio, 3.0)
		}
	})

	t.Run("Gives zero weights zero-area rectangles", func(t *testing.T) {
		weights := []float64{0, 10, 0, 5, 0}
		region := Rect{X1: 100, Y1: 50}
		rects, degenerate := Squarify(weights, region)
		assert.False(t, degenerate)
		assertTiles(t, weights, region, rects)
		assert.InDelta(t, 0, rects[0].Area(), epsilon)
		assert.InDelta(t, 0, rects[2].Area(), epsilon)
		assert.InDelta(t, 0, rects[4].Area(), epsilon)
	})

	t.Run("Splits the region evenly when every weight is zero", func(t *testing.T) {
		region := Rect{X1: 90, Y1: 30}
		rects, degenerate := Squarify([]float64{0, 0, 0}, region)
		assert.True(t, degenerate)
		assertTiles(t, []float64{1, 1, 1}, region, rects)
	})

	t.Run("Handles a zero-area region", func(t *testing.T) {
		region := Rect{X0: 5, Y0: 5, X1: 5, Y1: 20}
		rects, _ := Squarify([]float64{1, 2, 3}, region)
		for _, r := range rects {
			assert.InDelta(t, 0, r.Area(), epsilon)
			assert.False(t, math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1))
		}
	})
}

func TestRect_Inset(t *testing.T) {
	t.Run("Shrinks every side", func(t *testing.T) {
		assert.Equal(t, Rect{X0: 2, Y0: 2, X1: 8, Y1: 18}, Rect{X1: 10, Y1: 20}.Inset(2))
	})

	t.Run("Collapses to the midline instead of inverting", func(t *testing.T) {
		r := Rect{X0: 0, Y0: 0, X1: 4, Y1: 100}.Inset(5)
		assert.Equal(t, 2.0, r.X0)
		assert.Equal(t, 2.0, r.X1)
		assert.Equal(t, 5.0, r.Y0)
		assert.Equal(t, 95.0, r.Y1)
	})
}
