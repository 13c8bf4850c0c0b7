package layout

import "math"

// phi is the target aspect ratio of squarified rows.
const phi = 1.618033988749895

// Squarify tiles r among len(weights) rectangles whose areas are proportional to the weights,
// in order. Zero weights get zero-area rectangles. When no weight is positive the region is
// split into equal areas and the second return value is true.
func Squarify(weights []float64, r Rect) ([]Rect, bool) {
	rects := make([]Rect, len(weights))
	if len(weights) == 0 {
		return rects, false
	}

	total := 0.0
	for _, w := range weights {
		total += math.Max(w, 0)
	}
	values := make([]float64, len(weights))
	degenerate := total <= 0
	for i, w := range weights {
		switch {
		case degenerate:
			values[i] = 1
		case w > 0:
			values[i] = w
		}
	}
	if degenerate {
		total = float64(len(values))
	}

	squarifyRows(values, total, r, rects)
	return rects, degenerate
}

func squarifyRows(values []float64, value float64, r Rect, out []Rect) {
	x0, y0, x1, y1 := r.X0, r.Y0, r.X1, r.Y1
	n := len(values)
	i0, i1 := 0, 0
	for i0 < n {
		dx, dy := x1-x0, y1-y0

		// the row starts at the next non-empty value
		sumValue := values[i1]
		i1++
		for sumValue == 0 && i1 < n {
			sumValue = values[i1]
			i1++
		}

		if value > 0 && sumValue > 0 && dx > 0 && dy > 0 {
			minValue, maxValue := sumValue, sumValue
			alpha := math.Max(dy/dx, dx/dy) / (value * phi)
			beta := sumValue * sumValue * alpha
			minRatio := math.Max(maxValue/beta, beta/minValue)

			// keep adding while the worst aspect ratio of the row does not get worse
			for ; i1 < n; i1++ {
				nodeValue := values[i1]
				sumValue += nodeValue
				minValue = math.Min(minValue, nodeValue)
				maxValue = math.Max(maxValue, nodeValue)
				beta = sumValue * sumValue * alpha
				newRatio := math.Max(maxValue/beta, beta/minValue)
				if newRatio > minRatio {
					sumValue -= nodeValue
					break
				}
				minRatio = newRatio
			}
		} else {
			for ; i1 < n; i1++ {
				sumValue += values[i1]
			}
		}

		row := values[i0:i1]
		rowRects := out[i0:i1]
		if dx < dy {
			rowY1 := y1
			if value > 0 {
				rowY1 = y0 + dy*sumValue/value
			}
			dice(row, sumValue, Rect{X0: x0, Y0: y0, X1: x1, Y1: rowY1}, rowRects)
			if value > 0 {
				y0 = rowY1
			}
		} else {
			rowX1 := x1
			if value > 0 {
				rowX1 = x0 + dx*sumValue/value
			}
			slice(row, sumValue, Rect{X0: x0, Y0: y0, X1: rowX1, Y1: y1}, rowRects)
			if value > 0 {
				x0 = rowX1
			}
		}
		value -= sumValue
		i0 = i1
	}
}

// dice lays the row out left to right across r.
func dice(row []float64, sum float64, r Rect, out []Rect) {
	k := 0.0
	if sum > 0 {
		k = r.Width() / sum
	}
	x := r.X0
	for i, v := range row {
		next := x + v*k
		if i == len(row)-1 && v > 0 {
			next = r.X1
		}
		out[i] = Rect{X0: x, Y0: r.Y0, X1: next, Y1: r.Y1}
		x = next
	}
}

// slice lays the row out top to bottom down r.
func slice(row []float64, sum float64, r Rect, out []Rect) {
	k := 0.0
	if sum > 0 {
		k = r.Height() / sum
	}
	y := r.Y0
	for i, v := range row {
		next := y + v*k
		if i == len(row)-1 && v > 0 {
			next = r.Y1
		}
		out[i] = Rect{X0: r.X0, Y0: y, X1: r.X1, Y1: next}
		y = next
	}
}
