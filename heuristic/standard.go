package heuristic

import "github.com/fortyhands/tetrion/board"

// StandardEvaluator scores a board from its column heights: aggregate
// height, holes, surface bumpiness, wells, the square of the tallest column,
// and the lines the placement cleared.
type StandardEvaluator struct {
	w Weights
}

// NewStandardEvaluator creates an evaluator with the given tuning.
func NewStandardEvaluator(w Weights) *StandardEvaluator {
	return &StandardEvaluator{w: w}
}

func (e *StandardEvaluator) Evaluate(b *board.Board, linesCleared int) float64 {
	w, h := b.Width(), b.Height()
	var colHeights [board.MaxWidth]int
	heights := colHeights[:w]

	heightSum, holes, maxH := 0, 0, 0
	for x := 0; x < w; x++ {
		mask := uint64(1) << uint(x)
		found := false
		for y := 0; y < h; y++ {
			if b.Row(y)&mask != 0 {
				if !found {
					heights[x] = h - y
					found = true
				}
			} else if found {
				// Empty cell with something above it in the same column.
				holes++
			}
		}
		heightSum += heights[x]
		if heights[x] > maxH {
			maxH = heights[x]
		}
	}

	bumpiness, wells := 0, 0
	for x := 0; x < w; x++ {
		if x < w-1 {
			bumpiness += abs(heights[x] - heights[x+1])
		}
		// A board edge counts as a wall as tall as the board, so edge
		// columns can still register as wells.
		left, right := h, h
		if x > 0 {
			left = heights[x-1]
		}
		if x < w-1 {
			right = heights[x+1]
		}
		if heights[x] < left && heights[x] < right {
			wells += min(left, right) - heights[x]
		}
	}

	return e.w.HeightSum*float64(heightSum) +
		e.w.Holes*float64(holes) +
		e.w.Bumpiness*float64(bumpiness) +
		e.w.Wells*float64(wells) +
		e.w.MaxHeightSquared*float64(maxH*maxH) +
		e.w.LinesCleared*float64(linesCleared)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
