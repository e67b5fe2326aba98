package heuristic

import "github.com/fortyhands/tetrion/board"

// ZeroEvaluator scores every board as 0. Useful as a baseline and for
// isolating search behavior from scoring in tests.
type ZeroEvaluator struct{}

func (ZeroEvaluator) Evaluate(b *board.Board, linesCleared int) float64 {
	return 0
}
