// Package heuristic scores boards for the search engine. It is the analogue
// of a static evaluation function: a weighted sum of surface features of the
// board that results from a candidate placement.
package heuristic

import "github.com/fortyhands/tetrion/board"

// Evaluator is a calculator of board quality. Evaluate scores the board that
// results from a placement, together with the number of lines that placement
// cleared. Implementations must be pure: no mutation of the board, and
// identical inputs always produce identical outputs.
type Evaluator interface {
	Evaluate(b *board.Board, linesCleared int) float64
}
