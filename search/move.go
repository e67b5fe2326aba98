package search

import "fmt"

// SentinelScore marks "no legal move". It is a large finite negative number
// rather than -Inf so that a placement whose continuations are all dead ends
// still sums to a heavily penalized, comparable score.
const SentinelScore = -1e12

// Move is the engine's answer: the rotation and anchor column for the
// current piece, plus the score of the best line of play found through it.
type Move struct {
	Rotation int
	Column   int
	Score    float64
}

// Valid reports whether any legal placement was found. An invalid move
// signals game over to the caller.
func (m Move) Valid() bool {
	return m.Rotation >= 0
}

func (m Move) String() string {
	if !m.Valid() {
		return "<no legal move>"
	}
	return fmt.Sprintf("rot %d col %d (%.4f)", m.Rotation, m.Column, m.Score)
}
