package heuristic

import (
	"testing"

	"github.com/matryer/is"

	"github.com/fortyhands/tetrion/board"
)

// singleHoleBoard has exactly one covered empty cell: column 3 is occupied
// at row 18 and empty at row 19.
func singleHoleBoard() *board.Board {
	b := board.New(10, 20)
	b.SetRow(18, 1<<3)
	return b
}

func TestEmptyBoardScoresZero(t *testing.T) {
	is := is.New(t)
	ev := NewStandardEvaluator(DefaultWeights())
	is.Equal(ev.Evaluate(board.New(10, 20), 0), 0.0)
}

func TestHolesTerm(t *testing.T) {
	is := is.New(t)
	ev := NewStandardEvaluator(Weights{Holes: 1})
	is.Equal(ev.Evaluate(singleHoleBoard(), 0), 1.0)
}

func TestHeightSumTerm(t *testing.T) {
	is := is.New(t)
	ev := NewStandardEvaluator(Weights{HeightSum: 1})
	// Column 3 tops out at row 18, so its height is 2.
	is.Equal(ev.Evaluate(singleHoleBoard(), 0), 2.0)
}

func TestBumpinessTerm(t *testing.T) {
	is := is.New(t)
	ev := NewStandardEvaluator(Weights{Bumpiness: 1})
	// Heights are 0,0,0,2,0,...: two steps of 2 around column 3.
	is.Equal(ev.Evaluate(singleHoleBoard(), 0), 4.0)
}

func TestMaxHeightSquaredTerm(t *testing.T) {
	is := is.New(t)
	ev := NewStandardEvaluator(Weights{MaxHeightSquared: 1})
	is.Equal(ev.Evaluate(singleHoleBoard(), 0), 4.0)
}

func TestLinesClearedTerm(t *testing.T) {
	is := is.New(t)
	ev := NewStandardEvaluator(Weights{LinesCleared: 1})
	is.Equal(ev.Evaluate(board.New(10, 20), 3), 3.0)
}

func TestWellAtBoardEdge(t *testing.T) {
	is := is.New(t)
	// Columns 1..9 are 3 tall, column 0 is empty. The left edge counts as
	// a wall as tall as the board, so column 0 is a well of depth 3.
	b := board.New(10, 20)
	for y := 17; y < 20; y++ {
		b.SetRow(y, 0b1111111110)
	}
	ev := NewStandardEvaluator(Weights{Wells: 1})
	is.Equal(ev.Evaluate(b, 0), 3.0)
}

func TestWellBetweenColumns(t *testing.T) {
	is := is.New(t)
	// Heights 2,0,2,0: column 1 is a well of depth 2; column 3 borders the
	// right edge (height = board height) and its left neighbor of height 2,
	// so it is a well of depth 2 as well.
	b := board.New(4, 6)
	b.SetRow(4, 0b0101)
	b.SetRow(5, 0b0101)
	ev := NewStandardEvaluator(Weights{Wells: 1})
	is.Equal(ev.Evaluate(b, 0), 4.0)
}

func TestEvaluateIsPure(t *testing.T) {
	is := is.New(t)
	ev := NewStandardEvaluator(DefaultWeights())
	b := singleHoleBoard()
	before := b.Copy()
	s1 := ev.Evaluate(b, 1)
	s2 := ev.Evaluate(b, 1)
	is.Equal(s1, s2)
	for y := 0; y < b.Height(); y++ {
		is.Equal(b.Row(y), before.Row(y))
	}
}

func TestDefaultWeightsCombination(t *testing.T) {
	is := is.New(t)
	w := DefaultWeights()
	ev := NewStandardEvaluator(w)
	// heightSum 2, holes 1, bumpiness 4, wells 0, maxH² 4 on the
	// single-hole fixture.
	want := w.HeightSum*2 + w.Holes*1 + w.Bumpiness*4 + w.MaxHeightSquared*4 +
		w.LinesCleared*1
	is.Equal(ev.Evaluate(singleHoleBoard(), 1), want)
}
