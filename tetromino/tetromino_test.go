package tetromino

import (
	"testing"

	"github.com/matryer/is"
)

func TestShapeCellCounts(t *testing.T) {
	for p := Piece(0); p < PieceCount; p++ {
		for rot := 0; rot < NumRotations; rot++ {
			cells := map[Offset]bool{}
			for _, o := range Shape(p, rot) {
				cells[o] = true
			}
			if len(cells) != 4 {
				t.Errorf("piece %v rot %d: expected 4 distinct cells, got %d",
					p, rot, len(cells))
			}
		}
	}
}

func TestSquareHasOneRotationState(t *testing.T) {
	is := is.New(t)
	base := Shape(O, 0)
	for rot := 1; rot < NumRotations; rot++ {
		is.Equal(Shape(O, rot), base)
	}
}

func TestIHorizontalFootprint(t *testing.T) {
	is := is.New(t)
	is.Equal(Shape(I, 0), [4]Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	// The vertical states repeat.
	is.Equal(Shape(I, 1), Shape(I, 3))
}

func TestShapeBadArgsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range piece kind")
		}
	}()
	Shape(Piece(PieceCount), 0)
}

func TestPieceString(t *testing.T) {
	is := is.New(t)
	is.Equal(I.String(), "I")
	is.Equal(L.String(), "L")
}
