// Package tetromino defines the seven piece kinds, their rotation shape
// table, and the bag that supplies them.
package tetromino

import "fmt"

// Piece is a tetromino kind.
type Piece int8

const (
	I Piece = iota
	O
	T
	S
	Z
	J
	L
)

// PieceCount is the number of distinct tetromino kinds.
const PieceCount = 7

// NumRotations is the number of rotation states in the shape table. Kinds
// with fewer true rotation states repeat entries.
const NumRotations = 4

var pieceNames = [PieceCount]string{"I", "O", "T", "S", "Z", "J", "L"}

func (p Piece) String() string {
	if p < 0 || p >= PieceCount {
		return fmt.Sprintf("Piece(%d)", int8(p))
	}
	return pieceNames[p]
}

// Offset is a cell of a piece footprint, relative to the anchor.
type Offset struct {
	X, Y int
}

// Each piece kind occupies exactly four cells in every rotation state.
var shapes = [PieceCount][NumRotations][4]Offset{
	I: {
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{1, -1}, {1, 0}, {1, 1}, {1, 2}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	S: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	Z: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	J: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	L: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Shape returns the four occupied cells for a piece kind in the given
// rotation state, relative to the anchor. It panics on an out-of-range kind
// or rotation; those are programmer errors, not runtime conditions.
func Shape(p Piece, rot int) [4]Offset {
	if p < 0 || p >= PieceCount {
		panic(fmt.Sprintf("tetromino: bad piece kind %d", int8(p)))
	}
	if rot < 0 || rot >= NumRotations {
		panic(fmt.Sprintf("tetromino: bad rotation %d", rot))
	}
	return shapes[p][rot]
}
