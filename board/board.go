// Package board implements the playfield as one bitmask per row. All
// placement, collision, and line-clear operations work on the masks directly
// so that simulating a candidate placement stays cheap for the search engine.
package board

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/fortyhands/tetrion/tetromino"
)

// MaxWidth is the widest supported board; a row must fit in one uint64.
const MaxWidth = 64

// Board is a fixed H×W grid. Row 0 is the top. Bit x of a row mask is set
// when column x of that row is occupied.
type Board struct {
	rows []uint64
	w, h int
}

// New creates an empty w×h board. It panics if the dimensions cannot be
// represented; dimensions come from configuration, not user input.
func New(w, h int) *Board {
	if w < 1 || w > MaxWidth || h < 1 {
		panic(fmt.Sprintf("board: bad dimensions %dx%d", w, h))
	}
	return &Board{rows: make([]uint64, h), w: w, h: h}
}

// Copy returns a fully independent duplicate.
func (b *Board) Copy() *Board {
	n := &Board{rows: make([]uint64, b.h), w: b.w, h: b.h}
	copy(n.rows, b.rows)
	return n
}

// CopyFrom copies o into b. The boards must have the same dimensions.
func (b *Board) CopyFrom(o *Board) {
	if b.w != o.w || b.h != o.h {
		panic("board: CopyFrom dimension mismatch")
	}
	copy(b.rows, o.rows)
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// FullRowMask is the bit pattern of a completely filled row.
func (b *Board) FullRowMask() uint64 { return 1<<uint(b.w) - 1 }

// Row returns the bitmask for row y.
func (b *Board) Row(y int) uint64 { return b.rows[y] }

// SetRow overwrites the bitmask for row y. Mostly useful for setting up
// test positions.
func (b *Board) SetRow(y int, mask uint64) { b.rows[y] = mask & b.FullRowMask() }

// Occupied reports whether the cell at (col, row) is filled.
func (b *Board) Occupied(col, row int) bool {
	return b.rows[row]&(1<<uint(col)) != 0
}

// Collides reports whether the piece anchored at (col, row) in the given
// rotation would fall outside the horizontal bounds, at or below the floor,
// or on top of an occupied cell. Cells above the visible grid (row < 0) are
// allowed and never tested against occupancy.
func (b *Board) Collides(col, row int, p tetromino.Piece, rot int) bool {
	for _, o := range tetromino.Shape(p, rot) {
		x := col + o.X
		y := row + o.Y
		if x < 0 || x >= b.w || y >= b.h {
			return true
		}
		if y >= 0 && b.rows[y]&(1<<uint(x)) != 0 {
			return true
		}
	}
	return false
}

// Place fills the piece's cells. Cells with row < 0 are dropped silently.
// The caller must already have verified the placement does not collide;
// Place does no validation of its own.
func (b *Board) Place(col, row int, p tetromino.Piece, rot int) {
	for _, o := range tetromino.Shape(p, rot) {
		x := col + o.X
		y := row + o.Y
		if y >= 0 {
			b.rows[y] |= 1 << uint(x)
		}
	}
}

// DropRow resolves hard-drop physics: starting at row 0, the anchor row
// advances while the next row down is still collision-free. The caller must
// have checked that the piece does not collide at row 0.
func (b *Board) DropRow(col int, p tetromino.Piece, rot int) int {
	row := 0
	for !b.Collides(col, row+1, p, rot) {
		row++
	}
	return row
}

// ClearLines removes every full row, compacts the remaining rows downward
// preserving their order, zero-fills the vacated rows at the top, and
// returns how many rows were removed. A single tetromino spans at most four
// rows, so the count after one placement is 0 through 4.
func (b *Board) ClearLines() int {
	full := b.FullRowMask()
	lines := 0
	dst := b.h - 1
	for src := b.h - 1; src >= 0; src-- {
		if b.rows[src] == full {
			lines++
			continue
		}
		if src != dst {
			b.rows[dst] = b.rows[src]
		}
		dst--
	}
	for y := dst; y >= 0; y-- {
		b.rows[y] = 0
	}
	return lines
}

// Fingerprint hashes the row masks top to bottom. It is only a memoization
// key for the search engine: distinct boards hashing alike are treated as
// cache hits, an accepted (and at 64 bits, vanishingly rare) approximation.
func (b *Board) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, r := range b.rows {
		binary.LittleEndian.PutUint64(buf[:], r)
		d.Write(buf[:])
	}
	return d.Sum64()
}
