package tetromino

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Supply produces the next piece for the lookahead queue.
type Supply interface {
	Next() Piece
}

// A Bag is the bag o'pieces. It deals every kind exactly once per shuffled
// cycle before any repeats, the usual 7-bag fairness policy.
type Bag struct {
	pieces     []Piece
	randSource *frand.RNG
}

// NewBag returns a bag with a non-deterministic random source.
func NewBag() *Bag {
	b := &Bag{randSource: frand.New()}
	b.refill()
	return b
}

// NewSeededBag returns a bag whose shuffles are fully determined by seed.
// Used for reproducible games and tests.
func NewSeededBag(seed uint64) *Bag {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	b := &Bag{randSource: frand.NewCustom(key[:], 1024, 12)}
	b.refill()
	return b
}

func (b *Bag) refill() {
	b.pieces = b.pieces[:0]
	for p := Piece(0); p < PieceCount; p++ {
		b.pieces = append(b.pieces, p)
	}
	b.randSource.Shuffle(len(b.pieces), func(i, j int) {
		b.pieces[i], b.pieces[j] = b.pieces[j], b.pieces[i]
	})
}

// Next draws one piece, refilling the bag with a fresh permutation first if
// it is empty.
func (b *Bag) Next() Piece {
	if len(b.pieces) == 0 {
		b.refill()
	}
	p := b.pieces[len(b.pieces)-1]
	b.pieces = b.pieces[:len(b.pieces)-1]
	return p
}

// Remaining returns how many pieces are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pieces)
}
