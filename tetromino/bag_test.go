package tetromino

import (
	"testing"

	"github.com/matryer/is"
)

func TestBagWindowFairness(t *testing.T) {
	bag := NewSeededBag(42)
	// From a bag boundary, every window of 7 draws must contain each of the
	// 7 kinds exactly once.
	for cycle := 0; cycle < 20; cycle++ {
		seen := map[Piece]int{}
		for i := 0; i < PieceCount; i++ {
			seen[bag.Next()]++
		}
		for p := Piece(0); p < PieceCount; p++ {
			if seen[p] != 1 {
				t.Fatalf("cycle %d: piece %v drawn %d times", cycle, p, seen[p])
			}
		}
	}
}

func TestBagRefills(t *testing.T) {
	is := is.New(t)
	bag := NewSeededBag(7)
	is.Equal(bag.Remaining(), PieceCount)
	for i := 0; i < PieceCount; i++ {
		bag.Next()
	}
	is.Equal(bag.Remaining(), 0)
	bag.Next()
	is.Equal(bag.Remaining(), PieceCount-1)
}

func TestSeededBagIsDeterministic(t *testing.T) {
	a := NewSeededBag(99)
	b := NewSeededBag(99)
	for i := 0; i < 50; i++ {
		if pa, pb := a.Next(), b.Next(); pa != pb {
			t.Fatalf("draw %d: %v != %v", i, pa, pb)
		}
	}
}
