// Package search implements the depth-limited placement search. For the
// piece at the head of the lookahead queue it enumerates every (rotation,
// column) candidate, simulates drop + placement + line clear on a private
// board copy, and scores the result as evaluation plus the best achievable
// continuation for the rest of the queue. Repeated sub-boards reached
// through different move orders are memoized within one top-level call.
package search

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/fortyhands/tetrion/board"
	"github.com/fortyhands/tetrion/heuristic"
	"github.com/fortyhands/tetrion/tetromino"
)

// leftMargin extends the column range below 0 to admit rotation states
// whose occupied cells all sit to the right of the anchor.
const leftMargin = 3

// Engine finds the best placement for the current piece. It never mutates
// the board it is handed; all simulation happens on copies.
type Engine struct {
	evaluator heuristic.Evaluator
	threads   int
	useMemo   bool

	lookups atomic.Uint64
	hits    atomic.Uint64
}

// NewEngine creates a single-threaded engine with memoization enabled.
func NewEngine(ev heuristic.Evaluator) *Engine {
	return &Engine{evaluator: ev, threads: 1, useMemo: true}
}

// SetThreads fans the root rotation×column loop out over n goroutines, each
// with its own thread-confined memo. n <= 1 keeps the sequential path.
func (e *Engine) SetThreads(n int) {
	if n < 1 {
		n = 1
	}
	e.threads = n
}

// SetMemo toggles the transposition memo. Disabling it turns the engine
// into the slow reference implementation, which is useful as an oracle.
func (e *Engine) SetMemo(enabled bool) {
	e.useMemo = enabled
}

// MemoStats returns the lookup and hit counts of the last search.
func (e *Engine) MemoStats() (lookups, hits uint64) {
	return e.lookups.Load(), e.hits.Load()
}

// FindBestMove returns the best placement for queue[0] on b, looking ahead
// through the rest of the queue. Ties keep the first candidate in iteration
// order (lowest rotation, then lowest column). If nothing is legal the
// returned move is invalid and carries the sentinel score.
func (e *Engine) FindBestMove(b *board.Board, queue []tetromino.Piece) Move {
	e.lookups.Store(0)
	e.hits.Store(0)
	best := Move{Rotation: -1, Column: -1, Score: SentinelScore}
	if len(queue) == 0 {
		return best
	}
	if e.threads > 1 {
		best = e.rootParallel(b, queue)
	} else {
		best = e.rootSequential(b, queue)
	}
	log.Debug().
		Uint64("memo-lookups", e.lookups.Load()).
		Uint64("memo-hits", e.hits.Load()).
		Str("move", best.String()).
		Msg("search done")
	return best
}

func (e *Engine) rootSequential(b *board.Board, queue []tetromino.Piece) Move {
	// The memo is scoped to this one top-level call; board fingerprints say
	// nothing about depth or the remaining queue, so caching across calls
	// would be wrong far more often than within one.
	memo := e.newMemo()
	best := Move{Rotation: -1, Column: -1, Score: SentinelScore}
	for rot := 0; rot < tetromino.NumRotations; rot++ {
		for col := -leftMargin; col < b.Width(); col++ {
			score, ok := e.scorePlacement(b, queue[0], rot, col, queue, 0, memo)
			if ok && score > best.Score {
				best = Move{Rotation: rot, Column: col, Score: score}
			}
		}
	}
	return best
}

func (e *Engine) rootParallel(b *board.Board, queue []tetromino.Piece) Move {
	type candidate struct{ rot, col int }
	cands := make([]candidate, 0, tetromino.NumRotations*(b.Width()+leftMargin))
	for rot := 0; rot < tetromino.NumRotations; rot++ {
		for col := -leftMargin; col < b.Width(); col++ {
			cands = append(cands, candidate{rot, col})
		}
	}
	scores := make([]float64, len(cands))
	legal := make([]bool, len(cands))

	g := errgroup.Group{}
	for w := 0; w < e.threads; w++ {
		w := w
		g.Go(func() error {
			memo := e.newMemo()
			for i := w; i < len(cands); i += e.threads {
				c := cands[i]
				scores[i], legal[i] = e.scorePlacement(b, queue[0], c.rot, c.col, queue, 0, memo)
			}
			return nil
		})
	}
	// Workers are pure computation and never fail.
	_ = g.Wait()

	// Reduce in enumeration order so tie-breaking matches the sequential
	// path exactly.
	best := Move{Rotation: -1, Column: -1, Score: SentinelScore}
	for i, c := range cands {
		if legal[i] && scores[i] > best.Score {
			best = Move{Rotation: c.rot, Column: c.col, Score: scores[i]}
		}
	}
	return best
}

func (e *Engine) newMemo() map[uint64]float64 {
	if !e.useMemo {
		return nil
	}
	return make(map[uint64]float64)
}

// scorePlacement simulates dropping piece at (rot, col) on a copy of b and
// returns evaluation plus continuation. ok is false when the candidate
// already collides at row 0.
func (e *Engine) scorePlacement(b *board.Board, piece tetromino.Piece, rot, col int,
	queue []tetromino.Piece, depth int, memo map[uint64]float64) (score float64, ok bool) {

	if b.Collides(col, 0, piece, rot) {
		return 0, false
	}
	sim := b.Copy()
	row := sim.DropRow(col, piece, rot)
	sim.Place(col, row, piece, rot)
	lines := sim.ClearLines()
	return e.evaluator.Evaluate(sim, lines) + e.continuation(sim, queue, depth+1, memo), true
}

// continuation returns the best score achievable from b with the pieces at
// queue[depth:], or 0 once the lookahead is exhausted. A board with no legal
// placement yields the sentinel, penalizing the parent without literally
// invalidating it.
func (e *Engine) continuation(b *board.Board, queue []tetromino.Piece, depth int,
	memo map[uint64]float64) float64 {

	if depth >= len(queue) {
		return 0
	}
	var fp uint64
	if memo != nil {
		fp = b.Fingerprint()
		e.lookups.Add(1)
		if v, hit := memo[fp]; hit {
			e.hits.Add(1)
			return v
		}
	}
	best := SentinelScore
	piece := queue[depth]
	for rot := 0; rot < tetromino.NumRotations; rot++ {
		for col := -leftMargin; col < b.Width(); col++ {
			if score, ok := e.scorePlacement(b, piece, rot, col, queue, depth, memo); ok && score > best {
				best = score
			}
		}
	}
	if memo != nil {
		memo[fp] = best
	}
	return best
}
