// Package game owns the live state of one playout: the board, the lookahead
// queue, the piece supply, and the score. The search engine only ever sees
// read-only views; committing a move back to the board happens here.
package game

import (
	"github.com/rs/zerolog/log"

	"github.com/fortyhands/tetrion/board"
	"github.com/fortyhands/tetrion/config"
	"github.com/fortyhands/tetrion/heuristic"
	"github.com/fortyhands/tetrion/search"
	"github.com/fortyhands/tetrion/tetromino"
)

// lineBonus is the score awarded per placement, indexed by lines cleared.
var lineBonus = [5]int{0, 100, 300, 500, 800}

// Game is a single run from empty board to game over.
type Game struct {
	board  *board.Board
	supply tetromino.Supply
	queue  []tetromino.Piece
	engine *search.Engine

	playing     bool
	score       int
	totalLines  int
	totalPieces int
}

// NewGame sets up a fresh game: empty board, a queue seeded from the
// supply, and an engine built around ev.
func NewGame(cfg *config.Config, ev heuristic.Evaluator, supply tetromino.Supply) *Game {
	g := &Game{
		board:   board.New(cfg.BoardWidth, cfg.BoardHeight),
		supply:  supply,
		queue:   make([]tetromino.Piece, cfg.Lookahead),
		engine:  search.NewEngine(ev),
		playing: true,
	}
	g.engine.SetThreads(cfg.SearchThreads)
	for i := range g.queue {
		g.queue[i] = supply.Next()
	}
	return g
}

// PlayBestMove asks the engine for the best placement of the current piece
// and commits it. It returns false, and flips the game to over, when no
// legal placement exists.
func (g *Game) PlayBestMove() bool {
	if !g.playing {
		return false
	}
	m := g.engine.FindBestMove(g.board, g.queue)
	if !m.Valid() {
		g.playing = false
		log.Debug().Int("pieces", g.totalPieces).Int("score", g.score).
			Msg("no legal move, game over")
		return false
	}
	g.commit(m)
	return true
}

// commit applies a move to the live board: drop, place, clear, score, then
// advance the queue by one freshly drawn piece.
func (g *Game) commit(m search.Move) {
	piece := g.queue[0]
	row := g.board.DropRow(m.Column, piece, m.Rotation)
	g.board.Place(m.Column, row, piece, m.Rotation)
	lines := g.board.ClearLines()

	g.score += lineBonus[lines]
	g.totalLines += lines
	g.totalPieces++

	copy(g.queue, g.queue[1:])
	g.queue[len(g.queue)-1] = g.supply.Next()
}

// Playing reports whether the game is still going.
func (g *Game) Playing() bool { return g.playing }

// Score is the accumulated line-clear bonus total.
func (g *Game) Score() int { return g.score }

// Lines is the total number of lines cleared so far.
func (g *Game) Lines() int { return g.totalLines }

// Pieces is the number of pieces placed so far.
func (g *Game) Pieces() int { return g.totalPieces }

// Board exposes the live board for display. Callers must not mutate it.
func (g *Game) Board() *board.Board { return g.board }

// CurrentPiece is the piece the engine will place next.
func (g *Game) CurrentPiece() tetromino.Piece { return g.queue[0] }

// Queue returns a copy of the lookahead queue.
func (g *Game) Queue() []tetromino.Piece {
	q := make([]tetromino.Piece, len(g.queue))
	copy(q, g.queue)
	return q
}
