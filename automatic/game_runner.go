// Package automatic contains the logic for unattended self-play: the engine
// playing full games against gravity, for data collection and weight
// comparison.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/fortyhands/tetrion/config"
	"github.com/fortyhands/tetrion/game"
	"github.com/fortyhands/tetrion/heuristic"
	"github.com/fortyhands/tetrion/tetromino"
)

// GameResult is one finished game's outcome.
type GameResult struct {
	Pieces int
	Lines  int
	Score  int
}

// CSVRow renders the result as a log line.
func (r GameResult) CSVRow() string {
	return fmt.Sprintf("%d,%d,%d\n", r.Pieces, r.Lines, r.Score)
}

// GameRunner plays games one after another on behalf of a worker goroutine.
type GameRunner struct {
	cfg       *config.Config
	evaluator heuristic.Evaluator
	logchan   chan string
}

// NewGameRunner instantiates a runner. The evaluator comes from the config's
// weights file, or the default tuning when none is set.
func NewGameRunner(logchan chan string, cfg *config.Config) (*GameRunner, error) {
	weights := heuristic.DefaultWeights()
	if cfg.WeightsPath != "" {
		var err error
		weights, err = heuristic.LoadWeights(cfg.WeightsPath)
		if err != nil {
			return nil, err
		}
	}
	return &GameRunner{
		cfg:       cfg,
		evaluator: heuristic.NewStandardEvaluator(weights),
		logchan:   logchan,
	}, nil
}

// playFullGame runs one game to game over (or the configured piece cap,
// whichever comes first) with a fresh bag.
func (r *GameRunner) playFullGame() GameResult {
	g := game.NewGame(r.cfg, r.evaluator, tetromino.NewBag())
	for g.Playing() && g.Pieces() < r.cfg.MaxPieces {
		g.PlayBestMove()
	}
	res := GameResult{Pieces: g.Pieces(), Lines: g.Lines(), Score: g.Score()}
	log.Debug().Int("pieces", res.Pieces).Int("lines", res.Lines).
		Int("score", res.Score).Msg("game over")
	if r.logchan != nil {
		r.logchan <- res.CSVRow()
	}
	return res
}
