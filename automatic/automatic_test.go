package automatic

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/fortyhands/tetrion/config"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func selfPlayConfig() *config.Config {
	cfg := config.DefaultConfig()
	// Keep the games tiny so the worker pool, not the search, dominates.
	cfg.BoardWidth = 6
	cfg.BoardHeight = 8
	cfg.Lookahead = 1
	cfg.MaxPieces = 40
	return cfg
}

func TestStartSelfPlayGames(t *testing.T) {
	is := is.New(t)
	out := filepath.Join(t.TempDir(), "games.csv")

	results, err := StartSelfPlayGames(context.Background(), selfPlayConfig(), 4, 2, out)
	is.NoErr(err)
	is.Equal(len(results), 4)
	for _, r := range results {
		is.True(r.Pieces > 0)
	}

	data, err := os.ReadFile(out)
	is.NoErr(err)
	csvLines := strings.Split(strings.TrimSpace(string(data)), "\n")
	is.Equal(csvLines[0], "pieces,lines,score")
	is.Equal(len(csvLines), 5)
}

func TestSelfPlayWithStore(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	cfg := selfPlayConfig()
	cfg.GameDBPath = filepath.Join(dir, "games.db")

	results, err := StartSelfPlayGames(context.Background(), cfg, 3, 1,
		filepath.Join(dir, "games.csv"))
	is.NoErr(err)
	is.Equal(len(results), 3)

	store, err := NewStore(cfg.GameDBPath)
	is.NoErr(err)
	defer store.Close()
	n, err := store.GameCount()
	is.NoErr(err)
	is.Equal(n, 3)
}

func TestSummarize(t *testing.T) {
	is := is.New(t)
	results := []GameResult{
		{Pieces: 100, Lines: 30, Score: 3000},
		{Pieces: 200, Lines: 70, Score: 7500},
	}
	text := Summarize(results)
	is.True(strings.Contains(text, "games: 2"))
	is.True(strings.Contains(text, "total lines: 100"))
	is.True(strings.Contains(text, "pieces/game: 150.0"))

	is.Equal(Summarize(nil), "no games played\n")
}

func TestSelfPlayBadWeightsReleasesOutputFile(t *testing.T) {
	is := is.New(t)
	cfg := selfPlayConfig()
	cfg.WeightsPath = filepath.Join(t.TempDir(), "missing.yaml")
	out := filepath.Join(t.TempDir(), "games.csv")

	_, err := StartSelfPlayGames(context.Background(), cfg, 1, 1, out)
	is.True(err != nil)
	// The half-written CSV must not be left behind with an open handle.
	is.NoErr(os.Remove(out))
}

func TestGameRunnerBadWeightsPath(t *testing.T) {
	is := is.New(t)
	cfg := selfPlayConfig()
	cfg.WeightsPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := NewGameRunner(nil, cfg)
	is.True(err != nil)
}
