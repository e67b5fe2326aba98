package automatic

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/fortyhands/tetrion/config"
)

type job struct{}

// StartSelfPlayGames plays numGames full games across the given number of
// worker goroutines, writing one CSV row per game to outputFilename and, if
// the config names a game db, storing each result there too. It blocks
// until all games finish or ctx is cancelled, then returns the results.
func StartSelfPlayGames(ctx context.Context, cfg *config.Config, numGames int,
	threads int, outputFilename string) ([]GameResult, error) {

	logfile, err := os.Create(outputFilename)
	if err != nil {
		return nil, err
	}

	var store *Store
	if cfg.GameDBPath != "" {
		store, err = NewStore(cfg.GameDBPath)
		if err != nil {
			logfile.Close()
			return nil, err
		}
		defer store.Close()
	}

	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	jobs := make(chan job, 100)
	logChan := make(chan string, 100)
	resultChan := make(chan GameResult, 100)

	// Fail fast on a bad weights file, before any worker starts.
	runners := make([]*GameRunner, threads)
	for i := range runners {
		runners[i], err = NewGameRunner(logChan, cfg)
		if err != nil {
			logfile.Close()
			return nil, err
		}
	}

	var wg sync.WaitGroup
	wg.Add(threads)
	for _, r := range runners {
		r := r
		go func() {
			defer wg.Done()
			for range jobs {
				resultChan <- r.playFullGame()
			}
		}()
	}

	go func() {
	gameLoop:
		for i := 1; i < numGames+1; i++ {
			jobs <- job{}
			select {
			case <-ctx.Done():
				log.Info().Msg("Got stop signal, exiting soon...")
				break gameLoop
			default:
				// do nothing
			}
		}
		close(jobs)
		wg.Wait()
		log.Info().Msg("All games finished.")
		close(logChan)
		close(resultChan)
	}()

	collectDone := make(chan struct{})
	var results []GameResult
	go func() {
		for res := range resultChan {
			results = append(results, res)
			if store != nil {
				if err := store.AddGame(res); err != nil {
					log.Err(err).Msg("storing game result")
				}
			}
		}
		close(collectDone)
	}()

	logfile.WriteString("pieces,lines,score\n")
	for msg := range logChan {
		logfile.WriteString(msg)
	}
	logfile.Close()
	<-collectDone

	return results, nil
}
