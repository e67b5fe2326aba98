package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fortyhands/tetrion/automatic"
	"github.com/fortyhands/tetrion/config"
	"github.com/fortyhands/tetrion/game"
	"github.com/fortyhands/tetrion/heuristic"
	"github.com/fortyhands/tetrion/tetromino"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "new - start a fresh game\n")
	io.WriteString(w, "show - print the board and score\n")
	io.WriteString(w, "step [n] - play the next n best moves (default 1)\n")
	io.WriteString(w, "watch [ms] - play to game over, redrawing every ms milliseconds\n")
	io.WriteString(w, "autoplay <n> [threads] - self-play n games and print a summary\n")
	io.WriteString(w, "weights [path] - load heuristic weights from a YAML file; no path restores the defaults\n")
	io.WriteString(w, "set <option> <value> - change lookahead, search-threads, watch-delay-ms,\n")
	io.WriteString(w, "    max-pieces, board-width, or board-height\n")
	io.WriteString(w, "help - this text\n")
	io.WriteString(w, "exit - leave the shell\n")
}

type shell struct {
	cfg     *config.Config
	weights heuristic.Weights
	game    *game.Game
}

func (s *shell) newGame() {
	s.game = game.NewGame(s.cfg, heuristic.NewStandardEvaluator(s.weights),
		tetromino.NewBag())
}

func (s *shell) show(w io.Writer) {
	fmt.Fprint(w, s.game.Board().ToDisplayText())
	fmt.Fprintf(w, "Score: %d  Lines: %d  Pieces: %d  Next: %v\n",
		s.game.Score(), s.game.Lines(), s.game.Pieces(), s.game.Queue())
	if !s.game.Playing() {
		fmt.Fprintln(w, "========== GAME OVER ==========")
	}
}

func (s *shell) step(w io.Writer, n int) {
	for i := 0; i < n && s.game.Playing(); i++ {
		s.game.PlayBestMove()
	}
	s.show(w)
}

func (s *shell) watch(w io.Writer, delay time.Duration) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT)
	defer stop()
	for s.game.Playing() {
		if ctx.Err() != nil {
			fmt.Fprintln(w, "stopped")
			return
		}
		s.game.PlayBestMove()
		fmt.Fprint(w, "\033[H\033[2J")
		s.show(w)
		time.Sleep(delay)
	}
}

func (s *shell) autoplay(w io.Writer, games, threads int) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT)
	defer stop()
	out := fmt.Sprintf("/tmp/tetrion-games-%d.csv", time.Now().Unix())
	results, err := automatic.StartSelfPlayGames(ctx, s.cfg, games, threads, out)
	if err != nil {
		fmt.Fprintf(w, "autoplay failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "per-game rows written to %s\n", out)
	fmt.Fprint(w, automatic.Summarize(results))
}

// set changes one config option on the live shell. Options that shape the
// game itself (board dims, lookahead, threads) restart it.
func (s *shell) set(w io.Writer, option, value string) {
	n, err := strconv.Atoi(value)
	if err != nil {
		fmt.Fprintf(w, "bad value %q for %s\n", value, option)
		return
	}
	restart := true
	switch option {
	case "lookahead":
		if n < 1 {
			fmt.Fprintln(w, "lookahead must be at least 1")
			return
		}
		s.cfg.Lookahead = n
	case "search-threads":
		if n < 1 {
			fmt.Fprintln(w, "search-threads must be at least 1")
			return
		}
		s.cfg.SearchThreads = n
	case "board-width":
		if n < 4 || n > 64 {
			fmt.Fprintln(w, "board-width must be between 4 and 64")
			return
		}
		s.cfg.BoardWidth = n
	case "board-height":
		if n < 4 {
			fmt.Fprintln(w, "board-height must be at least 4")
			return
		}
		s.cfg.BoardHeight = n
	case "watch-delay-ms":
		if n < 0 {
			fmt.Fprintln(w, "watch-delay-ms cannot be negative")
			return
		}
		s.cfg.WatchDelayMS = n
		restart = false
	case "max-pieces":
		if n < 1 {
			fmt.Fprintln(w, "max-pieces must be at least 1")
			return
		}
		s.cfg.MaxPieces = n
		restart = false
	default:
		fmt.Fprintf(w, "unknown option %q; try help\n", option)
		return
	}
	if restart {
		s.newGame()
		fmt.Fprintf(w, "%s set to %d, game restarted\n", option, n)
		return
	}
	fmt.Fprintf(w, "%s set to %d\n", option, n)
}

func (s *shell) execute(w io.Writer, fields []string) {
	switch fields[0] {
	case "new":
		s.newGame()
		s.show(w)
	case "show":
		s.show(w)
	case "step":
		n := 1
		if len(fields) > 1 {
			var err error
			if n, err = strconv.Atoi(fields[1]); err != nil || n < 1 {
				fmt.Fprintln(w, "step wants a positive count")
				return
			}
		}
		s.step(w, n)
	case "watch":
		delay := time.Duration(s.cfg.WatchDelayMS) * time.Millisecond
		if len(fields) > 1 {
			ms, err := strconv.Atoi(fields[1])
			if err != nil || ms < 0 {
				fmt.Fprintln(w, "watch wants a delay in milliseconds")
				return
			}
			delay = time.Duration(ms) * time.Millisecond
		}
		s.watch(w, delay)
	case "autoplay":
		if len(fields) < 2 {
			fmt.Fprintln(w, "autoplay wants a number of games")
			return
		}
		games, err := strconv.Atoi(fields[1])
		if err != nil || games < 1 {
			fmt.Fprintln(w, "autoplay wants a positive number of games")
			return
		}
		threads := 1
		if len(fields) > 2 {
			if threads, err = strconv.Atoi(fields[2]); err != nil || threads < 1 {
				fmt.Fprintln(w, "bad thread count")
				return
			}
		}
		s.autoplay(w, games, threads)
	case "set":
		if len(fields) < 3 {
			fmt.Fprintln(w, "set wants an option and a value")
			return
		}
		s.set(w, fields[1], fields[2])
	case "weights":
		if len(fields) < 2 {
			s.weights = heuristic.DefaultWeights()
			s.newGame()
			fmt.Fprintln(w, "default weights restored, game restarted")
			return
		}
		weights, err := heuristic.LoadWeights(fields[1])
		if err != nil {
			fmt.Fprintf(w, "loading weights: %v\n", err)
			return
		}
		s.weights = weights
		s.newGame()
		fmt.Fprintln(w, "weights loaded, game restarted")
	case "help":
		usage(w)
	default:
		fmt.Fprintf(w, "unknown command %q; try help\n", fields[0])
	}
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	weights := heuristic.DefaultWeights()
	if cfg.WeightsPath != "" {
		var err error
		if weights, err = heuristic.LoadWeights(cfg.WeightsPath); err != nil {
			log.Fatal().Err(err).Msg("loading weights")
		}
	}

	s := &shell{cfg: cfg, weights: weights}
	s.newGame()

	l, err := readline.NewEx(&readline.Config{
		Prompt:      "\033[31mtetrion>\033[0m ",
		HistoryFile: "/tmp/tetrion-readline.tmp",
		EOFPrompt:   "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "bye" || line == "exit" || line == "quit" {
			break
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			fmt.Fprintf(l.Stderr(), "bad command line: %v\n", err)
			continue
		}
		s.execute(l.Stdout(), fields)
	}
}
