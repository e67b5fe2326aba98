// Package config holds runtime configuration for the engine and its
// front-ends, resolved from flags, environment variables (TETRION_*), and
// built-in defaults.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	BoardWidth    int
	BoardHeight   int
	Lookahead     int
	SearchThreads int
	WeightsPath   string
	GameDBPath    string
	WatchDelayMS  int
	MaxPieces     int
	Debug         bool
}

// Load parses args (without the program name) and the environment into c.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("tetrion", pflag.ContinueOnError)
	fs.Int("board-width", 10, "board width in columns (at most 64)")
	fs.Int("board-height", 20, "board height in rows")
	fs.Int("lookahead", 3, "how many upcoming pieces the engine considers")
	fs.Int("search-threads", 1, "goroutines for the root placement loop")
	fs.String("weights-path", "", "YAML file with heuristic weights; empty uses the default tuning")
	fs.String("game-db-path", "", "sqlite file for self-play results; empty disables the store")
	fs.Int("watch-delay-ms", 20, "delay between frames in watch mode")
	fs.Int("max-pieces", 100000, "self-play safety cap on pieces per game")
	fs.Bool("debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix("tetrion")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c.BoardWidth = v.GetInt("board-width")
	c.BoardHeight = v.GetInt("board-height")
	c.Lookahead = v.GetInt("lookahead")
	c.SearchThreads = v.GetInt("search-threads")
	c.WeightsPath = v.GetString("weights-path")
	c.GameDBPath = v.GetString("game-db-path")
	c.WatchDelayMS = v.GetInt("watch-delay-ms")
	c.MaxPieces = v.GetInt("max-pieces")
	c.Debug = v.GetBool("debug")

	if c.BoardWidth < 4 || c.BoardWidth > 64 {
		return errors.New("board-width must be between 4 and 64")
	}
	if c.BoardHeight < 4 {
		return errors.New("board-height must be at least 4")
	}
	if c.Lookahead < 1 {
		return errors.New("lookahead must be at least 1")
	}
	return nil
}

// DefaultConfig returns a config with all defaults resolved.
func DefaultConfig() *Config {
	c := &Config{}
	// Only defaults are in play with no args; Load cannot fail here.
	_ = c.Load(nil)
	return c
}
