package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.Equal(c.BoardWidth, 10)
	is.Equal(c.BoardHeight, 20)
	is.Equal(c.Lookahead, 3)
	is.Equal(c.SearchThreads, 1)
	is.Equal(c.Debug, false)
}

func TestFlagOverrides(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	err := c.Load([]string{"--board-width", "12", "--lookahead", "2", "--debug"})
	is.NoErr(err)
	is.Equal(c.BoardWidth, 12)
	is.Equal(c.Lookahead, 2)
	is.Equal(c.Debug, true)
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("TETRION_BOARD_HEIGHT", "24")
	c := &Config{}
	err := c.Load(nil)
	is.NoErr(err)
	is.Equal(c.BoardHeight, 24)
}

func TestValidation(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.True(c.Load([]string{"--board-width", "65"}) != nil)
	is.True(c.Load([]string{"--board-width", "3"}) != nil)
	is.True(c.Load([]string{"--lookahead", "0"}) != nil)
}
