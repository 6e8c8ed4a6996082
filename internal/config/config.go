// Package config loads the settings of the lineedit demo.
package config

import (
	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/killring"
)

// Config is the demo configuration. A zero MaxLen means unbounded lines.
type Config struct {
	MaxLen       int    `toml:"max_len" json:"max_len" yaml:"max_len"`
	IndentWidth  int    `toml:"indent_width" json:"indent_width" yaml:"indent_width"`
	KillRingSize int    `toml:"kill_ring_size" json:"kill_ring_size" yaml:"kill_ring_size"`
	Word         string `toml:"word" json:"word" yaml:"word"`
	Prompt       string `toml:"prompt" json:"prompt" yaml:"prompt"`
	Log          Log    `toml:"log" json:"log" yaml:"log"`
}

// Log configures the diagnostic logger.
type Log struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `toml:"level" json:"level" yaml:"level"`
	// Format is "text" or "json".
	Format string `toml:"format" json:"format" yaml:"format"`
	// File receives the log. Empty discards it.
	File string `toml:"file" json:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		MaxLen:       buffer.DefaultMaxLen,
		IndentWidth:  2,
		KillRingSize: killring.DefaultSize,
		Word:         buffer.AlphanumericOnly.String(),
		Prompt:       "> ",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// BufferOptions returns the capacity policy for new buffers.
func (c *Config) BufferOptions() buffer.Options {
	if c.MaxLen <= 0 {
		return buffer.Unbounded()
	}
	return buffer.Bounded(c.MaxLen)
}

// WordDialect returns the configured word dialect. Call Validate first;
// unknown names fall back to the Emacs dialect.
func (c *Config) WordDialect() buffer.Word {
	w, err := buffer.ParseWord(c.Word)
	if err != nil {
		return buffer.AlphanumericOnly
	}
	return w
}
