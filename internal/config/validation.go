package config

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/lineedit/buffer"
)

// ValidationError reports one invalid setting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid setting found by Validate.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for i := range e {
		msgs = append(msgs, e[i].Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every setting and returns ValidationErrors when any is
// invalid.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.MaxLen < 0 {
		add("max_len", "must be >= 0, got %d", c.MaxLen)
	}
	if c.IndentWidth < 1 || c.IndentWidth > 16 {
		add("indent_width", "must be between 1 and 16, got %d", c.IndentWidth)
	}
	if c.KillRingSize < 1 {
		add("kill_ring_size", "must be >= 1, got %d", c.KillRingSize)
	}
	if _, err := buffer.ParseWord(c.Word); err != nil {
		add("word", "unknown dialect %q (big, emacs, vi)", c.Word)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		add("log.level", "unknown level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		add("log.format", "unknown format %q", c.Log.Format)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
