package main

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/iw2rmb/lineedit/killring"
)

// systemClipboard is the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

var _ killring.Clipboard = systemClipboard{}

// normalizePaste converts CRLF and lone CR line endings to LF.
func normalizePaste(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
