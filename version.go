// Package lineedit is a grapheme aware line editing engine for terminal
// prompts. The editing core lives in package buffer and the Emacs style kill
// ring in package killring.
package lineedit

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version (with leading `v`).
func VersionTag() string {
	return "v" + Version()
}
