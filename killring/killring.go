// Package killring implements an Emacs style kill ring fed by buffer change
// notifications.
//
// Install a Ring as the listener of a buffer.Buffer: text removed by kill
// commands lands in the ring, consecutive kills merge into one slot, and
// Yank/YankPop hand the text back for insertion.
package killring

import "github.com/iw2rmb/lineedit/buffer"

// DefaultSize is the number of slots of a ring built with a non-positive
// size.
const DefaultSize = 60

// Clipboard mirrors completed kills to the system clipboard.
//
// Errors must not break editing; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

type action uint8

const (
	actionOther action = iota
	actionKill
	actionYank
)

// Ring is a fixed-size ring of killed text.
type Ring struct {
	slots []string
	size  int
	index int
	last  action

	killing bool
	cb      Clipboard
}

// Option configures a Ring.
type Option func(*Ring)

// WithClipboard writes every completed kill to c.
func WithClipboard(c Clipboard) Option {
	return func(r *Ring) { r.cb = c }
}

// New returns an empty ring holding at most size kills.
func New(size int, opts ...Option) *Ring {
	if size <= 0 {
		size = DefaultSize
	}
	r := &Ring{slots: make([]string, 0, size), size: size}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Len returns the number of filled slots.
func (r *Ring) Len() int { return len(r.slots) }

// Reset ends the current run of kills or yanks. Editors call it before any
// command that is neither a kill nor a yank.
func (r *Ring) Reset() {
	r.last = actionOther
}

// Kill records text. Directly after another kill it merges into the same
// slot: forward kills append, backward kills prepend.
func (r *Ring) Kill(text string, dir buffer.Direction) {
	if text == "" {
		return
	}
	if r.last == actionKill && len(r.slots) > 0 {
		if dir == buffer.Backward {
			r.slots[r.index] = text + r.slots[r.index]
		} else {
			r.slots[r.index] += text
		}
		return
	}
	r.last = actionKill
	if len(r.slots) < r.size {
		r.slots = append(r.slots, text)
		r.index = len(r.slots) - 1
		return
	}
	r.index = (r.index + 1) % r.size
	r.slots[r.index] = text
}

// Yank returns the most recent kill.
func (r *Ring) Yank() (string, bool) {
	if len(r.slots) == 0 {
		return "", false
	}
	r.last = actionYank
	return r.slots[r.index], true
}

// YankPop rotates to the previous kill. It is only valid directly after a
// yank or another yank pop, and returns the size of the text to replace
// together with the replacement.
func (r *Ring) YankPop() (yankSize int, text string, ok bool) {
	if r.last != actionYank || len(r.slots) == 0 {
		return 0, "", false
	}
	yankSize = len(r.slots[r.index])
	if r.index == 0 {
		r.index = len(r.slots) - 1
	} else {
		r.index--
	}
	return yankSize, r.slots[r.index], true
}

// Inserted implements buffer.Listener. Insertions do not touch the ring.
func (r *Ring) Inserted(int, string) {}

// Deleted implements buffer.Listener. Only deletions made inside a kill are
// recorded.
func (r *Ring) Deleted(_ int, text string, dir buffer.Direction) {
	if r.killing {
		r.Kill(text, dir)
	}
}

// StartKill implements buffer.KillListener.
func (r *Ring) StartKill() { r.killing = true }

// StopKill implements buffer.KillListener and publishes the current slot to
// the clipboard.
func (r *Ring) StopKill() {
	r.killing = false
	if r.cb == nil || r.last != actionKill || len(r.slots) == 0 {
		return
	}
	_ = r.cb.WriteText(r.slots[r.index])
}

var (
	_ buffer.Listener     = (*Ring)(nil)
	_ buffer.KillListener = (*Ring)(nil)
)
