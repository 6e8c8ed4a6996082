package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the Emacs style bindings of the demo prompt.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down     key.Binding
	WordLeft, WordRight       key.Binding
	Home, End                 key.Binding
	BufferStart, BufferEnd    key.Binding
	SearchForward, SearchBack key.Binding

	Backspace, Delete                key.Binding
	KillLine, DiscardLine            key.Binding
	KillWord, KillPrevWord           key.Binding
	Yank, YankPop, Paste             key.Binding
	TransposeChars, TransposeWords   key.Binding
	Capitalize, Lowercase, Uppercase key.Binding
	Indent, Dedent                   key.Binding

	Enter, Accept, Quit, Help key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+b", "alt+left", "ctrl+left"), key.WithHelp("alt+b", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+f", "alt+right", "ctrl+right"), key.WithHelp("alt+f", "word right")),

		Home:        key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("ctrl+a", "line start")),
		End:         key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("ctrl+e", "line end")),
		BufferStart: key.NewBinding(key.WithKeys("alt+<", "ctrl+home"), key.WithHelp("alt+<", "buffer start")),
		BufferEnd:   key.NewBinding(key.WithKeys("alt+>", "ctrl+end"), key.WithHelp("alt+>", "buffer end")),

		SearchForward: key.NewBinding(key.WithKeys("ctrl+]"), key.WithHelp("ctrl+]", "jump to char")),
		SearchBack:    key.NewBinding(key.WithKeys("ctrl+alt+]", "alt+ctrl+]"), key.WithHelp("ctrl+alt+]", "jump back to char")),

		Backspace:    key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:       key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("ctrl+d", "delete right")),
		KillLine:     key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "kill line")),
		DiscardLine:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "discard line")),
		KillWord:     key.NewBinding(key.WithKeys("alt+d"), key.WithHelp("alt+d", "kill word")),
		KillPrevWord: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "kill previous word")),

		Yank:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "yank")),
		YankPop: key.NewBinding(key.WithKeys("alt+y"), key.WithHelp("alt+y", "yank pop")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		TransposeChars: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "transpose chars")),
		TransposeWords: key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "transpose words")),
		Capitalize:     key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "capitalize word")),
		Lowercase:      key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "lowercase word")),
		Uppercase:      key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "uppercase word")),
		Indent:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Dedent:         key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "dedent")),

		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept / newline")),
		Accept: key.NewBinding(key.WithKeys("alt+enter", "ctrl+s"), key.WithHelp("alt+enter", "accept")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Help:   key.NewBinding(key.WithKeys("f1", "alt+?"), key.WithHelp("f1", "all keys")),
	}
}

// ShortHelp lists the bindings shown under the prompt.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.KillLine, k.KillPrevWord, k.Yank, k.YankPop, k.TransposeChars, k.Capitalize, k.Accept, k.Help, k.Quit}
}

// FullHelp groups every binding for the help popup.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.WordLeft, k.WordRight, k.Home, k.End, k.BufferStart, k.BufferEnd, k.SearchForward, k.SearchBack},
		{k.Backspace, k.Delete, k.KillLine, k.DiscardLine, k.KillWord, k.KillPrevWord, k.Yank, k.YankPop, k.Paste},
		{k.TransposeChars, k.TransposeWords, k.Capitalize, k.Lowercase, k.Uppercase, k.Indent, k.Dedent},
		{k.Enter, k.Accept, k.Help, k.Quit},
	}
}
