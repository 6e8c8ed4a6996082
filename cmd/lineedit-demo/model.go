package main

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/lineedit/buffer"
	"github.com/iw2rmb/lineedit/internal/config"
	"github.com/iw2rmb/lineedit/internal/grapheme"
	"github.com/iw2rmb/lineedit/killring"
)

// configMsg carries a reloaded configuration into the program.
type configMsg struct{ cfg *config.Config }

// reloadErrMsg reports a configuration file that failed to reload.
type reloadErrMsg struct{ err error }

type searchMode uint8

const (
	searchNone searchMode = iota
	searchForward
	searchBackward
)

type styles struct {
	prompt lipgloss.Style
	cursor lipgloss.Style
	help   lipgloss.Style
	status lipgloss.Style
	popup  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		prompt: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		cursor: r.NewStyle().Reverse(true),
		help:   r.NewStyle().Faint(true),
		status: r.NewStyle().Foreground(lipgloss.Color("9")),
		popup:  r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

type model struct {
	cfg       *config.Config
	keys      KeyMap
	buf       *buffer.Buffer
	ring      *killring.Ring
	clip      killring.Clipboard
	log       *slog.Logger
	styles    styles
	multiline bool

	// viewport scrolls the prompt body once the terminal size is known.
	viewport viewport.Model
	showHelp bool

	search   searchMode
	yanked   yankSpan
	status   string
	accepted bool
}

// yankSpan locates the text inserted by the last yank.
type yankSpan struct {
	at int
	n  int
}

func newModel(cfg *config.Config, text string, multiline bool, ring *killring.Ring, clip killring.Clipboard, logger *slog.Logger, r *lipgloss.Renderer) model {
	buf := buffer.New(text, cfg.BufferOptions())
	buf.MoveBufferEnd()
	buf.SetListener(ring)
	return model{
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		buf:       buf,
		ring:      ring,
		clip:      clip,
		log:       logger,
		styles:    newStyles(r),
		multiline: multiline,
	}
}

// command is an editing action bound to a key.
type command struct {
	binding key.Binding
	name    string
	// kill commands keep the kill ring sequence going; any other command
	// ends it.
	kill bool
	run  func(m *model) error
}

func moveCmd(b key.Binding, name string, fn func(*buffer.Buffer) bool) command {
	return command{binding: b, name: name, run: func(m *model) error {
		fn(m.buf)
		return nil
	}}
}

func killCmd(b key.Binding, name string, fn func(*buffer.Buffer) bool) command {
	return command{binding: b, name: name, kill: true, run: func(m *model) error {
		fn(m.buf)
		return nil
	}}
}

func (m *model) commands() []command {
	k := m.keys
	w := m.cfg.WordDialect()
	width := m.cfg.IndentWidth
	return []command{
		moveCmd(k.Left, "backward-char", func(b *buffer.Buffer) bool { return b.MoveBackward(1) }),
		moveCmd(k.Right, "forward-char", func(b *buffer.Buffer) bool { return b.MoveForward(1) }),
		moveCmd(k.Up, "previous-line", func(b *buffer.Buffer) bool { return b.MoveToLineUp(1) }),
		moveCmd(k.Down, "next-line", func(b *buffer.Buffer) bool { return b.MoveToLineDown(1) }),
		moveCmd(k.WordLeft, "backward-word", func(b *buffer.Buffer) bool { return b.MoveToPrevWord(w, 1) }),
		moveCmd(k.WordRight, "forward-word", func(b *buffer.Buffer) bool { return b.MoveToNextWord(buffer.AfterWordEnd, w, 1) }),
		moveCmd(k.Home, "beginning-of-line", (*buffer.Buffer).MoveHome),
		moveCmd(k.End, "end-of-line", (*buffer.Buffer).MoveEnd),
		moveCmd(k.BufferStart, "beginning-of-buffer", (*buffer.Buffer).MoveBufferStart),
		moveCmd(k.BufferEnd, "end-of-buffer", (*buffer.Buffer).MoveBufferEnd),

		moveCmd(k.Backspace, "backward-delete-char", func(b *buffer.Buffer) bool { return b.Backspace(1) }),
		moveCmd(k.Delete, "delete-char", func(b *buffer.Buffer) bool {
			_, ok := b.Delete(1)
			return ok
		}),
		killCmd(k.KillLine, "kill-line", (*buffer.Buffer).KillLine),
		killCmd(k.DiscardLine, "unix-line-discard", (*buffer.Buffer).DiscardLine),
		killCmd(k.KillWord, "kill-word", func(b *buffer.Buffer) bool { return b.DeleteWord(buffer.AfterWordEnd, w, 1) }),
		killCmd(k.KillPrevWord, "backward-kill-word", func(b *buffer.Buffer) bool { return b.DeletePrevWord(w, 1) }),

		{binding: k.Yank, name: "yank", kill: true, run: (*model).yank},
		{binding: k.YankPop, name: "yank-pop", kill: true, run: (*model).yankPop},
		{binding: k.Paste, name: "paste", run: (*model).paste},

		moveCmd(k.TransposeChars, "transpose-chars", (*buffer.Buffer).TransposeChars),
		moveCmd(k.TransposeWords, "transpose-words", func(b *buffer.Buffer) bool { return b.TransposeWords(1) }),
		{binding: k.Capitalize, name: "capitalize-word", run: editWord(buffer.Capitalize)},
		{binding: k.Lowercase, name: "downcase-word", run: editWord(buffer.Lowercase)},
		{binding: k.Uppercase, name: "upcase-word", run: editWord(buffer.Uppercase)},
		{binding: k.Indent, name: "indent", run: func(m *model) error {
			return m.buf.Indent(buffer.WholeLine, width, false)
		}},
		{binding: k.Dedent, name: "dedent", run: func(m *model) error {
			return m.buf.Indent(buffer.WholeLine, width, true)
		}},

		{binding: k.SearchForward, name: "character-search", run: func(m *model) error {
			m.search = searchForward
			return nil
		}},
		{binding: k.SearchBack, name: "character-search-backward", run: func(m *model) error {
			m.search = searchBackward
			return nil
		}},
	}
}

func editWord(a buffer.WordAction) func(*model) error {
	return func(m *model) error {
		_, err := m.buf.EditWord(a)
		return err
	}
}

func (m *model) yank() error {
	text, ok := m.ring.Yank()
	if !ok {
		return nil
	}
	at := m.buf.Pos()
	if _, err := m.buf.InsertText(text, 1); err != nil {
		m.ring.Reset()
		return err
	}
	m.yanked = yankSpan{at: at, n: len(text)}
	return nil
}

// yankPop replaces the text of the previous yank. The replaced range is
// widened to grapheme boundaries because yanked text may have merged with its
// neighbours; those neighbour bytes are written back unchanged.
func (m *model) yankPop() error {
	_, text, ok := m.ring.YankPop()
	if !ok {
		return nil
	}
	cur := m.buf.Text()
	start := grapheme.Floor(cur, m.yanked.at)
	end := m.buf.Pos()
	repl := cur[start:m.yanked.at] + text + cur[m.yanked.at+m.yanked.n:end]
	if _, err := m.buf.YankPop(end-start, repl); err != nil {
		m.ring.Reset()
		return err
	}
	m.yanked.n = len(text)
	return nil
}

func (m *model) paste() error {
	if m.clip == nil {
		return nil
	}
	text, err := m.clip.ReadText()
	if err != nil {
		m.log.Debug("clipboard read failed", "err", err)
		return nil
	}
	return m.insert(text)
}

// insert types text at the cursor. Single line prompts turn line breaks into
// spaces.
func (m *model) insert(text string) error {
	text = normalizePaste(text)
	if !m.multiline {
		text = strings.ReplaceAll(text, "\n", " ")
	}
	_, err := m.buf.InsertText(text, 1)
	return err
}

func (m model) Init() tea.Cmd { return nil }

// footerLines is the height below the prompt body: status and help line.
const footerLines = 2

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-footerLines)
	case configMsg:
		m.reconfigure(msg.cfg)
	case reloadErrMsg:
		m.log.Warn("config reload failed", "err", msg.err)
		m.status = "config: " + msg.err.Error()
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	}
	m.follow()
	return m, cmd
}

// follow refreshes the viewport and scrolls it to keep the cursor line
// visible.
func (m *model) follow() {
	if m.viewport.Height <= 0 {
		return
	}
	m.viewport.SetContent(m.renderBody())
	row := strings.Count(m.buf.Text()[:m.buf.Pos()], "\n")
	h := m.viewport.Height
	switch {
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row >= m.viewport.YOffset+h:
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.status = ""

	if m.showHelp {
		m.showHelp = false
		if !key.Matches(msg, m.keys.Quit) {
			return m, nil
		}
	}

	if m.search != searchNone {
		mode := m.search
		m.search = searchNone
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			cs := buffer.ForwardTo(msg.Runes[0])
			if mode == searchBackward {
				cs = buffer.BackwardTo(msg.Runes[0])
			}
			m.ring.Reset()
			m.buf.MoveToChar(cs, 1)
			m.log.Debug("command", "name", "char-search", "char", string(cs.Char), "pos", m.buf.Pos())
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Accept):
		m.accepted = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Enter):
		if !m.multiline {
			m.accepted = true
			return m, tea.Quit
		}
		m.exec(command{name: "newline", run: func(m *model) error {
			_, err := m.buf.Insert('\n', 1)
			return err
		}})
		return m, nil
	}

	for _, c := range m.commands() {
		if key.Matches(msg, c.binding) {
			m.exec(c)
			return m, nil
		}
	}

	if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && !msg.Alt {
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		m.exec(command{name: "self-insert", run: func(m *model) error { return m.insert(text) }})
	}
	return m, nil
}

func (m *model) exec(c command) {
	if !c.kill {
		m.ring.Reset()
	}
	err := c.run(m)
	switch {
	case errors.Is(err, buffer.ErrCapacityExceeded):
		m.log.Warn("line is full", "command", c.name, "max_len", m.buf.Options().MaxLen)
		m.status = "line is full"
	case err != nil:
		m.log.Error("command failed", "command", c.name, "err", err)
		m.status = err.Error()
	default:
		m.log.Debug("command", "name", c.name, "pos", m.buf.Pos(), "len", m.buf.Len())
	}
}

// reconfigure applies a reloaded configuration. A new capacity rebuilds the
// buffer, truncating its text if needed.
func (m *model) reconfigure(cfg *config.Config) {
	prev := m.cfg
	m.cfg = cfg
	m.ring.Reset()
	if cfg.BufferOptions() != prev.BufferOptions() {
		pos := m.buf.Pos()
		buf := buffer.New(m.buf.Text(), cfg.BufferOptions())
		if pos > buf.Len() {
			pos = buf.Len()
		}
		buf.SetPos(grapheme.Floor(buf.Text(), pos))
		buf.SetListener(m.ring)
		m.buf = buf
	}
	m.log.Info("config reloaded", "word", cfg.Word, "max_len", cfg.MaxLen, "indent_width", cfg.IndentWidth)
}

// renderBody renders the prompt and the text with the cursor cell.
func (m model) renderBody() string {
	text := m.buf.Text()
	pos := m.buf.Pos()
	before, after := text[:pos], text[pos:]

	cell := " "
	if g, ok := m.buf.GraphemeAtCursor(); ok && g != "\n" && g != "\r\n" {
		cell = g
		after = after[len(g):]
	}
	body := strings.ReplaceAll(before, "\r\n", "\n") +
		m.styles.cursor.Render(cell) +
		strings.ReplaceAll(after, "\r\n", "\n")

	pad := strings.Repeat(" ", grapheme.Width(m.cfg.Prompt))
	var sb strings.Builder
	for i, line := range strings.Split(body, "\n") {
		if i == 0 {
			sb.WriteString(m.styles.prompt.Render(m.cfg.Prompt))
		} else {
			sb.WriteByte('\n')
			sb.WriteString(pad)
		}
		sb.WriteString(line)
	}
	return sb.String()
}

func (m model) View() string {
	var sb strings.Builder
	if m.viewport.Height > 0 {
		sb.WriteString(m.viewport.View())
	} else {
		sb.WriteString(m.renderBody())
	}
	sb.WriteByte('\n')

	if m.status != "" {
		sb.WriteString(m.styles.status.Render(m.status))
		sb.WriteByte('\n')
	}
	sb.WriteString(m.styles.help.Render(m.helpLine()))

	if m.showHelp {
		return m.helpOverlay(sb.String())
	}
	return sb.String()
}

// helpOverlay draws the full key map in a box over bg.
func (m model) helpOverlay(bg string) string {
	const x, y = 2, 1
	popup := m.styles.popup.Render(m.fullHelp())

	// Grow the background so the popup is not clipped.
	lines := strings.Split(bg, "\n")
	for len(lines) < lipgloss.Height(popup)+y {
		lines = append(lines, "")
	}
	width := lipgloss.Width(popup) + x
	for i, l := range lines {
		if w := lipgloss.Width(l); w < width {
			lines[i] = l + strings.Repeat(" ", width-w)
		}
	}
	return overlay.Composite(popup, strings.Join(lines, "\n"), overlay.Left, overlay.Top, x, y)
}

func (m model) fullHelp() string {
	groups := m.keys.FullHelp()
	keyWidth := 0
	for _, g := range groups {
		for _, b := range g {
			keyWidth = max(keyWidth, lipgloss.Width(b.Help().Key))
		}
	}
	var rows []string
	for i, g := range groups {
		if i > 0 {
			rows = append(rows, "")
		}
		for _, b := range g {
			h := b.Help()
			rows = append(rows, h.Key+strings.Repeat(" ", keyWidth-lipgloss.Width(h.Key)+2)+h.Desc)
		}
	}
	return strings.Join(rows, "\n")
}

func (m model) helpLine() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
