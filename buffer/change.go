package buffer

// Listener observes every text mutation of a Buffer.
type Listener interface {
	Inserted(offset int, text string)
	Deleted(offset int, text string, dir Direction)
}

// KillListener is implemented by listeners that need to know which deletions
// belong to a kill command, e.g. to merge consecutive kills.
type KillListener interface {
	StartKill()
	StopKill()
}

// SetListener installs l, replacing any previous listener. A nil l removes
// it.
func (b *Buffer) SetListener(l Listener) {
	b.listener = l
}

func (b *Buffer) startKill() {
	if kl, ok := b.listener.(KillListener); ok {
		kl.StartKill()
	}
}

func (b *Buffer) stopKill() {
	if kl, ok := b.listener.(KillListener); ok {
		kl.StopKill()
	}
}

// insertAt inserts s at idx without moving the cursor and reports whether it
// was appended at the end.
func (b *Buffer) insertAt(idx int, s string) bool {
	appended := idx == len(b.text)
	if s == "" {
		return appended
	}
	b.text = b.text[:idx] + s + b.text[idx:]
	b.version++
	if b.listener != nil {
		b.listener.Inserted(idx, s)
	}
	return appended
}

// drain removes r without moving the cursor and returns the removed text.
func (b *Buffer) drain(r Range, dir Direction) string {
	if r.IsEmpty() {
		return ""
	}
	removed := b.text[r.Start:r.End]
	b.text = b.text[:r.Start] + b.text[r.End:]
	b.version++
	if b.listener != nil {
		b.listener.Deleted(r.Start, removed, dir)
	}
	return removed
}

func (b *Buffer) replaceRange(r Range, s string) {
	if b.text[r.Start:r.End] == s {
		return
	}
	b.drain(r, Forward)
	b.insertAt(r.Start, s)
}
