// Package sound turns session cues into audible feedback.
// Every player is fire-and-forget: Play never blocks the game loop for long
// and never reports failure.
package sound

import (
	"io"
	"os"
	"sync"
)

// Cue names understood by the players.
const (
	CueCatch         = "catch"
	CueLevelComplete = "level_complete"
)

// Player plays a named cue.
type Player interface {
	Play(name string)
}

// PlayerFunc adapts a function to Player.
type PlayerFunc func(name string)

// Play calls f.
func (f PlayerFunc) Play(name string) { f(name) }

// Muted drops every cue.
type Muted struct{}

// Play does nothing.
func (Muted) Play(string) {}

// SyncWriter serializes writes from several goroutines onto one stream.
// A Bell and the program rendering frames must share the same SyncWriter,
// otherwise a bell can land in the middle of a frame.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSyncWriter wraps w.
func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

// Write hands p to the underlying writer in one piece.
func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// SyncFile is a SyncWriter over a terminal file. It keeps the descriptor
// visible so a program rendering through it can still read the terminal size.
type SyncFile struct {
	*SyncWriter
	f *os.File
}

// NewSyncFile wraps f, usually os.Stdout.
func NewSyncFile(f *os.File) *SyncFile {
	return &SyncFile{SyncWriter: NewSyncWriter(f), f: f}
}

// Read reads from the file.
func (s *SyncFile) Read(p []byte) (int, error) { return s.f.Read(p) }

// Fd returns the file descriptor.
func (s *SyncFile) Fd() uintptr { return s.f.Fd() }

// Close leaves the file open; it belongs to the caller.
func (s *SyncFile) Close() error { return nil }

// Bell rings the terminal bell. Level completion rings twice.
type Bell struct {
	w io.Writer
}

// NewBell returns a bell writing to w, usually a SyncWriter over the
// terminal or SSH session.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play writes BEL characters in a single write. Write errors are ignored.
func (b *Bell) Play(name string) {
	seq := "\a"
	if name == CueLevelComplete {
		seq = "\a\a"
	}
	_, _ = io.WriteString(b.w, seq)
}

// Multi plays each cue on every player in order.
type Multi []Player

// Play fans out to all players.
func (m Multi) Play(name string) {
	for _, p := range m {
		p.Play(name)
	}
}

// Toggle forwards cues only while Enabled returns true.
type Toggle struct {
	Enabled func() bool
	Player  Player
}

// Play forwards the cue when enabled.
func (t Toggle) Play(name string) {
	if t.Enabled != nil && !t.Enabled() {
		return
	}
	t.Player.Play(name)
}
