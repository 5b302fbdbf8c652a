package gui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critter-catcher/internal/catch"
	"github.com/vovakirdan/critter-catcher/internal/core"
	"github.com/vovakirdan/critter-catcher/internal/settings"
	"github.com/vovakirdan/critter-catcher/internal/sound"
	"github.com/vovakirdan/critter-catcher/internal/storage"
)

// speedDelta is how much one +/- press changes the speed factor.
const speedDelta = 0.5

// controls is the input gathered during one Update.
type controls struct {
	pointer    core.Vec
	hasPointer bool
	capture    bool
	confirm    bool
	pause      bool
	reset      bool
	faster     bool
	slower     bool
	mute       bool
	quit       bool
}

// play drives a session from window controls. It holds no ebiten state.
type play struct {
	gameID  string
	session *catch.Session
	prefs   *settings.Store
	store   *storage.Store
	sound   sound.Player
	logger  *log.Logger
	events  []core.Event
	done    bool
}

func newPlay(gameID string, session *catch.Session, prefs *settings.Store, store *storage.Store, player sound.Player, logger *log.Logger) *play {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &play{
		gameID:  gameID,
		session: session,
		prefs:   prefs,
		store:   store,
		sound:   sound.Toggle{Enabled: prefs.Sound, Player: player},
		logger:  logger,
	}
	session.SetCueSink(func(e core.Event) {
		p.events = append(p.events, e)
	})
	session.SetSpeed(prefs.Speed())
	return p
}

// apply runs one tick. It returns true when the player asked to close.
func (p *play) apply(c controls) bool {
	if c.quit {
		p.finish()
		return true
	}

	if c.reset {
		p.recordScore()
		p.session.Reset()
	}

	st := p.session.Stats()
	switch {
	case c.confirm:
		if !st.Running || st.Paused {
			p.session.TogglePause()
		}
	case c.pause:
		p.session.TogglePause()
	}

	if c.faster {
		p.session.SetSpeed(st.Speed + speedDelta)
	}
	if c.slower {
		p.session.SetSpeed(st.Speed - speedDelta)
	}
	if c.mute {
		p.prefs.SetSound(!p.prefs.Sound())
	}

	p.events = p.events[:0]
	p.session.Step(catch.Input{
		Pointer:    c.pointer,
		HasPointer: c.hasPointer,
		Capture:    c.capture,
	})

	for _, e := range p.events {
		p.sound.Play(string(e))
		if e == core.EventLevelComplete {
			after := p.session.Stats()
			p.logger.Info("level complete", "game", p.gameID, "level", after.Level, "next", after.Next.ID, "score", after.Score)
		}
	}
	return false
}

// recordScore stores the current score. Failures are logged.
func (p *play) recordScore() {
	st := p.session.Stats()
	if p.store == nil || st.Score <= 0 {
		return
	}
	if _, err := p.store.SaveScore(p.gameID, st.Score, st.Level); err != nil {
		p.logger.Warn("cannot save score", "game", p.gameID, "err", err)
		return
	}
	p.logger.Info("score saved", "game", p.gameID, "score", st.Score, "level", st.Level)
}

// finish saves the score and preferences when the window closes.
// Only the first call has an effect.
func (p *play) finish() {
	if p.done {
		return
	}
	p.done = true
	p.recordScore()
	p.prefs.SetSpeed(p.session.Stats().Speed)
	if err := p.prefs.Save(); err != nil {
		p.logger.Warn("cannot save settings", "err", err)
	}
}
