// Package settings persists player preferences (speed slider, sound) across
// runs using gdata. Without a gdata manager it keeps them in memory only.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the gdata application directory.
	AppName = "critter_catcher"

	settingsObject   = "settings"
	settingsProperty = "player"
)

// Player holds the persisted preferences.
type Player struct {
	Speed float64 `yaml:"speed"`
	Sound bool    `yaml:"sound"`
}

// Default returns the preferences used on first launch.
func Default() Player {
	return Player{Speed: 1, Sound: true}
}

// Store loads and saves Player preferences.
type Store struct {
	data   *gdata.Manager // nil means in-memory only
	player Player
	logger *log.Logger
}

// Open creates a gdata-backed store. A gdata failure degrades to an
// in-memory store and is logged, never returned.
func Open(logger *log.Logger) *Store {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, using memory", "err", err)
		m = nil
	}
	return New(m, logger)
}

// New wraps an existing gdata manager, which may be nil, and loads the
// saved preferences. Load errors fall back to defaults.
func New(m *gdata.Manager, logger *log.Logger) *Store {
	s := &Store{data: m, player: Default(), logger: logger}
	if err := s.Load(); err != nil {
		logger.Warn("cannot load settings, using defaults", "err", err)
	}
	return s
}

// Persistent reports whether preferences survive a restart.
func (s *Store) Persistent() bool { return s.data != nil }

// Load reads saved preferences. Missing data leaves defaults in place.
func (s *Store) Load() error {
	s.player = Default()
	if s.data == nil || !s.data.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	raw, err := s.data.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}

	var p Player
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	if p.Speed <= 0 {
		p.Speed = Default().Speed
	}
	s.player = p
	s.logger.Debug("settings loaded", "speed", p.Speed, "sound", p.Sound)
	return nil
}

// Save writes the current preferences. No-op without a gdata manager.
func (s *Store) Save() error {
	if s.data == nil {
		return nil
	}

	raw, err := yaml.Marshal(s.player)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := s.data.SaveObjectProp(settingsObject, settingsProperty, raw); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Player returns a copy of the current preferences.
func (s *Store) Player() Player { return s.player }

// Speed returns the saved speed factor.
func (s *Store) Speed() float64 { return s.player.Speed }

// SetSpeed updates the speed factor in memory. Call Save to persist.
func (s *Store) SetSpeed(v float64) {
	if v > 0 {
		s.player.Speed = v
	}
}

// Sound reports whether cues are audible.
func (s *Store) Sound() bool { return s.player.Sound }

// SetSound toggles cues in memory. Call Save to persist.
func (s *Store) SetSound(on bool) { s.player.Sound = on }
