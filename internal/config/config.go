// Package config provides YAML-based game configuration loading and
// difficulty presets for the catcher games.
package config

import (
	"fmt"

	"github.com/vovakirdan/critter-catcher/internal/catch"
)

// CatcherConfig contains all configuration for the catcher games.
type CatcherConfig struct {
	Net        CatcherNet       `yaml:"net"`
	Level      CatcherLevel     `yaml:"level"`
	Speed      CatcherSpeed     `yaml:"speed"`
	Motion     CatcherMotion    `yaml:"motion"`
	Display    CatcherDisplay   `yaml:"display"`
	Controls   CatcherControls  `yaml:"controls"`
	Categories []CategoryConfig `yaml:"categories"`
}

// CatcherNet defines the capture zone.
type CatcherNet struct {
	Size float64 `yaml:"size"` // Diameter in pixels
}

// CatcherLevel defines quota and spawn progression.
type CatcherLevel struct {
	Quota      int     `yaml:"quota"`
	SpawnBase  float64 `yaml:"spawn_base"`
	SpawnStep  float64 `yaml:"spawn_step"`
	Exhaustion string  `yaml:"exhaustion"` // "restart" or "hold"
}

// CatcherSpeed defines the speed factor slider and base multiplier.
type CatcherSpeed struct {
	Base    float64 `yaml:"base"`
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`   // Gain applied when the category list restarts
	Jitter  float64 `yaml:"jitter"` // Per-actor speed spread
}

// CatcherMotion defines wobble and hop phase rates.
type CatcherMotion struct {
	WobbleRate float64 `yaml:"wobble_rate"`
	HopRate    float64 `yaml:"hop_rate"`
}

// CatcherDisplay maps terminal cells to world pixels.
type CatcherDisplay struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
	HUDRows    int `yaml:"hud_rows"`
}

// CatcherControls tunes keyboard play.
type CatcherControls struct {
	NetStep   int `yaml:"net_step"`   // Cells moved per arrow key press
	HoldTicks int `yaml:"hold_ticks"` // Ticks a Space press keeps the net closed
}

// CategoryConfig describes one animal kind.
type CategoryConfig struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Size      float64 `yaml:"size"`
	Speed     float64 `yaml:"speed"`
	Points    int     `yaml:"points"`
	Wobble    float64 `yaml:"wobble,omitempty"`
	Hop       float64 `yaml:"hop,omitempty"`
	HopStride float64 `yaml:"hop_stride,omitempty"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialSpeedForPreset returns the starting speed factor for a preset.
// Returns 0 for presets that keep the configured value.
func InitialSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyNormal:
		return 1.0
	case DifficultyHard:
		return 2.0
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables the speed bump after
// the last category.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. Empty means no preset, which
// leaves the loaded config as it is.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports the first problem that would make the config unplayable.
func (c CatcherConfig) Validate() error {
	if c.Net.Size <= 0 {
		return fmt.Errorf("config: net.size must be positive, got %v", c.Net.Size)
	}
	if c.Level.Quota <= 0 {
		return fmt.Errorf("config: level.quota must be positive, got %d", c.Level.Quota)
	}
	if c.Level.SpawnBase < 0 || c.Level.SpawnStep < 0 {
		return fmt.Errorf("config: spawn rates must not be negative")
	}
	switch catch.Policy(c.Level.Exhaustion) {
	case catch.PolicyRestart, catch.PolicyHold:
	default:
		return fmt.Errorf("config: unknown exhaustion policy %q", c.Level.Exhaustion)
	}
	if c.Speed.Min <= 0 || c.Speed.Max < c.Speed.Min {
		return fmt.Errorf("config: speed range [%v, %v] is invalid", c.Speed.Min, c.Speed.Max)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("config: display cell size must be positive")
	}
	if c.Display.HUDRows < 0 {
		return fmt.Errorf("config: display.hud_rows must not be negative")
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Settings converts the config to engine settings.
func (c CatcherConfig) Settings() catch.Settings {
	return catch.Settings{
		NetSize:      c.Net.Size,
		Quota:        c.Level.Quota,
		SpawnBase:    c.Level.SpawnBase,
		SpawnStep:    c.Level.SpawnStep,
		BaseSpeed:    c.Speed.Base,
		SpeedInitial: c.Speed.Initial,
		SpeedMin:     c.Speed.Min,
		SpeedMax:     c.Speed.Max,
		SpeedStep:    c.Speed.Step,
		Jitter:       c.Speed.Jitter,
		Motion: catch.Motion{
			WobbleRate: c.Motion.WobbleRate,
			HopRate:    c.Motion.HopRate,
		},
		Exhaustion: catch.Policy(c.Level.Exhaustion),
	}
}

// Catalog builds the engine catalog from the categories section.
func (c CatcherConfig) Catalog() (*catch.Catalog, error) {
	cats := make([]catch.Category, 0, len(c.Categories))
	for _, cc := range c.Categories {
		cats = append(cats, catch.Category{
			ID:     cc.ID,
			Name:   cc.Name,
			Size:   cc.Size,
			Speed:  cc.Speed,
			Points: cc.Points,
			Behavior: catch.Behavior{
				Wobble:    cc.Wobble,
				Hop:       cc.Hop,
				HopStride: cc.HopStride,
			},
		})
	}
	return catch.NewCatalog(cats)
}
