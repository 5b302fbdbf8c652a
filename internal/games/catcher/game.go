// Package catcher implements the critter catcher games on top of the catch
// engine. Animals cross the screen and the player sweeps them up with a net
// steered by the mouse or the arrow keys.
package catcher

import (
	"fmt"
	"math"

	"github.com/vovakirdan/critter-catcher/internal/catch"
	"github.com/vovakirdan/critter-catcher/internal/config"
	"github.com/vovakirdan/critter-catcher/internal/core"
	"github.com/vovakirdan/critter-catcher/internal/registry"
)

// Game IDs
const (
	ID    = "catcher"
	AllID = "catcher_all"
)

// SpeedDelta is how much one +/- press changes the speed factor.
const SpeedDelta = 0.5

// Visual characters for rendering
const (
	NetChar       = 'o'
	NetClosedChar = '*'
	NetCenterChar = '+'
	HUDLineChar   = '─'
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name clears it.
// Unknown names are rejected and leave the current preset in place.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// LoadConfig resolves the config the games use, applying the preset.
// Load errors fall back to the built-in defaults.
func LoadConfig() config.CatcherConfig {
	cfg, err := config.LoadCatcher(configPath)
	if err != nil {
		cfg = config.DefaultCatcherConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCatcherPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game adapts a catch.Session to the registry.Game contract.
// The world is measured in pixels; each terminal cell covers
// Display.CellWidth x Display.CellHeight of them.
type Game struct {
	id         string
	title      string
	allAnimals bool
	cfg        config.CatcherConfig
	catalog    *catch.Catalog
	sprites    SpriteTable

	session  *catch.Session
	runtime  core.RuntimeConfig
	holdLeft int // Ticks the keyboard keeps the net closed
	closed   bool
	lastPtr  core.Pointer
	events   []core.Event
}

// New creates the classic game: one category per level.
func New() *Game {
	return NewWithConfig(ID, "Critter Catcher", false, LoadConfig())
}

// NewAll creates the all-animals game: every category on the field at once.
func NewAll() *Game {
	return NewWithConfig(AllID, "Critter Catcher: All Animals", true, LoadConfig())
}

// NewWithConfig creates a game from an explicit config.
// An invalid catalog falls back to the built-in animals.
func NewWithConfig(id, title string, allAnimals bool, cfg config.CatcherConfig) *Game {
	cat, err := cfg.Catalog()
	if err != nil {
		cat = catch.DefaultCatalog()
	}
	return &Game{
		id:         id,
		title:      title,
		allAnimals: allAnimals,
		cfg:        cfg,
		catalog:    cat,
		sprites:    DefaultSprites,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh session sized to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.holdLeft = 0
	g.closed = false
	g.lastPtr = core.Pointer{}
	g.events = nil

	w, h := g.fieldPixels(cfg.ScreenW, cfg.ScreenH)
	st := g.cfg.Settings()
	st.AllAnimals = g.allAnimals
	g.session = catch.NewSession(st, g.catalog, cfg.Seed, w, h)
	g.session.SetCueSink(func(e core.Event) {
		g.events = append(g.events, e)
	})
}

// Resize adapts the field to a new terminal size without losing progress.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	w, h := g.fieldPixels(screenW, screenH)
	g.session.Resize(w, h)
}

// fieldPixels converts the playable part of the screen to world pixels.
func (g *Game) fieldPixels(screenW, screenH int) (float64, float64) {
	rows := core.Max(screenH-g.cfg.Display.HUDRows, 1)
	return float64(screenW * g.cfg.Display.CellWidth), float64(rows * g.cfg.Display.CellHeight)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.holdLeft = 0
	}

	g.steer(in)

	switch {
	case in.Has(core.ActionConfirm):
		// Enter never pauses: it starts, continues or resumes.
		if st := g.session.Stats(); !st.Running || st.Paused {
			g.session.TogglePause()
		}
	case in.Has(core.ActionPause):
		g.session.TogglePause()
	}

	if in.Has(core.ActionFaster) {
		g.SetSpeed(g.Speed() + SpeedDelta)
	}
	if in.Has(core.ActionSlower) {
		g.SetSpeed(g.Speed() - SpeedDelta)
	}

	if in.Has(core.ActionCatch) {
		g.holdLeft = g.cfg.Controls.HoldTicks
	}
	g.closed = g.holdLeft > 0 || (in.Pointer.Valid && in.Pointer.Down)

	g.session.Step(catch.Input{Capture: g.closed})
	if g.holdLeft > 0 {
		g.holdLeft--
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// steer moves the net from pointer motion and arrow keys.
func (g *Game) steer(in core.InputFrame) {
	cw := float64(g.cfg.Display.CellWidth)
	ch := float64(g.cfg.Display.CellHeight)

	if in.Pointer.Valid && (in.Pointer.X != g.lastPtr.X || in.Pointer.Y != g.lastPtr.Y || !g.lastPtr.Valid) {
		g.session.MoveNet(core.Vec{
			X: (float64(in.Pointer.X) + 0.5) * cw,
			Y: (float64(in.Pointer.Y) + 0.5) * ch,
		})
	}
	g.lastPtr = in.Pointer

	step := float64(g.cfg.Controls.NetStep)
	net := g.session.Net()
	moved := false
	if in.Has(core.ActionLeft) {
		net.X -= step * cw
		moved = true
	}
	if in.Has(core.ActionRight) {
		net.X += step * cw
		moved = true
	}
	if in.Has(core.ActionUp) {
		net.Y -= step * ch
		moved = true
	}
	if in.Has(core.ActionDown) {
		net.Y += step * ch
		moved = true
	}
	if moved {
		g.session.MoveNet(net)
	}
}

// Speed returns the current speed factor.
func (g *Game) Speed() float64 {
	return g.session.Stats().Speed
}

// SetSpeed changes the speed factor, clamped to the configured range.
func (g *Game) SetSpeed(v float64) {
	g.session.SetSpeed(v)
}

// Stats exposes the session read values.
func (g *Game) Stats() catch.Stats {
	return g.session.Stats()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cw := float64(g.cfg.Display.CellWidth)
	ch := float64(g.cfg.Display.CellHeight)
	fieldRows := core.Max(dst.Height()-g.cfg.Display.HUDRows, 1)

	g.session.Draw(catch.DrawFunc(func(a catch.Actor, cat catch.Category) {
		sp := g.sprites.Lookup(cat.ID, cat.Name)
		glyph := sp.Glyph(a.Dir)
		x := int(math.Floor(a.Pos.X/cw)) - len([]rune(glyph))/2
		y := int(math.Floor(a.Pos.Y / ch))
		if y < 0 || y >= fieldRows {
			return
		}
		dst.DrawTextColored(x, y, glyph, sp.Color)
	}))

	g.drawNet(dst, fieldRows)
	g.drawHUD(dst, fieldRows)

	st := g.session.Stats()
	switch {
	case !st.Running:
		g.drawCenteredMessage(dst, fieldRows, g.title, "Press Enter to start")
	case st.LevelComplete:
		title := fmt.Sprintf("Hooray! You caught all the %s!", st.Completed.Name)
		sub := fmt.Sprintf("Next: %s  |  Press Enter", st.Next.Name)
		if st.AllAnimals {
			title = "Hooray! You caught everyone!"
			sub = "Press Enter to play again"
		}
		g.drawCenteredMessage(dst, fieldRows, title, sub)
	case st.Paused:
		g.drawCenteredMessage(dst, fieldRows, "PAUSED", "Press P to resume")
	}
}

// drawNet draws the capture ring around the net center.
func (g *Game) drawNet(dst *core.Screen, fieldRows int) {
	cw := float64(g.cfg.Display.CellWidth)
	ch := float64(g.cfg.Display.CellHeight)
	net := g.session.Net()
	r := g.session.NetSize() / 2

	ring, color := NetChar, core.ColorWhite
	if g.closed {
		ring, color = NetClosedChar, core.ColorBrightYellow
	}

	// Enough samples to close the ring at any terminal cell aspect.
	samples := core.Max(16, int(2*math.Pi*r/math.Min(cw, ch)))
	for i := 0; i < samples; i++ {
		a := 2 * math.Pi * float64(i) / float64(samples)
		x := int(math.Floor((net.X + r*math.Cos(a)) / cw))
		y := int(math.Floor((net.Y + r*math.Sin(a)) / ch))
		if y < fieldRows {
			dst.SetColored(x, y, ring, color)
		}
	}
	cx, cy := int(math.Floor(net.X/cw)), int(math.Floor(net.Y/ch))
	if cy < fieldRows {
		dst.SetColored(cx, cy, NetCenterChar, color)
	}
}

// drawHUD renders the status rows below the field.
func (g *Game) drawHUD(dst *core.Screen, fieldRows int) {
	if g.cfg.Display.HUDRows <= 0 {
		return
	}
	st := g.session.Stats()

	dst.DrawHLine(0, fieldRows, dst.Width(), HUDLineChar)
	if g.cfg.Display.HUDRows < 2 {
		return
	}

	what := st.Category.Name
	if st.AllAnimals {
		what = "All animals"
	}
	status := fmt.Sprintf(" Lv %d %s  Caught %d/%d  Score %d  Speed x%.1f ",
		st.Level, what, st.Caught, st.Quota, st.Score, st.Speed)
	dst.DrawTextColored(0, fieldRows+1, status, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the field.
func (g *Game) drawCenteredMessage(dst *core.Screen, fieldRows int, title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Min(core.Max(tw, sw)+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := core.Max((fieldRows-boxH)/2, 0)

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.Stats()
	return core.GameState{
		Score:   st.Score,
		Level:   st.Level,
		Running: st.Running,
		Paused:  st.Paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(AllID, func() registry.Game {
		return NewAll()
	})
}
