// Package gui runs the catcher games in a desktop window with ebiten.
// The window gives the net a real mouse or touch pointer and plays
// synthesized tones for the catch cues.
package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/critter-catcher/internal/catch"
	"github.com/vovakirdan/critter-catcher/internal/config"
	"github.com/vovakirdan/critter-catcher/internal/core"
	"github.com/vovakirdan/critter-catcher/internal/games/catcher"
	"github.com/vovakirdan/critter-catcher/internal/registry"
	"github.com/vovakirdan/critter-catcher/internal/settings"
	"github.com/vovakirdan/critter-catcher/internal/sound"
	"github.com/vovakirdan/critter-catcher/internal/storage"
)

// Options configure a window run. Zero values pick defaults.
type Options struct {
	Width    int
	Height   int
	TickRate int
	Seed     int64
	Config   *config.CatcherConfig // nil loads the catcher config
	Store    *storage.Store
	Settings *settings.Store
	Sound    sound.Player // nil plays synthesized tones
	Logger   *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 960
	}
	if o.Height <= 0 {
		o.Height = 640
	}
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Settings == nil {
		o.Settings = settings.New(nil, o.Logger)
	}
	if o.Config == nil {
		cfg := catcher.LoadConfig()
		o.Config = &cfg
	}
	return o
}

// Game is the ebiten.Game for one catcher session.
type Game struct {
	title   string
	play    *play
	session *catch.Session
	closed  bool
	width   int
	height  int
}

// NewGame builds a window game for a catcher game ID.
func NewGame(gameID string, opts Options) (*Game, error) {
	if gameID != catcher.ID && gameID != catcher.AllID {
		return nil, fmt.Errorf("gui: game %q has no window frontend", gameID)
	}
	opts = opts.withDefaults()

	cat, err := opts.Config.Catalog()
	if err != nil {
		return nil, fmt.Errorf("gui: catalog: %w", err)
	}
	st := opts.Config.Settings()
	st.AllAnimals = gameID == catcher.AllID

	fieldH := max(opts.Height-hudHeight, 1)
	session := catch.NewSession(st, cat, opts.Seed, float64(opts.Width), float64(fieldH))

	player := opts.Sound
	if player == nil {
		player = newCuePlayer()
	}

	return &Game{
		title:   registry.Title(gameID),
		play:    newPlay(gameID, session, opts.Settings, opts.Store, player, opts.Logger),
		session: session,
		width:   opts.Width,
		height:  opts.Height,
	}, nil
}

// Update reads the input devices and advances the session by one tick.
func (g *Game) Update() error {
	c := readControls()
	if !g.session.Stats().Running && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.confirm = true
	}
	g.closed = c.capture

	if g.play.apply(c) {
		return ebiten.Termination
	}
	return nil
}

// readControls gathers one tick of mouse, touch and keyboard input.
func readControls() controls {
	var c controls

	x, y := ebiten.CursorPosition()
	c.pointer = core.Vec{X: float64(x), Y: float64(y)}
	c.hasPointer = true
	c.capture = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)

	// A finger on the screen both steers and closes the net.
	if touches := ebiten.AppendTouchIDs(nil); len(touches) > 0 {
		tx, ty := ebiten.TouchPosition(touches[0])
		c.pointer = core.Vec{X: float64(tx), Y: float64(ty)}
		c.capture = true
	}

	c.confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	c.pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	c.reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	c.faster = inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd)
	c.slower = inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract)
	c.mute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	c.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return c
}

// Draw renders the field, the animals, the net and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	st := g.session.Stats()
	_, idx, _ := g.session.Catalog().Lookup(st.Category.ID)
	screen.Fill(Backdrop(idx))

	g.session.Draw(catch.DrawFunc(func(a catch.Actor, cat catch.Category) {
		drawActor(screen, a, cat)
	}))
	drawNet(screen, g.session, g.closed)
	drawHUD(screen, st, !g.play.prefs.Sound())

	if title, sub, ok := bannerText(g.title, st); ok {
		drawBanner(screen, g.height-hudHeight, title, sub)
	}
}

// Layout follows the window size and resizes the field to match.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(float64(outsideWidth), float64(max(outsideHeight-hudHeight, 1)))
	}
	return outsideWidth, outsideHeight
}

// RunWindow opens a window and plays gameID until it is closed.
func RunWindow(gameID string, opts Options) error {
	opts = opts.withDefaults()
	g, err := NewGame(gameID, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	opts.Logger.Info("window opened", "game", gameID, "seed", opts.Seed)
	runErr := ebiten.RunGame(g)
	// Closing the window skips the quit key path.
	g.play.finish()
	if runErr != nil {
		return fmt.Errorf("gui: run: %w", runErr)
	}
	opts.Logger.Info("window closed", "game", gameID)
	return nil
}
