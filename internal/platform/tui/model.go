package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critter-catcher/internal/core"
	"github.com/vovakirdan/critter-catcher/internal/registry"
	"github.com/vovakirdan/critter-catcher/internal/settings"
	"github.com/vovakirdan/critter-catcher/internal/sound"
	"github.com/vovakirdan/critter-catcher/internal/storage"
)

// helpRows is the space kept below the game for the key help bar.
const helpRows = 1

// Options are the collaborators a game model uses. Every field may be nil.
type Options struct {
	Store    *storage.Store
	Settings *settings.Store
	Sound    sound.Player
	Logger   *log.Logger

	// Output is where Run renders. Pass the SyncWriter the bell writes to.
	// Nil means stdout.
	Output io.Writer

	// AllowBack lets Esc leave the game for a surrounding menu.
	AllowBack bool
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Sound == nil {
		o.Sound = sound.Muted{}
	}
	if o.Settings == nil {
		o.Settings = settings.New(nil, o.Logger)
	}
	o.Sound = sound.Toggle{Enabled: o.Settings.Sound, Player: o.Sound}
	return o
}

// resizer is implemented by games that can adapt to a new size in place.
type resizer interface {
	Resize(screenW, screenH int)
}

// speeder is implemented by games with a speed slider.
type speeder interface {
	Speed() float64
	SetSpeed(v float64)
}

// Model is the Bubble Tea model for running a catcher game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg describes the whole terminal; the game gets all rows but the help bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	width := cfg.ScreenW
	cfg.ScreenH = core.Max(cfg.ScreenH-helpRows, 1)

	h := help.New()
	h.Width = width

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts.withDefaults(),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		width:      width,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if sp, ok := m.game.(speeder); ok {
		sp.SetSpeed(m.opts.Settings.Speed())
	}
	m.opts.Logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Mute):
		m.opts.Settings.SetSound(!m.opts.Settings.Sound())
		return m, nil
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.opts.AllowBack {
		m.finish()
		m.backToMenu = true
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = core.Max(msg.Height-helpRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.recordScore()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.opts.Sound.Play(string(e))
		if e == core.EventLevelComplete {
			m.opts.Logger.Info("level complete",
				"game", m.game.ID(),
				"level", m.gameState.Level,
				"score", m.gameState.Score,
			)
		}
	}

	// Clear input for next frame; the pointer survives
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordScore stores the current score. Best effort: failures are logged.
func (m Model) recordScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Level); err != nil {
		m.opts.Logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
		return
	}
	m.opts.Logger.Info("score saved", "game", m.game.ID(), "score", m.gameState.Score, "level", m.gameState.Level)
}

// finish saves the score and preferences when leaving the game.
func (m Model) finish() {
	m.gameState = m.game.State()
	m.recordScore()
	if sp, ok := m.game.(speeder); ok {
		m.opts.Settings.SetSpeed(sp.Speed())
	}
	if err := m.opts.Settings.Save(); err != nil {
		m.opts.Logger.Warn("cannot save settings", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".catcher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	bar := m.help.View(m.keys.Keys)
	if !m.opts.Settings.Sound() {
		bar = "[muted] " + bar
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(bar)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
// Returns true if the player asked to go back to a menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	progOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // The net follows the mouse without a button held
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	p := tea.NewProgram(model, progOpts...)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
