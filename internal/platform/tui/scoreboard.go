package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/critter-catcher/internal/registry"
	"github.com/vovakirdan/critter-catcher/internal/storage"
)

// boardSize is how many rounds the scoreboard lists per game.
const boardSize = 50

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextGame, k.PrevGame}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	tabStyle        = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle  = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	summaryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardModel shows past rounds per game, best first.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	stats     *storage.GameStats
	empty     bool
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered game.
// A nil store shows empty boards.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newBoardTable(width, height)
	m.reload()
	return m
}

// newBoardTable sizes the score table to the terminal.
func newBoardTable(width, height int) table.Model {
	whenW := max(width-34, 12)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "When", Width: min(whenW, 20)},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the rounds and totals of the current game.
func (m *ScoreboardModel) reload() {
	m.stats = nil
	var entries []storage.ScoreEntry
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if got, err := m.store.TopScores(id, boardSize); err == nil {
			entries = got
		}
		if st, err := m.store.GetGameStats(id); err == nil {
			m.stats = st
		}
	}

	rows := make([]table.Row, 0, len(entries))
	now := time.Now()
	for i, e := range entries {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Level),
			when(e.CreatedAt, now),
		})
	}
	m.empty = len(rows) == 0
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// when formats a timestamp, shortening it for rounds played today.
func when(t, now time.Time) string {
	y1, m1, d1 := t.Local().Date()
	y2, m2, d2 := now.Local().Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "today " + t.Local().Format("15:04")
	}
	return t.Local().Format("Jan 02 15:04")
}

// shift moves the game tab by delta, wrapping around.
func (m *ScoreboardModel) shift(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.reload()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.shift(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newBoardTable(m.width, m.height)
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerStyled(boardTitleStyle, "SCOREBOARD", m.width))
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(m.games))
	for i, g := range m.games {
		style := tabStyle
		if i == m.current {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(g.Title))
	}
	b.WriteString(lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)))
	b.WriteString("\n\n")

	if m.empty {
		b.WriteString(centerText("Nothing caught yet.", m.width))
		b.WriteString("\n")
		b.WriteString(centerStyled(dimStyle, "Play a round to set a high score!", m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(m.table.View()))
		b.WriteString("\n")
		if m.stats != nil {
			summary := fmt.Sprintf("Best %d  |  Rounds %d  |  Average %.0f  |  Furthest level %d",
				m.stats.HighScore, m.stats.GamesCount, m.stats.AvgScore, m.stats.BestLevel)
			b.WriteString(centerStyled(summaryStyle, summary, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(dimStyle, m.help.View(m.keys), m.width))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the player leaves.
// Returns true if the player went back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
