package catcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/critter-catcher/internal/config"
	"github.com/vovakirdan/critter-catcher/internal/core"
	"github.com/vovakirdan/critter-catcher/internal/registry"
)

const (
	screenW = 40
	screenH = 14
)

func newTestGame(t *testing.T, all bool, mutate func(*config.CatcherConfig)) *Game {
	t.Helper()
	cfg := config.DefaultCatcherConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig("test", "Test Catcher", all, cfg)
	g.Reset(core.RuntimeConfig{ScreenW: screenW, ScreenH: screenH, TickRate: 60, Seed: 7})
	return g
}

// greedy makes a net larger than the field and spawns every tick,
// so every actor is always caught.
func greedy(c *config.CatcherConfig) {
	c.Net.Size = 5000
	c.Level.SpawnBase = 1
	c.Level.Quota = 3
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func countEvents(events []core.Event, e core.Event) int {
	n := 0
	for _, ev := range events {
		if ev == e {
			n++
		}
	}
	return n
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{ID, AllID} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestResetState(t *testing.T) {
	g := newTestGame(t, false, nil)
	st := g.State()
	assert.Equal(t, 1, st.Level)
	assert.Zero(t, st.Score)
	assert.False(t, st.Running)
}

func TestEnterStartsAndPauseToggles(t *testing.T) {
	g := newTestGame(t, false, nil)

	g.Step(frame(core.ActionConfirm))
	require.True(t, g.State().Running)
	require.False(t, g.State().Paused)

	g.Step(frame(core.ActionPause))
	assert.True(t, g.State().Paused)

	// Enter resumes rather than pausing again.
	g.Step(frame(core.ActionConfirm))
	assert.False(t, g.State().Paused)
	g.Step(frame(core.ActionConfirm))
	assert.False(t, g.State().Paused)
}

func TestPointerMovesNetToCellCenter(t *testing.T) {
	g := newTestGame(t, false, nil)
	in := core.NewInputFrame()
	in.MovePointer(10, 5)
	g.Step(in)

	assert.Equal(t, core.Vec{X: 10.5 * 8, Y: 5.5 * 16}, g.session.Net())
}

func TestArrowKeysMoveNet(t *testing.T) {
	g := newTestGame(t, false, nil)
	start := g.session.Net()

	g.Step(frame(core.ActionRight))
	assert.Equal(t, start.X+2*8, g.session.Net().X)

	g.Step(frame(core.ActionUp))
	assert.Equal(t, start.Y-2*16, g.session.Net().Y)
}

func TestSpeedKeys(t *testing.T) {
	g := newTestGame(t, false, nil)
	g.Step(frame(core.ActionFaster))
	assert.Equal(t, 1.5, g.Speed())
	g.Step(frame(core.ActionSlower))
	g.Step(frame(core.ActionSlower))
	assert.Equal(t, 0.5, g.Speed())
	g.Step(frame(core.ActionSlower))
	assert.Equal(t, 0.5, g.Speed())
}

func TestCatchEventsAndLevelComplete(t *testing.T) {
	g := newTestGame(t, false, greedy)
	g.Step(frame(core.ActionConfirm))

	var events []core.Event
	for i := 0; i < 10 && !g.Stats().LevelComplete; i++ {
		res := g.Step(frame(core.ActionCatch))
		events = append(events, res.Events...)
	}

	st := g.Stats()
	require.True(t, st.LevelComplete)
	assert.Equal(t, 3, countEvents(events, core.EventCatch))
	assert.Equal(t, 1, countEvents(events, core.EventLevelComplete))
	assert.Equal(t, 3*g.catalog.At(0).Points, st.Score)
	assert.Equal(t, 1, st.Level)
	assert.Equal(t, 3, st.Caught)

	// Banner holds the field still and emits nothing.
	res := g.Step(frame(core.ActionCatch))
	assert.Empty(t, res.Events)
	assert.True(t, res.State.Paused)

	g.Step(frame(core.ActionConfirm))
	assert.False(t, g.State().Paused)
	assert.Equal(t, 2, g.Stats().Level)
	assert.Equal(t, 0, g.Stats().Caught)
}

func TestSpaceHoldsNetForConfiguredTicks(t *testing.T) {
	g := newTestGame(t, false, func(c *config.CatcherConfig) { c.Controls.HoldTicks = 3 })
	g.Step(frame(core.ActionConfirm))

	g.Step(frame(core.ActionCatch))
	assert.True(t, g.closed)
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	assert.True(t, g.closed)
	g.Step(core.NewInputFrame())
	assert.False(t, g.closed)
}

func TestMouseButtonHoldsNet(t *testing.T) {
	g := newTestGame(t, false, nil)
	in := core.NewInputFrame()
	in.MovePointer(3, 3)
	in.Pointer.Down = true
	g.Step(in)
	assert.True(t, g.closed)

	in.Pointer.Down = false
	g.Step(in)
	assert.False(t, g.closed)
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame(t, false, greedy)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionCatch))
	require.NotZero(t, g.State().Score)

	g.Step(frame(core.ActionRestart))
	st := g.State()
	assert.Zero(t, st.Score)
	assert.Equal(t, 1, st.Level)
	assert.False(t, st.Running)
}

func TestAllAnimalsGamePrespawns(t *testing.T) {
	g := newTestGame(t, true, nil)
	g.Step(frame(core.ActionConfirm))
	assert.Equal(t, g.catalog.Len(), g.Stats().Live)
	assert.True(t, g.Stats().AllAnimals)
}

func TestRenderTitleAndHUD(t *testing.T) {
	g := newTestGame(t, false, nil)
	scr := core.NewScreen(screenW, screenH)
	g.Render(scr)

	out := scr.String()
	assert.Contains(t, out, "Press Enter to start")
	assert.Contains(t, scr.Row(screenH-1), "Snails")
	assert.Contains(t, scr.Row(screenH-1), "Caught 0/20")
	assert.Equal(t, strings.Repeat(string(HUDLineChar), screenW), scr.Row(screenH-2))
}

func TestRenderLevelBanner(t *testing.T) {
	g := newTestGame(t, false, greedy)
	g.Step(frame(core.ActionConfirm))
	for i := 0; i < 10 && !g.Stats().LevelComplete; i++ {
		g.Step(frame(core.ActionCatch))
	}
	scr := core.NewScreen(screenW, screenH)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Snails")
	assert.Contains(t, scr.String(), "Next: Koalas")
	assert.Contains(t, scr.Row(screenH-1), "Caught 3/3")
}

func TestRenderDrawsSprites(t *testing.T) {
	g := newTestGame(t, false, func(c *config.CatcherConfig) { c.Level.SpawnBase = 1 })
	g.Step(frame(core.ActionConfirm))
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	scr := core.NewScreen(screenW, screenH)
	g.Render(scr)

	out := scr.String()
	assert.True(t, strings.Contains(out, "_@)") || strings.Contains(out, "(@_"), out)
}

func TestSpriteFallback(t *testing.T) {
	sp := DefaultSprites.Lookup("unicorns", "Unicorns")
	assert.Equal(t, "[U]", sp.Glyph(1))

	sp = DefaultSprites.Lookup("x", "")
	assert.Equal(t, "[?]", sp.Glyph(-1))

	fish := DefaultSprites.Lookup("fish", "Fish")
	assert.Equal(t, "><>", fish.Glyph(1))
	assert.Equal(t, "<><", fish.Glyph(-1))

	koala := DefaultSprites.Lookup("koalas", "Koalas")
	assert.Equal(t, koala.Glyph(1), koala.Glyph(-1))
}

func TestEverySpriteCoversDefaultCatalog(t *testing.T) {
	for _, c := range config.DefaultCatcherConfig().Categories {
		_, ok := DefaultSprites[c.ID]
		assert.True(t, ok, c.ID)
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	t.Cleanup(func() { difficultyPreset = "" })

	require.NoError(t, SetDifficultyPreset("hard"))
	assert.Equal(t, config.DifficultyHard, difficultyPreset)

	assert.Error(t, SetDifficultyPreset("bogus"))
	assert.Equal(t, config.DifficultyHard, difficultyPreset)

	require.NoError(t, SetDifficultyPreset(""))
	assert.Equal(t, config.DifficultyPreset(""), difficultyPreset)
}

func TestLoadConfigKeepsUserSettingsWithoutPreset(t *testing.T) {
	t.Cleanup(func() {
		configPath = ""
		difficultyPreset = ""
	})

	path := filepath.Join(t.TempDir(), "catcher.yaml")
	yaml := "level:\n  exhaustion: hold\nspeed:\n  initial: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	SetConfigPath(path)
	require.NoError(t, SetDifficultyPreset(""))
	cfg := LoadConfig()
	assert.Equal(t, "hold", cfg.Level.Exhaustion)
	assert.Equal(t, 2.0, cfg.Speed.Initial)

	// An explicit preset still applies its speed but not its policy.
	require.NoError(t, SetDifficultyPreset("easy"))
	cfg = LoadConfig()
	assert.Equal(t, "hold", cfg.Level.Exhaustion)
	assert.Equal(t, 0.5, cfg.Speed.Initial)
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, false, greedy)
	g.Step(frame(core.ActionConfirm))
	g.Step(frame(core.ActionCatch))
	score := g.State().Score
	require.NotZero(t, score)

	g.Resize(80, 30)
	w, h := g.session.Bounds()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 28.0*16, h)
	assert.Equal(t, score, g.State().Score)
	assert.True(t, g.State().Running)
}
