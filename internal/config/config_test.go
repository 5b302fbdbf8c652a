package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/critter-catcher/internal/catch"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parseCatcher(defaultCatcherYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatcherConfig(), cfg)
}

func TestDefaultConfigConvertsToEngineDefaults(t *testing.T) {
	cfg := DefaultCatcherConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, catch.DefaultSettings(), cfg.Settings())

	cat, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, catch.DefaultCatalog(), cat)
}

func TestLoadCatcherCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catcher.yaml")
	data := []byte("net:\n  size: 120\nlevel:\n  quota: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadCatcher(path)
	require.NoError(t, err)
	assert.Equal(t, 120.0, cfg.Net.Size)
	assert.Equal(t, 5, cfg.Level.Quota)
	// Untouched sections keep defaults.
	assert.Equal(t, 0.02, cfg.Level.SpawnBase)
	assert.Len(t, cfg.Categories, 20)
}

func TestLoadCatcherCustomPathErrors(t *testing.T) {
	_, err := LoadCatcher(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("level:\n  quota: 0\n"), 0o644))
	_, err = LoadCatcher(bad)
	assert.Error(t, err)
}

func TestLoadCatcherFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadCatcher("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCatcherConfig(), cfg)
}

func TestLoadCatcherUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".catcher", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catcher.yaml"), []byte("net:\n  size: 60\n"), 0o644))

	cfg, err := LoadCatcher("")
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.Net.Size)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatcherConfig)
	}{
		{"zero net", func(c *CatcherConfig) { c.Net.Size = 0 }},
		{"zero quota", func(c *CatcherConfig) { c.Level.Quota = 0 }},
		{"negative spawn", func(c *CatcherConfig) { c.Level.SpawnBase = -1 }},
		{"unknown policy", func(c *CatcherConfig) { c.Level.Exhaustion = "loop" }},
		{"inverted speed range", func(c *CatcherConfig) { c.Speed.Max = 0.1 }},
		{"zero cell", func(c *CatcherConfig) { c.Display.CellWidth = 0 }},
		{"no categories", func(c *CatcherConfig) { c.Categories = nil }},
		{"duplicate category", func(c *CatcherConfig) { c.Categories[1].ID = c.Categories[0].ID }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCatcherConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyCatcherPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		initial    float64
		exhaustion string
	}{
		{DifficultyEasy, 0.5, "restart"},
		{DifficultyNormal, 1.0, "restart"},
		{DifficultyHard, 2.0, "restart"},
		{DifficultyFixed, 1.0, "hold"},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultCatcherConfig()
			ApplyCatcherPreset(&cfg, tt.preset)
			assert.Equal(t, tt.initial, cfg.Speed.Initial)
			assert.Equal(t, tt.exhaustion, cfg.Level.Exhaustion)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestApplyCatcherPresetKeepsHoldPolicy(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultCatcherConfig()
		cfg.Level.Exhaustion = string(catch.PolicyHold)
		ApplyCatcherPreset(&cfg, preset)
		assert.Equal(t, string(catch.PolicyHold), cfg.Level.Exhaustion, preset)
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyPreset(""), p)

	p, err = ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("insane")
	assert.Error(t, err)
}
