package settings

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
}

func openManager(t *testing.T) *gdata.Manager {
	t.Helper()
	m, err := gdata.Open(gdata.Config{AppName: "catcher_settings_test"})
	require.NoError(t, err)
	return m
}

func TestDegradedStoreKeepsValuesInMemory(t *testing.T) {
	s := New(nil, quietLogger())

	assert.False(t, s.Persistent())
	assert.Equal(t, Default(), s.Player())

	s.SetSpeed(2.5)
	s.SetSound(false)
	require.NoError(t, s.Save())
	assert.Equal(t, Player{Speed: 2.5, Sound: false}, s.Player())

	require.NoError(t, s.Load())
	assert.Equal(t, Default(), s.Player())
}

func TestSetSpeedIgnoresNonPositive(t *testing.T) {
	s := New(nil, quietLogger())
	s.SetSpeed(0)
	s.SetSpeed(-3)
	assert.Equal(t, 1.0, s.Speed())
}

func TestSaveAndReload(t *testing.T) {
	isolate(t)
	m := openManager(t)

	s := New(m, quietLogger())
	require.True(t, s.Persistent())
	assert.Equal(t, Default(), s.Player())

	s.SetSpeed(3)
	s.SetSound(false)
	require.NoError(t, s.Save())

	again := New(openManager(t), quietLogger())
	assert.Equal(t, 3.0, again.Speed())
	assert.False(t, again.Sound())
}

func TestCorruptDataFallsBackToDefaults(t *testing.T) {
	isolate(t)
	m := openManager(t)
	require.NoError(t, m.SaveObjectProp(settingsObject, settingsProperty, []byte("speed: [not a number")))

	s := New(m, quietLogger())
	assert.Equal(t, Default(), s.Player())
	assert.Error(t, s.Load())
}
