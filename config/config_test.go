package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gargoton.petite-maison-orange.fr/eric/pmorange/doubleslider"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(envConfigFile, "")
	return dir
}

func TestLoadDefaultConfig(t *testing.T) {
	dir := isolate(t)
	target := filepath.Join(dir, "missing.yml")

	cfg, err := LoadConfig(target)
	require.NoError(t, err)
	assert.Equal(t, target, cfg.Path())

	s, err := cfg.Slider()
	require.NoError(t, err)
	assert.Equal(t, doubleslider.Settings{
		SetupOnStart:    true,
		MinValue:        0,
		MaxValue:        100,
		MinDistance:     10,
		MaxDistance:     50,
		InitialMinValue: 20,
		InitialMaxValue: 30,
	}, s)
	assert.Equal(t, 300.0, cfg.FillWidth())
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "range.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
Slider:
  Min_Value: -5
  max_value: 5.5
  whole_numbers: true
fill:
  width: 42.5
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())

	s, err := cfg.Slider()
	require.NoError(t, err)
	assert.Equal(t, -5.0, s.MinValue)
	assert.Equal(t, 5.5, s.MaxValue)
	assert.True(t, s.WholeNumbers)
	assert.False(t, s.SetupOnStart)
	assert.Equal(t, 42.5, cfg.FillWidth())
}

func TestLoadConfigFromEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.yml")
	require.NoError(t, os.WriteFile(path, []byte("slider:\n  min_value: 1\n"), 0644))
	t.Setenv(envConfigFile, path)
	t.Setenv(envPrefix+"SLIDER__MAX_DISTANCE", "12.5")
	t.Setenv(envPrefix+"FILL__WIDTH", "640")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	s, err := cfg.Slider()
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.MinValue)
	assert.Equal(t, 12.5, s.MaxDistance)
	assert.Equal(t, 640.0, cfg.FillWidth())
}

func TestInvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("slider: [1, 2\n"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestSetSliderSaves(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "saved.yml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := doubleslider.Settings{MinValue: 0, MaxValue: 10, MinDistance: 1, MaxDistance: 4, WholeNumbers: true, InitialMinValue: 2, InitialMaxValue: 5}
	require.NoError(t, cfg.SetSlider(want))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	got, err := reloaded.Slider()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 300.0, reloaded.FillWidth())
}

func TestGetValue(t *testing.T) {
	isolate(t)
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	v, err := cfg.GetValue([]string{"FILL", "Width"})
	require.NoError(t, err)
	assert.Equal(t, 300, v)

	_, err = cfg.GetValue([]string{"fill", "width", "deeper"})
	require.Error(t, err)
	_, err = cfg.GetValue([]string{"nothing"})
	require.Error(t, err)
}
