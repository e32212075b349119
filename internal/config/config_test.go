package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fivetakes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
players:
  - Alice
  - Bob
  - Carol
seed: 42
target_score: 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, cfg.Players)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.TargetScore)
}

func TestLoadPartial(t *testing.T) {
	cfg, err := Load(writeConfig(t, "players: [Alice, Bob, Carol]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, cfg.Players)
	assert.Zero(t, cfg.Seed)
	assert.Zero(t, cfg.TargetScore)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "players: [unclosed\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config YAML")
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	cfg, err = LoadOptional(writeConfig(t, "seed: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)

	// Other failures still surface.
	_, err = LoadOptional(writeConfig(t, ": not yaml : ["))
	assert.Error(t, err)
}
