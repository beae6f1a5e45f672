package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/pace-planner/internal/domain/pace"
	"github.com/oshokin/pace-planner/internal/render"
)

// TestValidate checks normalization and rejection of bad values.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Empty settings get defaults.
	settings := new(Config)
	require.NoError(t, Validate(settings))
	require.Equal(t, pace.Mile, settings.Unit)
	require.Equal(t, render.Text, settings.Format)
	require.Equal(t, DefaultLogLevel, settings.LogLevel)

	// Aliases are normalized.
	settings = &Config{Unit: "KM", Format: "yml", LogLevel: "debug"}
	require.NoError(t, Validate(settings))
	require.Equal(t, pace.Kilometer, settings.Unit)
	require.Equal(t, render.YAML, settings.Format)

	// Bad unit.
	require.ErrorIs(t, Validate(&Config{Unit: "furlong"}), pace.ErrUnknownUnit)

	// Bad format.
	require.ErrorIs(t, Validate(&Config{Format: "xml"}), render.ErrUnknownFormat)

	// Bad level.
	require.Error(t, Validate(&Config{LogLevel: "loud"}))

	require.Error(t, Validate(nil))
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		Unit:     pace.Kilometer,
		Detailed: true,
		Format:   render.JSON,
		LogLevel: "warn",
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)

	// File exists with restricted permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestLoad_PartialFileKeepsDefaults fills omitted keys with defaults.
func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unit: km\n"), DefaultFilePermissions))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, pace.Kilometer, loaded.Unit)
	require.False(t, loaded.Detailed)
	require.Equal(t, render.Text, loaded.Format)
	require.Equal(t, DefaultLogLevel, loaded.LogLevel)
}

// TestLoad_Errors covers a missing file, broken YAML and invalid values.
func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, ErrNotFound)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("unit: [\n"), DefaultFilePermissions))

	_, err = Load(broken)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("format: xml\n"), DefaultFilePermissions))

	_, err = Load(invalid)
	require.ErrorIs(t, err, render.ErrUnknownFormat)
}

// TestSave_Nil rejects a nil configuration.
func TestSave_Nil(t *testing.T) {
	t.Parallel()

	require.Error(t, Save(filepath.Join(t.TempDir(), "x.yaml"), nil))
}
