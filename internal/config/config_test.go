package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultsAreReasonable(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "M", cfg.Ecl)
	assert.Equal(t, 4, cfg.Border)
	assert.Equal(t, 8, cfg.Scale)
}

func Test_LoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func Test_SaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Defaults()
	cfg.Ecl = "H"
	cfg.Scale = 16

	assert.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "H", loaded.Ecl)
	assert.Equal(t, 16, loaded.Scale)
	assert.Equal(t, cfg.Border, loaded.Border)
}

func Test_LoadOfEmptyFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	assert.NoError(t, os.WriteFile(path, nil, 0600))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}
