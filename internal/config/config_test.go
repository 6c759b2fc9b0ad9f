package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "default is valid", config: *Default(), wantErr: false},
		{name: "empty level is valid", config: Config{}, wantErr: false},
		{name: "debug level", config: Config{LogLevel: "debug"}, wantErr: false},
		{name: "unknown level", config: Config{LogLevel: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("WIKIMARK_LOG_LEVEL", "debug")
	t.Setenv("WIKIMARK_GFM", "false")
	t.Setenv("WIKIMARK_HARD_WRAPS", "true")

	cfg := Default()
	cfg.LoadFromEnv()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.GFM)
	assert.True(t, cfg.HardWraps)
}

func TestConfig_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg := &Config{GFM: true, HardWraps: true, LogLevel: "warn"}
	require.NoError(t, cfg.Save(path))

	// Restricted permissions on the written file.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadWithEnv_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.True(t, cfg.GFM)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("gfm: [broken"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
