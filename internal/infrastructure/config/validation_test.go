package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
		{name: "bad orientation", mutate: func(c *Config) { c.Workspace.DefaultOrientation = "diagonal" }, wantKey: "workspace.default_orientation"},
		{name: "narrow surface", mutate: func(c *Config) { c.Workspace.SurfaceWidth = 3 }, wantKey: "workspace.surface_width"},
		{name: "short surface", mutate: func(c *Config) { c.Workspace.SurfaceHeight = 0 }, wantKey: "workspace.surface_height"},
		{name: "bad accent", mutate: func(c *Config) { c.Appearance.Accent = "purple" }, wantKey: "appearance.accent"},
		{name: "ansi out of range", mutate: func(c *Config) { c.Appearance.Border = "256" }, wantKey: "appearance.border"},
		{name: "empty muted", mutate: func(c *Config) { c.Appearance.Muted = "" }, wantKey: "appearance.muted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Workspace.SurfaceWidth = 1
	cfg.Appearance.Accent = "nope"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "workspace.surface_width")
	assert.Contains(t, err.Error(), "appearance.accent")
}

func TestIsValidColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#7D56F4", "0", "255", "42"} {
		assert.True(t, isValidColor(ok), ok)
	}
	for _, bad := range []string{"", "#ffff", "fff", "-1", "256", "#GGGGGG"} {
		assert.False(t, isValidColor(bad), bad)
	}
}
