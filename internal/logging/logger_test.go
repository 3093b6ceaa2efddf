package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{" error ", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewFromConfigValues(t *testing.T) {
	logger := NewFromConfigValues("warn", "json")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger = NewFromConfigValues("", "yaml")
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("SPLITFOREST_LOG_LEVEL", "debug")
	t.Setenv("SPLITFOREST_LOG_FORMAT", "json")

	assert.Equal(t, zerolog.DebugLevel, NewFromEnv().GetLevel())
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	ctx := WithContext(context.Background(), New(cfg))

	ctx = WithComponent(ctx, "forest")
	ctx = WithTabID(ctx, "tab-2")
	ctx = WithNodeID(ctx, stringer("n7"))
	ctx = With(ctx, map[string]any{"leaves": 3})
	FromContext(ctx).Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "forest", line["component"])
	assert.Equal(t, "tab-2", line["tab_id"])
	assert.Equal(t, "n7", line["node"])
	assert.InDelta(t, 3, line["leaves"], 0)
	assert.Equal(t, "hello", line["message"])
}

func TestFromContext_NoLoggerIsDisabled(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "splitforest.log")

	logger, closer, err := NewWithFile("debug", "json", path)
	require.NoError(t, err)
	logger.Debug().Msg("to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"to file"`)
}

func TestLogRotator_RotatesAndKeepsBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 2)
	require.NoError(t, err)
	defer func() { _ = r.Close() }()

	// Shrink the limit to force several rotations.
	r.maxSize = 16
	for i := 0; i < 5; i++ {
		_, err := r.Write([]byte("0123456789abcdef"))
		require.NoError(t, err)
	}

	backups, err := r.Backups()
	require.NoError(t, err)
	assert.LessOrEqual(t, len(backups), 2)
	assert.NotEmpty(t, backups)

	current, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", string(current))
}

type stringer string

func (s stringer) String() string { return string(s) }
