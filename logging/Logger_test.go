package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/samuelfneumann/gobandit/errs"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.Format = JSON
	c.Level = "debug"

	l, err := New(c, zapcore.AddSync(&buf))
	require.NoError(t, err)
	l.Debug("finished trial", zap.Int("trial", 3))
	require.NoError(t, l.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, "bandit", entry["logger"])
	assert.Equal(t, "finished trial", entry["msg"])
	assert.Equal(t, 3.0, entry["trial"])
}

func TestNewLevel(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.Level = "warn"

	l, err := New(c, zapcore.AddSync(&buf))
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewFile(t *testing.T) {
	var buf bytes.Buffer
	c := DefaultConfig()
	c.File = filepath.Join(t.TempDir(), "bandit.log")

	l, err := New(c, zapcore.AddSync(&buf))
	require.NoError(t, err)
	l.Info("finished agent", zap.String("agent", "greedy"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(c.File)
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "greedy", entry["agent"])
	assert.Contains(t, buf.String(), "finished agent")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	c := DefaultConfig()
	c.Level = "loud"
	assert.True(t, errs.IsInvalidArgument(c.Validate()))

	c = DefaultConfig()
	c.Format = "xml"
	_, err := New(c, zapcore.AddSync(&bytes.Buffer{}))
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestNewConsoleColor(t *testing.T) {
	var colored, plain bytes.Buffer

	c := DefaultConfig()
	l, err := New(c, zapcore.AddSync(&colored))
	require.NoError(t, err)
	l.Info("finished agent")
	assert.Contains(t, colored.String(), "\x1b[")

	c.Color = false
	l, err = New(c, zapcore.AddSync(&plain))
	require.NoError(t, err)
	l.Info("finished agent")
	assert.Contains(t, plain.String(), "INFO")
	assert.NotContains(t, plain.String(), "\x1b[")
}
