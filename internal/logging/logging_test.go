package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeFallsBackToInfoOnBadLevel(t *testing.T) {
	t.Cleanup(InitializeDefault)

	require.NoError(t, Initialize(Config{Level: "loud", Format: "json", Output: "stderr"}))
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitializeWritesToFile(t *testing.T) {
	t.Cleanup(InitializeDefault)

	path := filepath.Join(t.TempDir(), "patterns.log")
	require.NoError(t, Initialize(Config{Level: "debug", Format: "json", Output: path}))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestSetLoggerRoutesHelpers(t *testing.T) {
	t.Cleanup(InitializeDefault)

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))

	Info("committed", zap.String("database", "Bret-DB"))
	Named("facade").Debug("stored")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "committed", entries[0].Message)
	assert.Equal(t, "Bret-DB", entries[0].ContextMap()["database"])
	assert.Equal(t, "facade", entries[1].LoggerName)
}

func TestSetLoggerNilIsNop(t *testing.T) {
	t.Cleanup(InitializeDefault)

	SetLogger(nil)
	assert.NotPanics(t, func() { Info("dropped") })
}

func TestLevelHelpers(t *testing.T) {
	t.Cleanup(InitializeDefault)

	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))

	Debug("hidden")
	Warn("empty bill", zap.String("path", "desk.hcl"))
	Error("command failed")

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "desk.hcl", entries[0].ContextMap()["path"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
