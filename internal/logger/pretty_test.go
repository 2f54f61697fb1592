package logger

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestTUILoggerWritesIntoBuffer(t *testing.T) {
	buffer, err := NewLogBuffer(10, filepath.Join(t.TempDir(), "tui.log"), zap.NewNop())
	require.NoError(t, err)
	defer buffer.Close()

	log, err := CreateTUILogger(false, buffer)
	require.NoError(t, err)

	log.Debug("hidden below info")
	log.Info("Profit changed", zap.Int("profit", 250000))

	logs := buffer.GetRecentLogs(0)
	require.Len(t, logs, 1)
	assert.Equal(t, "INFO", logs[0].Level)
	assert.Equal(t, "Profit changed", logs[0].Message)
	assert.EqualValues(t, 250000, logs[0].Fields["profit"])
}

func TestTUILoggerRequiresBuffer(t *testing.T) {
	_, err := CreateTUILogger(true, nil)
	assert.Error(t, err)
}

func TestBufferWriteRejectsGarbage(t *testing.T) {
	buffer, err := NewLogBuffer(2, filepath.Join(t.TempDir(), "bad.log"), zap.NewNop())
	require.NoError(t, err)
	defer buffer.Close()

	_, err = buffer.Write([]byte("not json"))
	assert.Error(t, err)
}

func TestPrettyLogger(t *testing.T) {
	var out bytes.Buffer
	log := CreatePrettyLogger(true, zapcore.AddSync(&out))

	log.Debug("Snapshot computed", zap.String("total", "98000"))
	log.Warn("Salary clamped")

	text := out.String()
	assert.Contains(t, text, "[DEBUG]")
	assert.Contains(t, text, "Snapshot computed")
	assert.Contains(t, text, "98000")
	assert.Contains(t, text, "[WARN]")
	assert.Equal(t, 2, strings.Count(text, "\n"))
}

func TestWithSession(t *testing.T) {
	buffer, err := NewLogBuffer(4, filepath.Join(t.TempDir(), "session.log"), zap.NewNop())
	require.NoError(t, err)
	defer buffer.Close()

	base, err := CreateTUILogger(false, buffer)
	require.NoError(t, err)

	log, id := WithSession(base)
	require.NotEmpty(t, id)
	log.Info("Session started")

	logs := buffer.GetRecentLogs(1)
	require.Len(t, logs, 1)
	assert.Equal(t, id, logs[0].Fields["session_id"])
}
