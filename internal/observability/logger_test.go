// internal/observability/logger_test.go
package observability

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/WebVOWL/horned-owl-serializer/internal/config"
)

// -- Test Cases --

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LoggerConfig{
		Level:       "debug",
		Format:      "console",
		ServiceName: "TestService",
		Colors:      config.ColorConfig{Info: "green"},
	}
	logger := NewLogger(cfg, zapcore.AddSync(&buf))
	logger.Named("walker").Info("This is a test message.")
	_ = logger.Sync()

	output := buf.String()
	assert.Contains(t, output, "INFO", "Output should contain the log level")
	assert.Contains(t, output, "This is a test message.")
	assert.Contains(t, output, colorGreen, "Info level should be colorized green")
	assert.Contains(t, output, colorReset)
	assert.Contains(t, output, "TestService.walker.")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LoggerConfig{Level: "info", Format: "json", ServiceName: "JSONTest"}
	logger := NewLogger(cfg, zapcore.AddSync(&buf))
	logger.Warn("This is a JSON message.", zap.String("key", "value"))
	logger.Debug("filtered out")
	_ = logger.Sync()

	var logEntry map[string]interface{}
	require.NoError(t, jsoniter.Unmarshal(buf.Bytes(), &logEntry), "Log output should be valid JSON")

	assert.Equal(t, "WARN", logEntry["level"])
	assert.Equal(t, "JSONTest", logEntry["logger"])
	assert.Equal(t, "This is a JSON message.", logEntry["msg"])
	assert.Equal(t, "value", logEntry["key"])
	assert.NotContains(t, buf.String(), "filtered out")
}

func TestNewLogger_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.LoggerConfig{Level: "loud", Format: "json"}, zapcore.AddSync(&buf))
	logger.Debug("hidden")
	logger.Info("shown")
	_ = logger.Sync()
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hos.log")
	cfg := config.LoggerConfig{Level: "debug", Format: "console", LogFile: path, MaxSize: 1}

	var console bytes.Buffer
	logger := NewLogger(cfg, zapcore.AddSync(&console))
	logger.Error("This should go to the file.")
	_ = logger.Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "This should go to the file.")
	// The file is always JSON regardless of the console format.
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(content)), "{"))
}

func TestInitialize(t *testing.T) {
	t.Run("should only initialize once", func(t *testing.T) {
		ResetForTest()
		defer ResetForTest()

		var buf bytes.Buffer
		Initialize(config.LoggerConfig{Level: "info", Format: "json", ServiceName: "First"}, zapcore.AddSync(&buf))
		logger1 := GetLogger()
		Initialize(config.LoggerConfig{Level: "debug", Format: "json", ServiceName: "Second"}, zapcore.AddSync(&buf))
		logger2 := GetLogger()

		assert.Equal(t, logger1, logger2)
		logger2.Info("test")
		Sync()

		assert.Contains(t, buf.String(), "First")
		assert.NotContains(t, buf.String(), "Second")
	})

	t.Run("should return a fallback logger if not initialized", func(t *testing.T) {
		ResetForTest()
		require.NotNil(t, GetLogger())
	})
}
