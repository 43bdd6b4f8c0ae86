package logging

import (
	"os"
	"path/filepath"
	"testing"

	"danubio/internal/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testApp = config.AppConfig{Name: "danubio-test", Environment: "test", Version: "0.1.0"}

func TestNewDefaultsToStdoutJSON(t *testing.T) {
	logger, closer, err := New(config.LoggingConfig{}, testApp)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Nil(t, closer)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewConsoleOnStderr(t *testing.T) {
	cfg := config.LoggingConfig{Level: "warn", Output: "stderr", Format: "console"}
	logger, closer, err := New(cfg, testApp)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Nil(t, closer)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewFileOutput(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	cfg := config.LoggingConfig{Level: "debug", Output: "file", FilePath: logPath}

	logger, closer, err := New(cfg, testApp)
	require.NoError(t, err)
	require.NotNil(t, closer)

	logger.Info().Msg("written to file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), `"app":"danubio-test"`)
	assert.Contains(t, string(data), `"version":"0.1.0"`)
}

func TestNewFileOutputNeedsPath(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Output: "file"}, testApp)
	assert.Error(t, err)
}

func TestNewRejectsUnknownOutput(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Output: "syslog"}, testApp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syslog")
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	logger, _, err := New(config.LoggingConfig{Level: "shouting"}, testApp)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}
