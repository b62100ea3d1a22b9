package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := load(viper.New())

	assert.NoError(t, err)
	assert.Equal(t, StageDev, cfg.Stage)
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestLoad_env(t *testing.T) {
	t.Setenv("MEDIASYNC_STAGE", "prod")
	t.Setenv("MEDIASYNC_LOG_LEVEL", "debug")
	t.Setenv("MEDIASYNC_LOG_FORMAT", "text")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, StageProd, cfg.Stage)
	assert.Equal(t, LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, LogFormatText, cfg.Log.Format)
}

func TestLoad_file(t *testing.T) {
	dir := t.TempDir()
	content := []byte("stage: staging\nlog:\n  level: warn\n")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "mediasync.yaml"), content, 0o600))
	t.Setenv("LAMBDA_TASK_ROOT", dir)

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, StageStaging, cfg.Stage)
	assert.Equal(t, LogLevelWarn, cfg.Log.Level)
	assert.Equal(t, LogFormatJSON, cfg.Log.Format)
}

func TestLoad_invalid(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"MEDIASYNC_STAGE", "qa"},
		{"MEDIASYNC_LOG_LEVEL", "loud"},
		{"MEDIASYNC_LOG_FORMAT", "xml"},
	}

	for _, c := range cases {
		t.Run(c.key, func(t *testing.T) {
			t.Setenv(c.key, c.value)

			_, err := Load()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestConfig_newLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := Config{Stage: StageDev, Log: LogConfig{Level: LogLevelWarn, Format: LogFormatJSON}}
	logger := cfg.newLogger(&buf)

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
}

func TestConfig_newLogger_text(t *testing.T) {
	cfg := Config{Stage: StageDev, Log: LogConfig{Level: LogLevelDebug, Format: LogFormatText}}
	logger := cfg.newLogger(&bytes.Buffer{})

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}
