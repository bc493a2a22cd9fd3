package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcov19-server/internal/domain"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       domain.LoggingConfig
		level     logrus.Level
		formatter logrus.Formatter
		out       *os.File
	}{
		{
			name:      "text to stderr",
			cfg:       domain.LoggingConfig{Level: "info", Format: "text", Output: "stderr"},
			level:     logrus.InfoLevel,
			formatter: &logrus.TextFormatter{},
			out:       os.Stderr,
		},
		{
			name:      "json to stdout",
			cfg:       domain.LoggingConfig{Level: "debug", Format: "json", Output: "stdout"},
			level:     logrus.DebugLevel,
			formatter: &logrus.JSONFormatter{},
			out:       os.Stdout,
		},
		{
			name:      "empty format and output",
			cfg:       domain.LoggingConfig{Level: "warn"},
			level:     logrus.WarnLevel,
			formatter: &logrus.TextFormatter{},
			out:       os.Stderr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(&tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.level, logger.GetLevel())
			assert.IsType(t, tt.formatter, logger.Formatter)
			assert.Equal(t, tt.out, logger.Out)
		})
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.LoggingConfig
	}{
		{"bad level", domain.LoggingConfig{Level: "loud"}},
		{"bad format", domain.LoggingConfig{Level: "info", Format: "xml"}},
		{"bad output", domain.LoggingConfig{Level: "info", Output: "syslog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(&tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, logger)
		})
	}
}

func TestNewLogger_JSONFields(t *testing.T) {
	logger, err := NewLogger(&domain.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.WithField("class", "DiagnosisServiceImpl").Info("contract verified")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DiagnosisServiceImpl", entry["class"])
	assert.Equal(t, "contract verified", entry["msg"])
}
