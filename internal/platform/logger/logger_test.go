package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogsmith/blogsmith-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		name        string
		logLevel    string
		debugLogged bool
	}{
		{name: "debug level logs debug", logLevel: "debug", debugLogged: true},
		{name: "info level suppresses debug", logLevel: "info", debugLogged: false},
		{name: "warn level suppresses debug", logLevel: "warn", debugLogged: false},
		{name: "level is case-insensitive", logLevel: "DEBUG", debugLogged: true},
		{name: "unknown level falls back to info", logLevel: "verbose", debugLogged: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := setup(config.ServerConfig{Port: 8080, LogLevel: tc.logLevel}, &buf)
			require.NoError(t, err)
			require.NotNil(t, log)

			log.Debug("debug message")
			log.Info("info message")

			assert.Equal(t, tc.debugLogged, bytes.Contains(buf.Bytes(), []byte("debug message")))
			assert.Contains(t, buf.String(), "info message")
		})
	}
}

func TestSetupEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := setup(config.ServerConfig{Port: 8080, LogLevel: "info"}, &buf)
	require.NoError(t, err)

	log.Info("structured entry", "topic", "rust ownership")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "structured entry", entry["msg"])
	assert.Equal(t, "rust ownership", entry["topic"])
}
