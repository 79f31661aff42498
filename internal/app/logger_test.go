package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{level: LogLevelDebug, wantDebug: true, wantWarn: true},
		{level: LogLevelInfo, wantWarn: true},
		{level: LogLevelWarn, wantWarn: true},
		{level: LogLevelError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			logger := newLogger(&Config{LogLevel: tc.level, LogFormat: LogFormatText}, buf)
			logger.Debug("debug line")
			logger.Warn("warn line")

			assert.Equal(t, tc.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")))
			assert.Equal(t, tc.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn line")))
		})
	}
}

func TestNewLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	newLogger(&Config{LogLevel: LogLevelInfo, LogFormat: LogFormatJSON}, buf).Info("Sweep loaded.", "parameters", 5)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Sweep loaded.", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.EqualValues(t, 5, record["parameters"])
}
