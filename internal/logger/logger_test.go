package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   DEBUG,
		"INFO":    INFO,
		"warn":    WARNING,
		"Warning": WARNING,
		"error":   ERROR,
		"bogus":   INFO,
		"":        INFO,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(WARNING, &buf)

	Info("hidden %d", 1)
	Warning("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.False(t, IsInfoEnabled())
	assert.True(t, IsErrorEnabled())

	SetLevel(DEBUG)
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
	assert.True(t, IsDebugEnabled())
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitWithFormat(INFO, ParseFormat("JSON"), &buf)

	WithFields(map[string]interface{}{"provider": "app"}).Info("booted")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "booted", line["msg"])
	assert.Equal(t, "app", line["provider"])
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("xml"))
}
