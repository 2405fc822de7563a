package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatText, ParseFormat("tint"))
	assert.Equal(t, FormatText, ParseFormat(" Human "))
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatAuto, ParseFormat("yaml"))
	assert.Equal(t, FormatAuto, ParseFormat(""))
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("warn", slog.LevelInfo)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, l)

	l, ok = ParseLevel("", slog.LevelDebug)
	assert.False(t, ok)
	assert.Equal(t, slog.LevelDebug, l)

	l, ok = ParseLevel("loud", slog.LevelInfo)
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, l)
}

func TestNewHandlerJSONWhenNotTTY(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, FormatAuto, slog.LevelInfo))
	log.Debug("hidden")
	log.Info("shortcut pressed", "action", "capture")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shortcut pressed", rec["msg"])
	assert.Equal(t, "capture", rec["action"])
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "hello", Preview("hello"))

	long := strings.Repeat("é", previewRunes+5)
	got := Preview(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, previewRunes+1, len([]rune(got)))
}
