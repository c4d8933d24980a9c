package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/miajio/dict/pkg/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestRecorder(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := NewRecorder(l)

	r.Record(dictionary.Event{Op: dictionary.OpSearch, Word: "apple", Hit: true})
	r.Record(dictionary.Event{Op: dictionary.OpLoad, Count: 3})
	r.Record(dictionary.Event{Op: dictionary.OpSave, Count: 3, Err: errors.New("disk full")})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "search", lines[0]["msg"])
	assert.Equal(t, "apple", lines[0]["word"])
	assert.Equal(t, true, lines[0]["hit"])

	assert.Equal(t, "INFO", lines[1]["level"])
	assert.Equal(t, "load completed", lines[1]["msg"])
	assert.Equal(t, float64(3), lines[1]["count"])

	assert.Equal(t, "ERROR", lines[2]["level"])
	assert.Equal(t, "save failed", lines[2]["msg"])
	assert.Equal(t, "disk full", lines[2]["error"])
}

func TestSetup(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	l := Setup("warn", "json", &buf)
	l.Info("hidden")
	WithComponent("dictionary").Warn("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["msg"])
	assert.Equal(t, "dictionary", lines[0]["component"])
}
