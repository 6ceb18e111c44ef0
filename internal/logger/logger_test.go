package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/speakstore/internal/env"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(env.Production, WithWriter(&buf))

	log.Info("Audio stored", "key", "audio-1.mp3")
	log.Debug("hidden")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Audio stored", record["msg"])
	assert.Equal(t, "audio-1.mp3", record["key"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_DevelopmentLogsDebugAsText(t *testing.T) {
	var buf bytes.Buffer
	log := New(env.Development, WithWriter(&buf))

	log.Debug("Synthesizing speech", "voice", "Joanna")

	assert.Contains(t, buf.String(), "Synthesizing speech")
	assert.Contains(t, buf.String(), "voice=Joanna")
}

func TestNew_WithLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(env.Development, WithWriter(&buf), WithLevel(slog.LevelWarn))

	log.Info("dropped")
	assert.Empty(t, buf.String())
}

func TestNew_LogToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speakstore.log")

	var buf bytes.Buffer
	log := New(env.Production, WithWriter(&buf), WithLogToFile(true), WithLogFile(path))
	log.Error("Upload failed", "bucket", "b")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Upload failed")
	assert.Contains(t, buf.String(), "Upload failed")
}
