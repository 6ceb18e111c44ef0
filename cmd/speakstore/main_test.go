package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/speakstore/internal/envvar"
)

func TestResolveConfigPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "speakstore.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("version: v1\n"), 0o644))
	missing := filepath.Join(dir, "missing.yaml")

	tests := []struct {
		name     string
		flag     string
		env      string
		expected string
		missing  bool
	}{
		{name: "no config", expected: ""},
		{name: "flag", flag: existing, expected: existing},
		{name: "environment", env: existing, expected: existing},
		{name: "flag wins over environment", flag: existing, env: missing, expected: existing},
		{name: "missing file", flag: missing, expected: missing, missing: true},
		{name: "directory is not a file", env: dir, expected: dir, missing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envvar.SpeakstoreConfig, tt.env)

			path, err := resolveConfigPath(tt.flag)
			assert.Equal(t, tt.expected, path)
			if tt.missing {
				assert.ErrorIs(t, err, fs.ErrNotExist)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultHTTPPort(t *testing.T) {
	t.Setenv(envvar.SpeakstoreServerHTTPPort, "9090")
	assert.Equal(t, 9090, defaultHTTPPort())

	t.Setenv(envvar.SpeakstoreServerHTTPPort, "not-a-port")
	assert.Equal(t, 8080, defaultHTTPPort())
}
