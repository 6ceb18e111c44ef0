package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/speakstore/internal/envvar"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "speakstore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		envvar.BucketName,
		"AWS_REGION",
		"SPEAKSTORE_VOICE_ID",
		"SPEAKSTORE_OUTPUT_FORMAT",
		"SPEAKSTORE_ENGINE",
		"SPEAKSTORE_TEXT_TYPE",
		"SPEAKSTORE_KEY_PREFIX",
		"SPEAKSTORE_UNIQUE_KEYS",
		"SPEAKSTORE_PART_SIZE_MB",
		"SPEAKSTORE_UPLOAD_CONCURRENCY",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.Storage.Bucket)
	assert.Equal(t, "Joanna", cfg.Speech.VoiceID)
	assert.Equal(t, OutputFormatMP3, cfg.Speech.OutputFormat)
	assert.Equal(t, "audio-", cfg.Storage.KeyPrefix)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(envvar.BucketName, "speech-bucket")
	t.Setenv("SPEAKSTORE_VOICE_ID", "Matthew")
	t.Setenv("SPEAKSTORE_UNIQUE_KEYS", "true")
	t.Setenv("SPEAKSTORE_PART_SIZE_MB", "16")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "speech-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "Matthew", cfg.Speech.VoiceID)
	assert.True(t, cfg.Storage.UniqueKeys)
	assert.Equal(t, int64(16), cfg.Storage.PartSizeMB)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
version: v1
speech:
  voice_id: Amy
  output_format: ogg_vorbis
storage:
  bucket: file-bucket
  key_prefix: speech/
`)
	t.Setenv(envvar.BucketName, "env-bucket")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-bucket", cfg.Storage.Bucket)
	assert.Equal(t, "Amy", cfg.Speech.VoiceID)
	assert.Equal(t, OutputFormatOggVorbis, cfg.Speech.OutputFormat)
	assert.Equal(t, "speech/", cfg.Storage.KeyPrefix)
	assert.Equal(t, DefaultConcurrency, cfg.Storage.Concurrency)
}

func TestLoad_SchemaRejectsUnknownFormat(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
version: v1
speech:
  output_format: flac
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoad_SchemaRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
version: v1
storage:
  buckett: typo
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "version: [v1\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EnvironmentValidated(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPEAKSTORE_OUTPUT_FORMAT", "wav")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format      OutputFormat
		contentType string
		extension   string
	}{
		{OutputFormatMP3, "audio/mpeg", ".mp3"},
		{OutputFormatOggVorbis, "audio/ogg", ".ogg"},
		{OutputFormatPCM, "audio/pcm", ".pcm"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.True(t, tt.format.Valid())
			assert.Equal(t, tt.contentType, tt.format.ContentType())
			assert.Equal(t, tt.extension, tt.format.Extension())
		})
	}

	assert.False(t, OutputFormat("wav").Valid())
}

func TestStatic(t *testing.T) {
	cfg := Default()
	assert.Same(t, cfg, NewStatic(cfg).Snapshot())
	assert.Nil(t, NewStatic(nil).Snapshot())
}
