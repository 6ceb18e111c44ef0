package config

const (
	// SchemaVersion is the only config file version understood.
	SchemaVersion = "v1"

	// DefaultVoiceID is the synthetic voice used when none is configured.
	DefaultVoiceID = "Joanna"

	// DefaultKeyPrefix starts every generated object key.
	DefaultKeyPrefix = "audio-"

	// MinPartSizeMB is the smallest multipart chunk S3 accepts.
	MinPartSizeMB = 5

	// DefaultConcurrency is the number of parts uploaded in parallel.
	DefaultConcurrency = 5

	// DefaultHTTPPort is used by the local HTTP server.
	DefaultHTTPPort = 8080
)

// Default returns the configuration used when neither a file nor the environment say otherwise.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		Speech: SpeechConfig{
			VoiceID:      DefaultVoiceID,
			OutputFormat: OutputFormatMP3,
		},
		Storage: StorageConfig{
			KeyPrefix:   DefaultKeyPrefix,
			PartSizeMB:  MinPartSizeMB,
			Concurrency: DefaultConcurrency,
		},
	}
}
