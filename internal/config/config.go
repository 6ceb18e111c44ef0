package config

import "fmt"

// OutputFormat is the audio encoding requested from the speech service.
type OutputFormat string

const (
	// OutputFormatMP3 is MPEG audio, the default format.
	OutputFormatMP3 OutputFormat = "mp3"

	// OutputFormatOggVorbis is Ogg Vorbis audio.
	OutputFormatOggVorbis OutputFormat = "ogg_vorbis"

	// OutputFormatPCM is raw signed 16-bit little-endian PCM.
	OutputFormatPCM OutputFormat = "pcm"
)

// ContentType returns the MIME type objects of this format are stored with.
func (f OutputFormat) ContentType() string {
	switch f {
	case OutputFormatOggVorbis:
		return "audio/ogg"
	case OutputFormatPCM:
		return "audio/pcm"
	default:
		return "audio/mpeg"
	}
}

// Extension returns the file extension, including the dot.
func (f OutputFormat) Extension() string {
	switch f {
	case OutputFormatOggVorbis:
		return ".ogg"
	case OutputFormatPCM:
		return ".pcm"
	default:
		return ".mp3"
	}
}

// Valid reports whether f is a known format.
func (f OutputFormat) Valid() bool {
	switch f {
	case OutputFormatMP3, OutputFormatOggVorbis, OutputFormatPCM:
		return true
	}
	return false
}

// Config holds the main configuration for the function.
type Config struct {
	Version string        `json:"version"           yaml:"version"`
	AWS     AWSConfig     `json:"aws,omitempty"     yaml:"aws,omitempty"`
	Speech  SpeechConfig  `json:"speech,omitempty"  yaml:"speech,omitempty"`
	Storage StorageConfig `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// AWSConfig holds settings shared by every AWS client.
type AWSConfig struct {
	Region string `json:"region,omitempty" yaml:"region,omitempty" env:"AWS_REGION"`
}

// SpeechConfig holds the synthesis request settings.
type SpeechConfig struct {
	VoiceID      string       `json:"voice_id"            yaml:"voice_id"            env:"SPEAKSTORE_VOICE_ID"`
	OutputFormat OutputFormat `json:"output_format"       yaml:"output_format"       env:"SPEAKSTORE_OUTPUT_FORMAT"`
	Engine       string       `json:"engine,omitempty"    yaml:"engine,omitempty"    env:"SPEAKSTORE_ENGINE"`
	TextType     string       `json:"text_type,omitempty" yaml:"text_type,omitempty" env:"SPEAKSTORE_TEXT_TYPE"`
}

// StorageConfig holds the destination bucket and upload settings.
type StorageConfig struct {
	Bucket      string `json:"bucket,omitempty"       yaml:"bucket,omitempty"       env:"BUCKET_NAME"`
	KeyPrefix   string `json:"key_prefix"             yaml:"key_prefix"             env:"SPEAKSTORE_KEY_PREFIX"`
	UniqueKeys  bool   `json:"unique_keys,omitempty"  yaml:"unique_keys,omitempty"  env:"SPEAKSTORE_UNIQUE_KEYS"`
	PartSizeMB  int64  `json:"part_size_mb,omitempty" yaml:"part_size_mb,omitempty" env:"SPEAKSTORE_PART_SIZE_MB"`
	Concurrency int    `json:"concurrency,omitempty"  yaml:"concurrency,omitempty"  env:"SPEAKSTORE_UPLOAD_CONCURRENCY"`
}

// Validate checks the values the schema cannot see, i.e. those coming from the environment.
// A missing bucket is not an error here; it is reported per invocation.
func (c *Config) Validate() error {
	if c.Speech.VoiceID == "" {
		return fmt.Errorf("config: speech.voice_id must not be empty")
	}
	if !c.Speech.OutputFormat.Valid() {
		return fmt.Errorf("config: unsupported output format %q", c.Speech.OutputFormat)
	}
	if c.Storage.PartSizeMB < MinPartSizeMB {
		return fmt.Errorf("config: storage.part_size_mb must be at least %d, got %d", MinPartSizeMB, c.Storage.PartSizeMB)
	}
	if c.Storage.Concurrency < 1 {
		return fmt.Errorf("config: storage.concurrency must be positive, got %d", c.Storage.Concurrency)
	}

	return nil
}

// Provider hands out the configuration in effect for an invocation.
type Provider interface {
	Snapshot() *Config
}

// Static is a Provider that never changes.
type Static struct {
	cfg *Config
}

// NewStatic wraps cfg in a Provider. A nil cfg yields nil snapshots.
func NewStatic(cfg *Config) *Static {
	return &Static{cfg: cfg}
}

// Snapshot returns the wrapped config.
func (s *Static) Snapshot() *Config {
	return s.cfg
}
