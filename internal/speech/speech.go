package speech

import (
	"context"
	"io"
	"time"
)

// Provider is a string identifier for a speech provider.
type Provider string

const (
	ProviderPolly Provider = "polly"
)

// Synthesizer defines the interface for text-to-speech providers.
type Synthesizer interface {
	// Provider returns the provider identifier.
	Provider() Provider

	// Synthesize converts text into audio. The caller owns and must close Result.Audio.
	Synthesize(ctx context.Context, req *Request) (*Result, error)
}

// Request encapsulates all parameters for a synthesis call.
type Request struct {
	// Text is the input to speak.
	Text string

	// VoiceID names the synthetic voice.
	VoiceID string

	// OutputFormat is the provider's name for the audio encoding (e.g. "mp3").
	OutputFormat string

	// Engine selects the provider engine. Empty means provider default.
	Engine string

	// TextType is "text" or "ssml". Empty means plain text.
	TextType string
}

// Result contains synthesized audio.
type Result struct {
	// Audio is the audio byte stream.
	Audio io.ReadCloser

	// Metadata contains provider information about the result.
	Metadata *Metadata
}

// Metadata contains metadata about the synthesized audio.
type Metadata struct {
	Provider          Provider  `json:"provider"`
	VoiceID           string    `json:"voice_id"`
	ContentType       string    `json:"content_type"`
	Timestamp         time.Time `json:"timestamp"`
	RequestCharacters int64     `json:"request_characters"`
}

// Close releases the audio stream.
func (r *Result) Close() error {
	if r == nil || r.Audio == nil {
		return nil
	}
	return r.Audio.Close()
}
