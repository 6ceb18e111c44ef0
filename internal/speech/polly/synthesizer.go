package polly

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/polly"
	"github.com/aws/aws-sdk-go/service/polly/pollyiface"

	"github.com/ekisa-team/speakstore/internal/speech"
)

// Synthesizer implements speech.Synthesizer on Amazon Polly.
type Synthesizer struct {
	client pollyiface.PollyAPI
}

// New creates a Polly synthesizer. The client is shared across invocations.
func New(client pollyiface.PollyAPI) *Synthesizer {
	return &Synthesizer{client: client}
}

// Provider returns the provider identifier.
func (s *Synthesizer) Provider() speech.Provider {
	return speech.ProviderPolly
}

// Synthesize requests audio for req.Text and waits for the response headers.
// The audio itself is streamed from Result.Audio.
func (s *Synthesizer) Synthesize(ctx context.Context, req *speech.Request) (*speech.Result, error) {
	if req.Text == "" {
		return nil, speech.ErrEmptyText
	}

	input := s.buildInput(req)

	slog.Debug("Synthesizing speech",
		"provider", s.Provider(),
		"voice_id", req.VoiceID,
		"output_format", req.OutputFormat,
		"characters", len(req.Text),
	)

	out, err := s.client.SynthesizeSpeechWithContext(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("polly: synthesize speech: %w", err)
	}

	if out.AudioStream == nil {
		return nil, speech.ErrEmptyAudio
	}

	return &speech.Result{
		Audio: out.AudioStream,
		Metadata: &speech.Metadata{
			Provider:          s.Provider(),
			VoiceID:           req.VoiceID,
			ContentType:       aws.StringValue(out.ContentType),
			Timestamp:         time.Now(),
			RequestCharacters: aws.Int64Value(out.RequestCharacters),
		},
	}, nil
}

// buildInput maps a speech request onto Polly's input shape.
func (s *Synthesizer) buildInput(req *speech.Request) *polly.SynthesizeSpeechInput {
	input := &polly.SynthesizeSpeechInput{
		Text:         aws.String(req.Text),
		OutputFormat: aws.String(req.OutputFormat),
		VoiceId:      aws.String(req.VoiceID),
	}

	if req.OutputFormat == "" {
		input.OutputFormat = aws.String(polly.OutputFormatMp3)
	}
	if req.VoiceID == "" {
		input.VoiceId = aws.String(polly.VoiceIdJoanna)
	}
	if req.Engine != "" {
		input.Engine = aws.String(req.Engine)
	}
	if req.TextType != "" {
		input.TextType = aws.String(req.TextType)
	}

	return input
}
