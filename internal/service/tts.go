package service

import (
	"context"
	"log/slog"

	"github.com/ekisa-team/speakstore/internal/config"
	"github.com/ekisa-team/speakstore/internal/objectkey"
	"github.com/ekisa-team/speakstore/internal/speech"
	"github.com/ekisa-team/speakstore/internal/storage"
)

// Stored describes an audio object written by TTS.Store.
type Stored struct {
	Bucket      string
	Key         string
	URL         string
	ETag        string
	VersionID   string
	ContentType string
	Characters  int64
}

// TTS turns text into a stored audio object.
type TTS struct {
	synth    speech.Synthesizer
	uploader storage.Uploader
	keys     *objectkey.Generator
	settings config.Provider
}

// NewTTS creates a new TTS service.
func NewTTS(synth speech.Synthesizer, uploader storage.Uploader, keys *objectkey.Generator, settings config.Provider) *TTS {
	return &TTS{
		synth:    synth,
		uploader: uploader,
		keys:     keys,
		settings: settings,
	}
}

// Store validates the input, synthesizes it and uploads the audio.
// Errors are ErrMissingText, *ConfigError or *StepError.
func (s *TTS) Store(ctx context.Context, text string) (*Stored, error) {
	if text == "" {
		return nil, ErrMissingText
	}

	cfg, err := s.resolveConfig()
	if err != nil {
		return nil, err
	}

	res, err := s.synthesize(ctx, cfg, text)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	key := s.keys.Next(cfg.Storage.KeyPrefix, cfg.Speech.OutputFormat.Extension(), cfg.Storage.UniqueKeys)

	loc, err := s.upload(ctx, cfg, key, res)
	if err != nil {
		return nil, err
	}

	slog.Info("Audio stored",
		"bucket", loc.Bucket,
		"key", loc.Key,
		"url", loc.URL,
		"etag", loc.ETag,
		"version_id", loc.VersionID,
		"characters", res.Metadata.RequestCharacters,
	)

	return &Stored{
		Bucket:      loc.Bucket,
		Key:         loc.Key,
		URL:         loc.URL,
		ETag:        loc.ETag,
		VersionID:   loc.VersionID,
		ContentType: cfg.Speech.OutputFormat.ContentType(),
		Characters:  res.Metadata.RequestCharacters,
	}, nil
}

// resolveConfig returns the config for this call, or a *ConfigError.
func (s *TTS) resolveConfig() (*config.Config, error) {
	cfg := s.settings.Snapshot()
	if cfg == nil {
		return nil, &ConfigError{Err: ErrMissingConfig}
	}

	if cfg.Storage.Bucket == "" {
		return nil, &ConfigError{Err: ErrMissingBucket}
	}

	return cfg, nil
}

// synthesize runs the speech step. The result always carries metadata.
func (s *TTS) synthesize(ctx context.Context, cfg *config.Config, text string) (*speech.Result, error) {
	res, err := s.synth.Synthesize(ctx, &speech.Request{
		Text:         text,
		VoiceID:      cfg.Speech.VoiceID,
		OutputFormat: string(cfg.Speech.OutputFormat),
		Engine:       cfg.Speech.Engine,
		TextType:     cfg.Speech.TextType,
	})
	if err != nil {
		return nil, &StepError{Stage: StageSynthesize, Err: err}
	}

	if res == nil || res.Audio == nil {
		return nil, &StepError{Stage: StageSynthesize, Err: speech.ErrEmptyAudio}
	}

	if res.Metadata == nil {
		res.Metadata = &speech.Metadata{Provider: s.synth.Provider()}
	}

	return res, nil
}

// upload runs the storage step.
func (s *TTS) upload(ctx context.Context, cfg *config.Config, key string, res *speech.Result) (*storage.Location, error) {
	loc, err := s.uploader.Upload(ctx, &storage.Object{
		Bucket:      cfg.Storage.Bucket,
		Key:         key,
		Body:        res.Audio,
		ContentType: cfg.Speech.OutputFormat.ContentType(),
	})
	if err != nil {
		return nil, &StepError{Stage: StageUpload, Err: err}
	}

	return loc, nil
}
