package service

import (
	"errors"
	"fmt"
)

// Error definitions for the service package.
var (
	ErrMissingText   = errors.New("service: text is required")
	ErrMissingConfig = errors.New("configuration is not loaded")
	ErrMissingBucket = errors.New("BUCKET_NAME environment variable is not set")
)

// Stage names a step that talks to an external service.
type Stage string

const (
	StageSynthesize Stage = "synthesize"
	StageUpload     Stage = "upload"
)

// ConfigError reports a configuration fault detected before any external call.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "service: configuration: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// StepError reports the failure of an external call.
type StepError struct {
	Err   error
	Stage Stage
}

func (e *StepError) Error() string {
	return fmt.Sprintf("service: %s: %v", e.Stage, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
