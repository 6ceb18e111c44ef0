package speech

import "errors"

// Error definitions for the speech package.
var (
	ErrEmptyText  = errors.New("speech: text is empty")
	ErrEmptyAudio = errors.New("speech: provider returned no audio stream")
)
