package storage

import "errors"

// Error definitions for the storage package.
var (
	ErrMissingBucket = errors.New("storage: bucket is required")
	ErrMissingKey    = errors.New("storage: key is required")
	ErrMissingBody   = errors.New("storage: body is required")
)
