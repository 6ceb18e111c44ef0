package storage

import (
	"context"
	"io"
)

// Uploader stores objects in a bucket.
type Uploader interface {
	// Upload streams obj.Body into the bucket. Body is read to EOF but not closed.
	Upload(ctx context.Context, obj *Object) (*Location, error)
}

// Object is a single upload.
type Object struct {
	Body        io.Reader
	Bucket      string
	Key         string
	ContentType string
}

// Validate checks that obj names a destination and carries a body.
func (obj *Object) Validate() error {
	switch {
	case obj.Bucket == "":
		return ErrMissingBucket
	case obj.Key == "":
		return ErrMissingKey
	case obj.Body == nil:
		return ErrMissingBody
	}
	return nil
}

// Location describes where an object was stored.
type Location struct {
	Bucket    string
	Key       string
	URL       string
	ETag      string
	VersionID string
}
