package s3

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"

	"github.com/ekisa-team/speakstore/internal/storage"
)

const megabyte = 1024 * 1024

// Options tunes the multipart upload.
type Options struct {
	PartSizeMB  int64
	Concurrency int
}

// Uploader implements storage.Uploader on the S3 upload manager.
// Bodies are sent in parts, so a stream is never buffered whole.
type Uploader struct {
	client s3manageriface.UploaderAPI
	opts   Options
}

// New creates an S3 uploader. Zero options fall back to the upload manager defaults.
func New(client s3manageriface.UploaderAPI, opts Options) *Uploader {
	return &Uploader{client: client, opts: opts}
}

// Upload streams obj.Body to s3://obj.Bucket/obj.Key.
func (u *Uploader) Upload(ctx context.Context, obj *storage.Object) (*storage.Location, error) {
	if err := obj.Validate(); err != nil {
		return nil, err
	}

	input := &s3manager.UploadInput{
		Bucket: aws.String(obj.Bucket),
		Key:    aws.String(obj.Key),
		Body:   obj.Body,
	}
	if obj.ContentType != "" {
		input.ContentType = aws.String(obj.ContentType)
	}

	slog.Debug("Uploading object", "bucket", obj.Bucket, "key", obj.Key, "content_type", obj.ContentType)

	out, err := u.client.UploadWithContext(ctx, input, u.configure)
	if err != nil {
		return nil, fmt.Errorf("s3: upload %s/%s: %w", obj.Bucket, obj.Key, err)
	}

	return &storage.Location{
		Bucket:    obj.Bucket,
		Key:       obj.Key,
		URL:       out.Location,
		ETag:      aws.StringValue(out.ETag),
		VersionID: aws.StringValue(out.VersionID),
	}, nil
}

// configure applies Options to the upload manager for a single call.
func (u *Uploader) configure(m *s3manager.Uploader) {
	if u.opts.PartSizeMB > 0 {
		m.PartSize = u.opts.PartSizeMB * megabyte
	}
	if u.opts.Concurrency > 0 {
		m.Concurrency = u.opts.Concurrency
	}
}
