// Package backup uploads copies of the reservation store to S3 compatible
// object storage.
package backup

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/reservation-api/internal/config"
)

// ObjectPutter is the subset of the S3 client used here.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewS3Uploader builds a client from static credentials. A custom endpoint
// switches to path-style addressing, as MinIO expects.
func NewS3Uploader(cfg config.BackupConfig) (*S3Uploader, error) {
	if !cfg.Enabled() {
		return nil, errors.New("backup: bucket and region are required")
	}

	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return NewS3UploaderWithClient(s3.New(opts), cfg.Bucket, cfg.Prefix), nil
}

func NewS3UploaderWithClient(client ObjectPutter, bucket, prefix string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, prefix: prefix}
}

// Upload stores body under prefix+name and returns the full object key.
func (u *S3Uploader) Upload(ctx context.Context, name string, body []byte) (string, error) {
	key := u.prefix + name
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("text/csv; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("backup: put s3://%s/%s: %w", u.bucket, key, err)
	}
	return key, nil
}
