// Package minio reads metric files from MinIO and other S3 compatible stores.
package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/source"
)

// Client is the subset of the MinIO API used by Store.
type Client interface {
	StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (*minio.Object, error)
}

// Store implements source.Source for a MinIO bucket.
type Store struct {
	client Client
	bucket string
	prefix string
	open   func(ctx context.Context, key string) (io.ReadCloser, error)
}

var _ source.Source = (*Store)(nil)

// NewStore creates a store reading keys below prefix in bucket.
func NewStore(client Client, bucket, prefix string) *Store {
	s := &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
	s.open = func(ctx context.Context, key string) (io.ReadCloser, error) {
		obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return nil, err
		}

		return obj, nil
	}

	return s
}

// Dial connects to endpoint with static credentials.
func Dial(endpoint, accessKey, secretKey string, secure bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", endpoint, err)
	}

	return client, nil
}

// Open implements source.Source.
func (s *Store) Open(ctx context.Context, name string) ([]byte, error) {
	key, err := source.CleanName(s.prefix, name)
	if err != nil {
		return nil, err
	}

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, s.mapError(key, err)
	}

	obj, err := s.open(ctx, key)
	if err != nil {
		return nil, s.mapError(key, err)
	}
	defer func() { _ = obj.Close() }()

	var buf bytes.Buffer
	buf.Grow(int(info.Size))
	if _, err := buf.ReadFrom(obj); err != nil {
		return nil, s.mapError(key, err)
	}

	return buf.Bytes(), nil
}

func (s *Store) mapError(key string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.Code == "NotFound" {
		return fmt.Errorf("%w: %s/%s", errs.ErrFileNotFound, s.bucket, key)
	}

	return fmt.Errorf("%s/%s: %w", s.bucket, key, err)
}
