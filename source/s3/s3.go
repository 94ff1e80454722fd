// Package s3 reads metric files from Amazon S3.
//
// Keys are built by joining the store prefix with the slash separated file
// name, so a run folder uploaded under "runs/230101_M00001" is read with:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "sequencing", "runs/230101_M00001")
//	set, err := interop.ReadFrom(ctx, store, encoding.Tile, "InterOp/TileMetricsOut.bin")
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/arloliu/interop/errs"
	"github.com/arloliu/interop/source"
)

// Client is the subset of the S3 API used by Store.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store implements source.Source for an S3 bucket.
type Store struct {
	client  Client
	bucket  string
	prefix  string
	maxSize int64
}

var _ source.Source = (*Store)(nil)

// NewStore creates a store reading keys below prefix in bucket.
func NewStore(client Client, bucket, prefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// NewStoreFromEnv creates a store using the default AWS configuration chain.
func NewStoreFromEnv(ctx context.Context, bucket, prefix string) (*Store, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewStore(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// WithMaxSize rejects objects larger than n bytes with ErrBufferOverflow.
// Zero disables the check.
func (s *Store) WithMaxSize(n int64) *Store {
	s.maxSize = n
	return s
}

// Open implements source.Source.
func (s *Store) Open(ctx context.Context, name string) ([]byte, error) {
	key, err := source.CleanName(s.prefix, name)
	if err != nil {
		return nil, err
	}

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.mapError(key, err)
	}

	size := aws.ToInt64(head.ContentLength)
	if s.maxSize > 0 && size > s.maxSize {
		return nil, fmt.Errorf("%w: s3://%s/%s is %d bytes, limit %d", errs.ErrBufferOverflow, s.bucket, key, size, s.maxSize)
	}

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, s.mapError(key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var buf bytes.Buffer
	buf.Grow(int(size))
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, err)
	}

	return buf.Bytes(), nil
}

func (s *Store) mapError(key string, err error) error {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: s3://%s/%s", errs.ErrFileNotFound, s.bucket, key)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: s3://%s/%s", errs.ErrFileNotFound, s.bucket, key)
	}

	return fmt.Errorf("s3://%s/%s: %w", s.bucket, key, err)
}
