// Package s3blob stores encrypted record attachments in an S3 bucket, keyed by
// the SHA-256 of the stored bytes.
package s3blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"health-record-vault/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectAPI is the part of *s3.Client the store uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// BlobStore implements ports.BlobStore and ports.HealthChecker.
type BlobStore struct {
	client ObjectAPI
	bucket string
	prefix string
}

// NewClient builds an S3 client from the default AWS credential chain.
// A custom endpoint (MinIO, LocalStack) switches to path-style addressing.
func NewClient(ctx context.Context, cfg config.BlobConfig, log zerolog.Logger) (*s3.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Msg("S3 attachment store configured")
	return client, nil
}

// NewBlobStore creates a store writing under prefix in bucket.
func NewBlobStore(client ObjectAPI, bucket, prefix string) *BlobStore {
	return &BlobStore{client: client, bucket: bucket, prefix: prefix}
}

func (b *BlobStore) key(contentID string) string {
	return b.prefix + contentID
}

// Store uploads blob and returns its content id. Storing the same bytes
// twice yields the same id.
func (b *BlobStore) Store(ctx context.Context, blob []byte) (string, error) {
	sum := sha256.Sum256(blob)
	contentID := hex.EncodeToString(sum[:])

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(b.key(contentID)),
		Body:          bytes.NewReader(blob),
		ContentLength: aws.Int64(int64(len(blob))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", contentID, err)
	}
	return contentID, nil
}

// Retrieve downloads the blob and checks it still hashes to contentID.
func (b *BlobStore) Retrieve(ctx context.Context, contentID string) ([]byte, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key(contentID)),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s: %w", contentID, err)
	}
	defer out.Body.Close()

	blob, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read %s: %w", contentID, err)
	}

	sum := sha256.Sum256(blob)
	if hex.EncodeToString(sum[:]) != contentID {
		return nil, fmt.Errorf("s3 object %s does not match its content id", contentID)
	}
	return blob, nil
}

// Ping checks that the bucket is reachable.
func (b *BlobStore) Ping(ctx context.Context) error {
	_, err := b.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(b.bucket)})
	return err
}

// Name returns the dependency name.
func (b *BlobStore) Name() string {
	return "s3"
}
