package s3blob

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	"health-record-vault/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.BlobStore     = (*BlobStore)(nil)
	_ ports.HealthChecker = (*BlobStore)(nil)
)

// mockS3Client keeps objects in a map keyed by bucket/key.
type mockS3Client struct {
	objects map[string][]byte
	putErr  error
	headErr error
}

func newMockS3Client() *mockS3Client {
	return &mockS3Client{objects: make(map[string][]byte)}
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	m.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := m.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (m *mockS3Client) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	return &s3.HeadBucketOutput{}, m.headErr
}

func TestBlobStore_StoreAndRetrieve(t *testing.T) {
	client := newMockS3Client()
	store := NewBlobStore(client, "phi-attachments", "records/")
	ctx := context.Background()
	blob := []byte(`{"ciphertext":"AAEC","version":1}`)

	id, err := store.Store(ctx, blob)
	require.NoError(t, err)

	sum := sha256.Sum256(blob)
	assert.Equal(t, hex.EncodeToString(sum[:]), id)
	assert.Contains(t, client.objects, "phi-attachments/records/"+id)

	got, err := store.Retrieve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, blob, got)
}

func TestBlobStore_RetrieveDetectsTampering(t *testing.T) {
	client := newMockS3Client()
	store := NewBlobStore(client, "b", "")
	ctx := context.Background()

	id, err := store.Store(ctx, []byte("original"))
	require.NoError(t, err)
	client.objects["b/"+id] = []byte("swapped")

	_, err = store.Retrieve(ctx, id)
	assert.ErrorContains(t, err, "does not match")
}

func TestBlobStore_Errors(t *testing.T) {
	client := newMockS3Client()
	client.putErr = errors.New("AccessDenied")
	store := NewBlobStore(client, "b", "")
	ctx := context.Background()

	_, err := store.Store(ctx, []byte("x"))
	assert.ErrorContains(t, err, "AccessDenied")

	_, err = store.Retrieve(ctx, "missing")
	assert.ErrorContains(t, err, "NoSuchKey")
}

func TestBlobStore_Ping(t *testing.T) {
	client := newMockS3Client()
	store := NewBlobStore(client, "b", "")

	assert.Equal(t, "s3", store.Name())
	assert.NoError(t, store.Ping(context.Background()))

	client.headErr = errors.New("NotFound")
	assert.Error(t, store.Ping(context.Background()))
}
