package minio

import (
	"context"
	"os"
	"testing"

	"github.com/hupe1980/sparsego/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to a MinIO instance described by the
// MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY environment
// variables; without them the test is skipped.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
	})
	require.NoError(t, err)

	ctx := context.Background()
	bucket := "sparsego-test"
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}
	return NewStore(client, bucket, "snapshots/")
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := []byte("yale snapshot payload")
	require.NoError(t, store.Put(ctx, "m1", payload))
	defer func() { _ = store.Delete(ctx, "m1") }()

	blob, err := store.Open(ctx, "m1")
	require.NoError(t, err)
	defer blob.Close()

	assert.Equal(t, int64(len(payload)), blob.Size())

	buf := make([]byte, len(payload))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, payload, buf[:n])

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "m1")
}

func TestStoreOpenMissing(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Open(context.Background(), "does-not-exist")
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}
