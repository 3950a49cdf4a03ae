package minio_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/adapters/storage/minio"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/config"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
	testBucket    = "test-bucket"
)

func setupContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     testAccessKey,
			"MINIO_ROOT_PASSWORD": testSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}
	minioContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := minioContainer.Host(ctx)
	require.NoError(t, err)

	port, err := minioContainer.MappedPort(ctx, "9000")
	require.NoError(t, err)

	endpoint := fmt.Sprintf("%s:%s", host, port.Port())

	cleanup := func() {
		if err := minioContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	time.Sleep(500 * time.Millisecond) // wait for container to be up
	return endpoint, cleanup
}

func createAdapter(t *testing.T, endpoint string, ctx context.Context) *minio.Adapter {
	t.Helper()
	cfg := config.MinioConfig{
		Endpoint:   endpoint,
		AccessKey:  testAccessKey,
		SecretKey:  testSecretKey,
		BucketName: testBucket,
		UseSSL:     false,
	}

	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	adapter, err := minio.NewAdapter(ctx, cfg, discardLogger)

	require.NoError(t, err)
	require.NotNil(t, adapter)

	return adapter
}

func TestPutAndGet(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	key := "blobs/hello.txt"
	payload := []byte("Hello Webstack!\n")

	// Act
	err := adapter.Put(ctx, key, payload, "text/plain")
	require.NoError(t, err)

	reader, err := adapter.Get(ctx, key)

	// Assert
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestPutOverwritesExisting(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	key := "blobs/variant_250"
	require.NoError(t, adapter.Put(ctx, key, []byte("first pass"), "image/png"))

	// Act
	err := adapter.Put(ctx, key, []byte("second pass"), "image/png")

	// Assert
	require.NoError(t, err)

	reader, err := adapter.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("second pass"), got)
}

func TestGetMissingKey(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	// Act
	reader, err := adapter.Get(ctx, "blobs/never-written")

	// Assert
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrBlobNotFound))
	assert.Nil(t, reader)
}

func TestExists(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()
	adapter := createAdapter(t, endpoint, ctx)

	key := "blobs/present"
	require.NoError(t, adapter.Put(ctx, key, []byte("x"), "application/octet-stream"))

	// Act
	present, err := adapter.Exists(ctx, key)
	require.NoError(t, err)

	absent, err2 := adapter.Exists(ctx, "blobs/absent")
	require.NoError(t, err2)

	// Assert
	assert.True(t, present)
	assert.False(t, absent)
}

func TestNewAdapterCreatesBucket(t *testing.T) {
	// Arrange
	endpoint, cleanup := setupContainer(t)
	defer cleanup()
	ctx := context.Background()

	// Act - two adapters on the same bucket, the second must not fail on MakeBucket
	first := createAdapter(t, endpoint, ctx)
	second := createAdapter(t, endpoint, ctx)

	// Assert
	require.NoError(t, first.Put(ctx, "a", []byte("a"), "text/plain"))

	reader, err := second.Get(ctx, "a")
	require.NoError(t, err)
	defer reader.Close()
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)
}
