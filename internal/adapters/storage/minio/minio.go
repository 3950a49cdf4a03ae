package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bcart01v/atlas-atlas-files-manager/internal/config"
	"github.com/bcart01v/atlas-atlas-files-manager/internal/core/port"
)

// Adapter is a blob storage adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter connects to minio and ensures the bucket exists
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Put writes a payload under the given key, overwriting any existing object.
// The overwrite is what keeps thumbnail regeneration idempotent.
func (a *Adapter) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := minio.PutObjectOptions{ContentType: contentType}

	_, err := a.client.PutObject(ctx, a.config.BucketName, key, bytes.NewReader(data), int64(len(data)), opts)
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}

// Get retrieves an object. Existence is verified up front: minio reads are
// lazy and would otherwise only fail on the first Read.
func (a *Adapter) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if _, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{}); err != nil {
		return nil, a.wrapStatErr(key, err)
	}

	object, err := a.client.GetObject(ctx, a.config.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return object, nil
}

// Exists reports whether an object is present under the key
func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.client.StatObject(ctx, a.config.BucketName, key, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s: %w", key, err)
	}
	return true, nil
}

func (a *Adapter) wrapStatErr(key string, err error) error {
	if isNoSuchKey(err) {
		return fmt.Errorf("%s: %w", key, port.ErrBlobNotFound)
	}
	return fmt.Errorf("failed to stat object %s: %w", key, err)
}

func isNoSuchKey(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey"
}
