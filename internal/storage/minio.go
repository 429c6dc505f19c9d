package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"movieapi/internal/config"
)

// objectClient is the subset of *minio.Client used by minioStorage.
type objectClient interface {
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// minioStorage implements the Storage interface using an S3-compatible backend (MinIO, AWS S3, etc.).
// It is safe for concurrent use by multiple goroutines.
type minioStorage struct {
	client  objectClient
	bucket  string
	baseURL *url.URL
}

// NewMinIO creates a new S3-compatible storage client backed by MinIO.
// It validates connectivity and ensures the bucket exists (creates it if missing).
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("minio credentials are required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket is required")
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	base, err := publicBaseURL(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Ensure bucket exists.
	exists, err := cli.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := cli.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &minioStorage{client: cli, bucket: cfg.Bucket, baseURL: base}, nil
}

// publicBaseURL returns the URL poster links are built from: PublicBaseURL when set,
// otherwise the endpoint with a scheme derived from UseSSL.
func publicBaseURL(cfg config.MinIOConfig) (*url.URL, error) {
	raw := cfg.PublicBaseURL
	if raw == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		raw = scheme + "://" + cfg.Endpoint
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid poster base url: %w", err)
	}
	return u, nil
}

// Put uploads an object using streaming I/O only (no local disk).
// Without opt.Overwrite an existing key yields ErrObjectExists and nothing is written.
func (m *minioStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if !opt.Overwrite {
		if err := m.ensureAbsent(ctx, key); err != nil {
			return ObjectInfo{}, err
		}
	}

	putOpts := minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	}
	if !opt.Overwrite {
		// If-None-Match closes the window between stat and put on servers that honor it.
		putOpts.SetMatchETagExcept("*")
	}
	info, err := m.client.PutObject(ctx, m.bucket, key, r, opt.Size, putOpts)
	if err != nil {
		if isPreconditionFailed(err) {
			return ObjectInfo{}, fmt.Errorf("%s/%s: %w", m.bucket, key, ErrObjectExists)
		}
		return ObjectInfo{}, err
	}
	return ObjectInfo{
		Key:         key,
		Size:        info.Size,
		ETag:        info.ETag,
		ContentType: opt.ContentType,
		URL:         m.objectURL(key),
		Metadata:    opt.Metadata,
	}, nil
}

func (m *minioStorage) ensureAbsent(ctx context.Context, key string) error {
	_, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return fmt.Errorf("%s/%s: %w", m.bucket, key, ErrObjectExists)
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return nil
	}
	return fmt.Errorf("stat object: %w", err)
}

func isPreconditionFailed(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "PreconditionFailed" || resp.StatusCode == http.StatusPreconditionFailed
}

// Delete removes an object by key.
func (m *minioStorage) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func (m *minioStorage) objectURL(key string) string {
	return m.baseURL.JoinPath(m.bucket, key).String()
}
