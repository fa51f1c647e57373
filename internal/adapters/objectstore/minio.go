// Package objectstore persists rendered documents in an S3-compatible bucket.
package objectstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"readiness/internal/domain"
	"readiness/internal/ports"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

// Enabled reports whether enough is configured to reach a bucket.
func (c Config) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// Client is the subset of *minio.Client used here.
type Client interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

type Store struct {
	client  Client
	bucket  string
	baseURL string
}

var _ ports.ObjectStore = (*Store)(nil)

func New(cfg Config) (*Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return NewWithClient(client, cfg), nil
}

func NewWithClient(client Client, cfg Config) *Store {
	return &Store{client: client, bucket: cfg.Bucket, baseURL: publicBase(cfg)}
}

// publicBase is where objects are served from: the configured public URL, or
// path-style addressing on the endpoint.
func publicBase(cfg Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
}

// EnsureBucket creates the bucket if it does not exist yet.
func (s *Store) EnsureBucket(ctx context.Context) error {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return domain.Upstream("objectstore.EnsureBucket", err)
	}
	if ok {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return domain.Upstream("objectstore.EnsureBucket", err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", domain.Upstream("objectstore.Put", err)
	}
	return s.baseURL + "/" + escapeKey(key), nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// Disabled is used when no bucket is configured; every Put fails so callers
// fall back to attachment-only delivery.
type Disabled struct{}

var errDisabled = errors.New("object storage not configured")

func (Disabled) Put(context.Context, string, string, []byte) (string, error) {
	return "", domain.Upstream("objectstore.Put", errDisabled)
}
