// Package blob stores opaque objects under slash separated keys on the
// local filesystem, in S3 compatible buckets or in memory.
package blob

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/heartmarshall/planboard-backend/internal/config"
	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Info describes a stored object.
type Info struct {
	Key         string
	ContentType string
	Size        int64
}

// Store is implemented by every driver.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, Info, error)
	Delete(ctx context.Context, key string) error
	Driver() string
}

// Open builds the driver selected by cfg.
func Open(ctx context.Context, cfg config.ImagesConfig) (Store, error) {
	switch cfg.Driver {
	case config.ImagesFS:
		return NewFS(cfg.Root)
	case config.ImagesS3:
		return NewS3(ctx, S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3UsePathStyle,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case config.ImagesMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("blob: unknown driver %q", cfg.Driver)
	}
}

// CleanKey rejects keys that are empty, absolute or escape the store root.
func CleanKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("blob: empty key: %w", domain.ErrValidation)
	}
	if strings.HasPrefix(key, "/") || strings.Contains(key, "..") || strings.Contains(key, `\`) {
		return "", fmt.Errorf("blob: invalid key %q: %w", key, domain.ErrValidation)
	}
	return path.Clean(key), nil
}

func notFound(key string) error {
	return fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
}
