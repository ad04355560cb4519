// Package image decodes data-URI images and keeps them in a blob store.
package image

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/planboard-backend/internal/adapter/blob"
	"github.com/heartmarshall/planboard-backend/internal/domain"
)

//go:generate moq -out observer_mock_test.go -pkg image . observer

type observer interface {
	ObserveImageStore(d time.Duration, size int64, err error)
}

// extensions lists the accepted media types.
var extensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/gif":     "gif",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

var hintPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Store turns data URIs into stored objects and returns the public path of
// each one.
type Store struct {
	blobs    blob.Store
	prefix   string
	maxBytes int64
	observer observer
	now      func() time.Time
}

func NewStore(blobs blob.Store, publicPrefix string, maxBytes int64, obs observer) *Store {
	return &Store{
		blobs:    blobs,
		prefix:   strings.TrimRight(publicPrefix, "/"),
		maxBytes: maxBytes,
		observer: obs,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Store decodes dataURI and writes it under mockups/<hint>/. Malformed or
// oversized input is a validation error on the image field; a failing
// blob store is a collaborator error.
func (s *Store) Store(ctx context.Context, dataURI, hint string) (publicPath string, err error) {
	start := s.now()
	var size int64
	defer func() { s.observer.ObserveImageStore(s.now().Sub(start), size, err) }()

	mediaType, data, err := s.decode(dataURI)
	if err != nil {
		return "", err
	}
	size = int64(len(data))

	if !hintPattern.MatchString(hint) {
		return "", fmt.Errorf("image hint %q: %w", hint, domain.ErrValidation)
	}

	key := s.key(hint, extensions[mediaType])
	if err := s.blobs.Put(ctx, key, bytes.NewReader(data), mediaType); err != nil {
		return "", domain.NewCollaboratorError("images", err)
	}
	return s.prefix + "/" + key, nil
}

// Remove deletes the object behind a public path returned by Store.
func (s *Store) Remove(ctx context.Context, publicPath string) error {
	key, ok := strings.CutPrefix(publicPath, s.prefix+"/")
	if !ok || key == "" {
		return fmt.Errorf("image path %q: %w", publicPath, domain.ErrValidation)
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		return domain.NewCollaboratorError("images", err)
	}
	return nil
}

func (s *Store) key(hint, ext string) string {
	stamp := s.now().Format("20060102T150405.000Z")
	return path.Join("mockups", hint, stamp+"-"+uuid.NewString()[:8]+"."+ext)
}

// decode parses data:<media type>;base64,<payload>.
func (s *Store) decode(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "data:")
	if !ok {
		return "", nil, domain.NewValidationError("image", "must be a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, domain.NewValidationError("image", "must be a data URI")
	}
	mediaType, encoding, _ := strings.Cut(meta, ";")
	mediaType = strings.ToLower(mediaType)
	if encoding != "base64" {
		return "", nil, domain.NewValidationError("image", "must be base64 encoded")
	}
	if _, ok := extensions[mediaType]; !ok {
		return "", nil, domain.NewValidationError("image", "unsupported media type "+mediaType)
	}

	if s.maxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(payload))) > s.maxBytes+2 {
		return "", nil, domain.NewValidationError("image", "too large")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, domain.NewValidationError("image", "invalid base64 payload")
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return "", nil, domain.NewValidationError("image", "too large")
	}
	if len(data) == 0 {
		return "", nil, domain.NewValidationError("image", "empty")
	}
	return mediaType, data, nil
}
