package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/internal/service/patch"
)

const (
	imageOp     = "/image"
	imagePathOp = "/imagePath"
)

// mockupPolicy stores inbound images through the image collaborator and
// keeps only the resulting path on the mockup. A stored image is removed
// again when the write it belongs to fails.
func mockupPolicy(images imageStore, log *slog.Logger) Policy[domain.Mockup, *domain.Mockup] {
	return Policy[domain.Mockup, *domain.Mockup]{
		Prepare: func(ctx context.Context, m *domain.Mockup, creating bool) (Undo, error) {
			if m.Image == "" {
				if creating {
					return nil, domain.NewValidationError("image", "required")
				}
				return nil, nil
			}
			// url must hold before the image is stored
			if strings.TrimSpace(m.URL) == "" {
				return nil, domain.NewValidationError("url", "required")
			}

			path, err := storeImage(ctx, images, m.Image, m.StoryID)
			if err != nil {
				return nil, err
			}
			m.ImagePath = path
			m.Image = ""
			return discardImage(images, log, path), nil
		},
		RewritePatch: func(ctx context.Context, m *domain.Mockup, ops []patch.Replace) ([]patch.Replace, Undo, error) {
			return rewriteImageOp(ctx, images, log, m, ops)
		},
	}
}

// rewriteImageOp swaps a /image operation for a /imagePath operation at the
// same position that points at the stored image.
func rewriteImageOp(ctx context.Context, images imageStore, log *slog.Logger, m *domain.Mockup, ops []patch.Replace) ([]patch.Replace, Undo, error) {
	idx, pathIdx := -1, -1
	for i, op := range ops {
		switch op.Path {
		case imageOp:
			if idx >= 0 {
				return nil, nil, &domain.PatchError{Index: i, Op: patch.OpReplace, Path: op.Path, Reason: "image given more than once"}
			}
			idx = i
		case imagePathOp:
			pathIdx = i
		}
	}
	if idx < 0 {
		return ops, nil, nil
	}
	if pathIdx >= 0 {
		return nil, nil, &domain.PatchError{Index: pathIdx, Op: patch.OpReplace, Path: imagePathOp, Reason: "conflicts with image"}
	}

	var uri string
	if err := json.Unmarshal(ops[idx].Value, &uri); err != nil || uri == "" {
		return nil, nil, &domain.PatchError{Index: idx, Op: patch.OpReplace, Path: ops[idx].Path, Reason: "must be a data URI string"}
	}

	path, err := storeImage(ctx, images, uri, m.StoryID)
	if err != nil {
		return nil, nil, err
	}
	undo := discardImage(images, log, path)
	replaced, err := patch.NewReplace(imagePathOp, path)
	if err != nil {
		undo.revert(ctx, true)
		return nil, nil, err
	}

	out := slices.Clone(ops)
	out[idx] = replaced
	return out, undo, nil
}

func storeImage(ctx context.Context, images imageStore, dataURI string, storyID int64) (string, error) {
	path, err := images.Store(ctx, dataURI, "story-"+strconv.FormatInt(storyID, 10))
	if err != nil {
		return "", fmt.Errorf("store mockup image: %w", err)
	}
	return path, nil
}

// discardImage removes a stored image no row refers to. Failures are only
// logged; the caller already reports the original error.
func discardImage(images imageStore, log *slog.Logger, path string) Undo {
	return func(ctx context.Context) {
		if err := images.Remove(ctx, path); err != nil {
			log.WarnContext(ctx, "discard mockup image failed",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
		}
	}
}
