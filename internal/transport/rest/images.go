package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/planboard-backend/internal/adapter/blob"
)

type blobReader interface {
	Get(ctx context.Context, key string) (io.ReadCloser, blob.Info, error)
}

// ImagesHandler serves stored mockup images.
type ImagesHandler struct {
	blobs blobReader
	log   *slog.Logger
}

// NewImagesHandler creates an ImagesHandler.
func NewImagesHandler(blobs blobReader, logger *slog.Logger) *ImagesHandler {
	return &ImagesHandler{blobs: blobs, log: logger.With("handler", "images")}
}

// Serve handles GET <prefix>/{key...}.
func (h *ImagesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key, err := blob.CleanKey(r.PathValue("key"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	body, info, err := h.blobs.Get(r.Context(), key)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	defer body.Close()

	if info.ContentType != "" {
		w.Header().Set("Content-Type", info.ContentType)
	}
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	// keys embed a timestamp and a random suffix, so content never changes
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, body); err != nil {
		h.log.DebugContext(r.Context(), "image copy aborted", slog.String("key", key), slog.String("error", err.Error()))
	}
}
