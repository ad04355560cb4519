package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/pkg/ctxutil"
)

//go:generate moq -out entity_controller_mock_test.go -pkg rest . entityController

type entityController[T any, P domain.EntityPtr[T]] interface {
	Kind() domain.Kind
	HardDelete() bool
	List(ctx context.Context) ([]P, error)
	Get(ctx context.Context, id int64) (P, error)
	Create(ctx context.Context, payload P) (P, error)
	ReplaceAll(ctx context.Context, id int64, body []byte) (P, bool, error)
	ApplyPatch(ctx context.Context, id int64, body []byte) (P, error)
	Delete(ctx context.Context, id int64) (P, error)
}

// EntityHandler serves the CRUD routes of one entity kind.
type EntityHandler[T any, P domain.EntityPtr[T]] struct {
	ctrl      entityController[T, P]
	log       *slog.Logger
	bodyLimit int64
	// ownedByCaller fills a missing parent reference with the caller's
	// user id on create.
	ownedByCaller bool
}

// NewEntityHandler creates a handler for ctrl's kind.
func NewEntityHandler[T any, P domain.EntityPtr[T]](ctrl entityController[T, P], logger *slog.Logger, bodyLimit int64) *EntityHandler[T, P] {
	return &EntityHandler[T, P]{
		ctrl:          ctrl,
		log:           logger.With("handler", ctrl.Kind().String()),
		bodyLimit:     bodyLimit,
		ownedByCaller: ctrl.Kind() == domain.KindProject,
	}
}

// Register mounts the six routes under /api/<plural>.
func (h *EntityHandler[T, P]) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	base := "/api/" + h.ctrl.Kind().Plural()
	mux.Handle("GET "+base, wrap(http.HandlerFunc(h.List)))
	mux.Handle("POST "+base, wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET "+base+"/{id}", wrap(http.HandlerFunc(h.Get)))
	mux.Handle("PUT "+base+"/{id}", wrap(http.HandlerFunc(h.Replace)))
	mux.Handle("PATCH "+base+"/{id}", wrap(http.HandlerFunc(h.Patch)))
	mux.Handle("DELETE "+base+"/{id}", wrap(http.HandlerFunc(h.Delete)))
}

// List handles GET /api/<plural>.
func (h *EntityHandler[T, P]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ctrl.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// Get handles GET /api/<plural>/{id}.
func (h *EntityHandler[T, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	entity, err := h.ctrl.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

// Create handles POST /api/<plural>.
func (h *EntityHandler[T, P]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r, h.bodyLimit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	payload := P(new(T))
	if err := json.Unmarshal(body, payload); err != nil {
		respondError(w, r, h.log, domain.NewValidationError("body", "must be a JSON object"))
		return
	}
	if h.ownedByCaller && payload.ParentRef() <= 0 {
		if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
			payload.SetParentRef(userID)
		}
	}

	created, err := h.ctrl.Create(r.Context(), payload)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Replace handles PUT /api/<plural>/{id}: 200 when the row existed, 201
// when it was created.
func (h *EntityHandler[T, P]) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	body, err := readBody(w, r, h.bodyLimit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entity, created, err := h.ctrl.ReplaceAll(r.Context(), id, body)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, entity)
}

// Patch handles PATCH /api/<plural>/{id}.
func (h *EntityHandler[T, P]) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	body, err := readBody(w, r, h.bodyLimit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entity, err := h.ctrl.ApplyPatch(r.Context(), id, body)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

// Delete handles DELETE /api/<plural>/{id}. Soft deletes answer with the
// retired entity, hard deletes with 204.
func (h *EntityHandler[T, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	removed, err := h.ctrl.Delete(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if h.ctrl.HardDelete() || removed == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, removed)
}

// Children serves a nested listing such as GET /api/projects/{id}/epics.
func Children[P any](logger *slog.Logger, list func(ctx context.Context, parentID int64) ([]P, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			respondError(w, r, logger, err)
			return
		}
		rows, err := list(r.Context(), id)
		if err != nil {
			respondError(w, r, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
