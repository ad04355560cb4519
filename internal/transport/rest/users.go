package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/pkg/ctxutil"
)

//go:generate moq -out user_reader_mock_test.go -pkg rest . userReader

type userReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// UsersHandler serves the caller's own account.
type UsersHandler struct {
	users userReader
	log   *slog.Logger
}

// NewUsersHandler creates a UsersHandler.
func NewUsersHandler(users userReader, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{users: users, log: logger.With("handler", "users")}
}

// Me handles GET /api/users/me.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		respondError(w, r, h.log, domain.ErrUnauthorized)
		return
	}

	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	})
}
