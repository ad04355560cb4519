package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/internal/service/lifecycle"
	"github.com/heartmarshall/planboard-backend/internal/transport/middleware"
)

// RouterConfig collects what NewRouter mounts. Nil handlers are skipped.
type RouterConfig struct {
	Log       *slog.Logger
	Service   *lifecycle.Service
	BodyLimit int64

	Health *HealthHandler
	Auth   *AuthHandler
	Users  *UsersHandler
	Events *EventsHandler
	Images *ImagesHandler

	ImagesPrefix string
	Metrics      http.Handler
	MetricsPath  string

	// Guard wraps every /api route except login and the events stream.
	Guard middleware.Middleware
}

// NewRouter builds the route table.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	guard := cfg.Guard
	if guard == nil {
		guard = func(h http.Handler) http.Handler { return h }
	}

	mux := http.NewServeMux()

	if cfg.Health != nil {
		mux.HandleFunc("GET /live", cfg.Health.Live)
		mux.HandleFunc("GET /ready", cfg.Health.Ready)
		mux.HandleFunc("GET /health", cfg.Health.Health)
	}
	if cfg.Metrics != nil && cfg.MetricsPath != "" {
		mux.Handle("GET "+cfg.MetricsPath, cfg.Metrics)
	}
	if cfg.Auth != nil {
		mux.HandleFunc("POST /api/auth/login", cfg.Auth.Login)
	}
	if cfg.Users != nil {
		mux.Handle("GET /api/users/me", guard(http.HandlerFunc(cfg.Users.Me)))
	}
	if cfg.Events != nil {
		mux.Handle("GET /events", guard(http.HandlerFunc(cfg.Events.Stream)))
	}
	if cfg.Images != nil && cfg.ImagesPrefix != "" {
		mux.HandleFunc("GET "+cfg.ImagesPrefix+"/{key...}", cfg.Images.Serve)
	}

	if svc := cfg.Service; svc != nil {
		registerEntities(mux, svc, cfg.Log, cfg.BodyLimit, guard)
	}

	return mux
}

func registerEntities(mux *http.ServeMux, svc *lifecycle.Service, log *slog.Logger, limit int64, guard middleware.Middleware) {
	NewEntityHandler[domain.Project](svc.Projects, log, limit).Register(mux, guard)
	NewEntityHandler[domain.Epic](svc.Epics, log, limit).Register(mux, guard)
	NewEntityHandler[domain.Story](svc.Stories, log, limit).Register(mux, guard)
	NewEntityHandler[domain.Mockup](svc.Mockups, log, limit).Register(mux, guard)
	NewEntityHandler[domain.Assertion](svc.Assertions, log, limit).Register(mux, guard)
	NewEntityHandler[domain.Interaction](svc.Interactions, log, limit).Register(mux, guard)

	nested := log.With("handler", "nested")
	mux.Handle("GET /api/users/{id}/projects", guard(Children(nested, svc.ProjectsOf)))
	mux.Handle("GET /api/projects/{id}/epics", guard(Children(nested, svc.EpicsOf)))
	mux.Handle("GET /api/epics/{id}/stories", guard(Children(nested, svc.StoriesOf)))
	mux.Handle("GET /api/stories/{id}/assertions", guard(Children(nested, svc.AssertionsOf)))
	mux.Handle("GET /api/stories/{id}/mockups", guard(Children(nested, svc.MockupsOf)))
	mux.Handle("GET /api/mockups/{id}/interactions", guard(Children(nested, svc.InteractionsOf)))
}
