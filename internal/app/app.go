// Package app wires configuration, storage, services and transport into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/planboard-backend/internal/adapter/blob"
	"github.com/heartmarshall/planboard-backend/internal/adapter/image"
	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb"
	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb/store"
	"github.com/heartmarshall/planboard-backend/internal/auth"
	"github.com/heartmarshall/planboard-backend/internal/config"
	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/internal/event"
	"github.com/heartmarshall/planboard-backend/internal/metrics"
	authsvc "github.com/heartmarshall/planboard-backend/internal/service/auth"
	"github.com/heartmarshall/planboard-backend/internal/service/codes"
	"github.com/heartmarshall/planboard-backend/internal/service/hierarchy"
	"github.com/heartmarshall/planboard-backend/internal/service/lifecycle"
	"github.com/heartmarshall/planboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/planboard-backend/internal/transport/rest"
)

// App holds the wired application.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *sqldb.DB
	bus     *event.Bus
	metrics *metrics.Metrics
	jwt     *auth.JWTManager
	users   *store.Users
	svc     *lifecycle.Service
	handler http.Handler
}

// New opens the database and builds every component. The caller owns the
// returned App and must Close it.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	db, err := sqldb.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		m, err := sqldb.NewMigrator(db, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if err := m.Up(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	blobs, err := blob.Open(ctx, cfg.Images)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open image storage: %w", err)
	}

	a := &App{
		cfg:     cfg,
		log:     log,
		db:      db,
		bus:     event.NewBus(log, cfg.Events.SubscriberBuffer),
		metrics: metrics.New(),
		jwt:     auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		users:   store.NewUsers(db),
	}
	a.metrics.WatchBus(a.bus)
	a.svc = a.newService(blobs)
	a.handler = a.newHandler(blobs)

	log.InfoContext(ctx, "application wired",
		slog.String("database", cfg.Database.Driver),
		slog.String("images", blobs.Driver()),
		slog.Bool("auth_required", cfg.Auth.Required),
		slog.Bool("events", cfg.Events.Enabled),
	)
	return a, nil
}

func (a *App) newService(blobs blob.Store) *lifecycle.Service {
	projects := store.New[domain.Project](a.db, store.Projects)
	epics := store.New[domain.Epic](a.db, store.Epics)
	stories := store.New[domain.Story](a.db, store.Stories)
	mockups := store.New[domain.Mockup](a.db, store.Mockups)
	assertions := store.New[domain.Assertion](a.db, store.Assertions)
	interactions := store.New[domain.Interaction](a.db, store.Interactions)

	tree := hierarchy.NewLoader(
		hierarchy.SourceOf[domain.Project](projects),
		hierarchy.SourceOf[domain.Epic](epics),
		hierarchy.SourceOf[domain.Story](stories),
		hierarchy.SourceOf[domain.Mockup](mockups),
		hierarchy.SourceOf[domain.Assertion](assertions),
		hierarchy.SourceOf[domain.Interaction](interactions),
	)

	return lifecycle.NewService(a.log, lifecycle.Stores{
		Projects:     projects,
		Epics:        epics,
		Stories:      stories,
		Mockups:      mockups,
		Assertions:   assertions,
		Interactions: interactions,
	}, lifecycle.Deps{
		Users:    a.users,
		Codes:    codes.NewAssigner(store.NewSequences(a.db)),
		Tree:     tree,
		Tx:       sqldb.NewTxManager(a.db.SQL),
		Images:   image.NewStore(blobs, a.cfg.Images.PublicPrefix, a.cfg.Images.MaxBytes, a.metrics),
		Events:   a.bus,
		Observer: a.metrics,
	})
}

func (a *App) newHandler(blobs blob.Store) http.Handler {
	cfg := a.cfg

	routes := rest.RouterConfig{
		Log:       a.log,
		Service:   a.svc,
		BodyLimit: bodyLimit(cfg.Images.MaxBytes),
		Health:    rest.NewHealthHandler(BuildVersion(), rest.Check{Name: "database", Ping: a.db.Ping}),
		Auth:      rest.NewAuthHandler(authsvc.NewService(a.log, a.users, a.jwt), a.log),
		Users:     rest.NewUsersHandler(a.users, a.log),
	}
	if cfg.Auth.Required {
		routes.Guard = middleware.RequireUser
	}
	if cfg.Events.Enabled {
		routes.Events = rest.NewEventsHandler(a.bus, originHosts(cfg.CORS.Origins()), a.log)
	}
	if strings.HasPrefix(cfg.Images.PublicPrefix, "/") {
		routes.Images = rest.NewImagesHandler(blobs, a.log)
		routes.ImagesPrefix = strings.TrimRight(cfg.Images.PublicPrefix, "/")
	}
	if cfg.Metrics.Enabled {
		routes.Metrics = a.metrics.Handler()
		routes.MetricsPath = cfg.Metrics.Path
	}

	return middleware.Chain(
		middleware.Recovery(a.log),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(a.jwt),
		middleware.Logger(a.log),
		middleware.Metrics(a.metrics),
	)(rest.NewRouter(routes))
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Service returns the lifecycle service.
func (a *App) Service() *lifecycle.Service { return a.svc }

// Users returns the user repository.
func (a *App) Users() *store.Users { return a.users }

// Close releases the database handle.
func (a *App) Close() error { return a.db.Close() }

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout. Open event streams are ended first.
func (a *App) Serve(ctx context.Context) error {
	sc := a.cfg.Server

	baseCtx, cancelBase := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelBase()

	srv := &http.Server{
		Addr:              net.JoinHostPort(sc.Host, strconv.Itoa(sc.Port)),
		Handler:           a.handler,
		ReadHeaderTimeout: sc.ReadTimeout,
		ReadTimeout:       sc.ReadTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
		ErrorLog:          slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down http server")
	cancelBase()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sc.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Run wires cfg, serves until ctx ends and closes everything on the way out.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close() //nolint:errcheck

	return a.Serve(ctx)
}

// bodyLimit leaves room for a base64 encoded image of maxImage bytes plus
// the surrounding JSON.
func bodyLimit(maxImage int64) int64 {
	return maxImage/3*4 + 4 + 64<<10
}

// originHosts turns CORS origins into websocket origin patterns, which
// match on host only.
func originHosts(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o == "*" {
			out = append(out, "*")
			continue
		}
		if u, err := url.Parse(o); err == nil && u.Host != "" {
			out = append(out, u.Host)
			continue
		}
		out = append(out, o)
	}
	return out
}
