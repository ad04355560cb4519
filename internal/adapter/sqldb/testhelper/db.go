package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb"
	"github.com/heartmarshall/planboard-backend/internal/config"
)

// SetupSQLite opens a migrated SQLite database in a temp dir. Every test
// gets its own file.
func SetupSQLite(t *testing.T) *sqldb.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "planboard.db")
	return open(t, config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dsn})
}

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupPostgres starts a shared PostgreSQL container (once for the entire
// test run), applies migrations, and returns a handle connected to it.
// Skipped under -short.
func SetupPostgres(t *testing.T) *sqldb.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("postgres integration test skipped in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = startContainer()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	return open(t, config.DatabaseConfig{
		Driver:   config.DriverPostgres,
		DSN:      sharedDSN,
		MaxConns: 4,
	})
}

func open(t *testing.T, cfg config.DatabaseConfig) *sqldb.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sqldb.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: open %s: %v", cfg.Driver, err)
	}
	t.Cleanup(func() { _ = db.Close() })

	m, err := sqldb.NewMigrator(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("testhelper: migrator: %v", err)
	}
	if err := m.Up(ctx); err != nil {
		t.Fatalf("testhelper: migrate: %v", err)
	}
	return db
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "planboard",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/planboard?sslmode=disable", host, port.Port()), nil
}
