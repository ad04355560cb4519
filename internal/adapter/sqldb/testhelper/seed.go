package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb"
)

// SeedUser inserts a user row and returns its id.
func SeedUser(t *testing.T, db *sqldb.DB) int64 {
	t.Helper()

	now := time.Now().UTC()
	email := "user-" + uuid.New().String()[:8] + "@example.com"

	var id int64
	err := db.SQL.QueryRowContext(context.Background(), db.Dialect.Rebind(
		`INSERT INTO users (name, email, role, provider, password_hash, created_at, updated_at)
		 VALUES (?, ?, 'user', 'local', '', ?, ?) RETURNING id`),
		"Test User", email, now, now,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return id
}
