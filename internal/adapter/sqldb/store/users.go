package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb"
	"github.com/heartmarshall/planboard-backend/internal/domain"
)

var userColumns = []string{"id", "name", "email", "role", "provider", "password_hash", "created_at", "updated_at"}

// Users reads and writes project owners.
type Users struct {
	db *sqldb.DB
}

func NewUsers(db *sqldb.DB) *Users {
	return &Users{db: db}
}

// GetByID returns the user with id.
func (r *Users) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns the user with email.
func (r *Users) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"email": email}, 0)
}

func (r *Users) getBy(ctx context.Context, where sq.Eq, id int64) (*domain.User, error) {
	sqlStr, args, err := r.db.Dialect.Builder().Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}

	var u domain.User
	if err := sqlscan.Get(ctx, sqldb.QuerierFromCtx(ctx, r.db.SQL), &u, sqlStr, args...); err != nil {
		return nil, sqldb.MapError(err, "user", id)
	}
	return &u, nil
}

// Create inserts a user. A duplicate email fails with ErrConflict.
func (r *Users) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if u.Provider == "" {
		u.Provider = "local"
	}

	sqlStr, args, err := r.db.Dialect.Builder().
		Insert("users").
		Columns("name", "email", "role", "provider", "password_hash", "created_at", "updated_at").
		Values(u.Name, u.Email, u.Role, u.Provider, u.PasswordHash, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	var id int64
	if err := sqldb.QuerierFromCtx(ctx, r.db.SQL).QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, sqldb.MapError(err, "user", 0)
	}
	return r.GetByID(ctx, id)
}

// Exists reports whether a user row with id exists.
func (r *Users) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
