package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb"
	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Filter narrows FindAll and Count.
type Filter struct {
	ActiveOnly bool
	ParentIDs  []int64
}

// Order is one ORDER BY key. Ties are always broken by id.
type Order struct {
	Column string
	Desc   bool
}

// OrderOf converts a hierarchy edge into an Order.
func OrderOf(e domain.Edge) Order {
	return Order{Column: e.OrderBy, Desc: e.Direction == domain.SortDesc}
}

// Store provides CRUD primitives over one entity table.
type Store[T any, P domain.EntityPtr[T]] struct {
	db    *sqldb.DB
	table Table[T]
	now   func() time.Time
}

// New creates a Store for table.
func New[T any, P domain.EntityPtr[T]](db *sqldb.DB, table Table[T]) *Store[T, P] {
	return &Store[T, P]{
		db:    db,
		table: table,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Kind returns the entity kind stored in the table.
func (s *Store[T, P]) Kind() domain.Kind { return s.table.Kind }

// ParentColumn returns the column holding the parent reference.
func (s *Store[T, P]) ParentColumn() string { return s.table.ParentColumn }

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// FindAll returns every row matching filter in the given order.
func (s *Store[T, P]) FindAll(ctx context.Context, filter Filter, order ...Order) ([]P, error) {
	query := s.selectBuilder()
	query = s.applyFilter(query, filter)
	for _, o := range order {
		dir := " ASC"
		if o.Desc {
			dir = " DESC"
		}
		query = query.OrderBy(o.Column + dir)
	}
	query = query.OrderBy("id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", s.table.Name, err)
	}

	out := make([]P, 0)
	if err := sqlscan.Select(ctx, s.q(ctx), &out, sqlStr, args...); err != nil {
		return nil, sqldb.MapError(err, string(s.table.Kind), 0)
	}
	return out, nil
}

// ListActive returns every active row ordered by creation.
func (s *Store[T, P]) ListActive(ctx context.Context) ([]P, error) {
	return s.FindAll(ctx, Filter{ActiveOnly: true}, Order{Column: "created_at"})
}

// ListActiveByParent returns the active rows owned by parentID ordered by
// creation.
func (s *Store[T, P]) ListActiveByParent(ctx context.Context, parentID int64) ([]P, error) {
	return s.FindAll(ctx, Filter{ActiveOnly: true, ParentIDs: []int64{parentID}}, Order{Column: "created_at"})
}

// FindActiveByParents returns active rows owned by any of parentIDs,
// ordered as the hierarchy edge declares.
func (s *Store[T, P]) FindActiveByParents(ctx context.Context, parentIDs []int64, edge domain.Edge) ([]P, error) {
	if len(parentIDs) == 0 {
		return []P{}, nil
	}
	return s.FindAll(ctx, Filter{ActiveOnly: true, ParentIDs: parentIDs}, OrderOf(edge))
}

// FindOne returns the row with id regardless of its active flag.
func (s *Store[T, P]) FindOne(ctx context.Context, id int64) (P, error) {
	return s.get(ctx, id, false)
}

// FindActive returns the row with id only while it is active.
func (s *Store[T, P]) FindActive(ctx context.Context, id int64) (P, error) {
	return s.get(ctx, id, true)
}

func (s *Store[T, P]) get(ctx context.Context, id int64, activeOnly bool) (P, error) {
	query := s.applyFilter(s.selectBuilder().Where(sq.Eq{"id": id}), Filter{ActiveOnly: activeOnly})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", s.table.Name, err)
	}

	var row T
	if err := sqlscan.Get(ctx, s.q(ctx), &row, sqlStr, args...); err != nil {
		return nil, sqldb.MapError(err, string(s.table.Kind), id)
	}
	return P(&row), nil
}

// Count returns the number of rows matching filter.
func (s *Store[T, P]) Count(ctx context.Context, filter Filter) (int, error) {
	query := s.applyFilter(s.db.Dialect.Builder().Select("COUNT(*)").From(s.table.Name), filter)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", s.table.Name, err)
	}

	var n int
	if err := s.q(ctx).QueryRowContext(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, sqldb.MapError(err, string(s.table.Kind), 0)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts entity as an active row and returns the stored version.
func (s *Store[T, P]) Create(ctx context.Context, entity P) (P, error) {
	now := s.now()
	meta := entity.Meta()
	meta.Active = true
	meta.CreatedAt = now
	meta.UpdatedAt = now

	values := s.table.Values((*T)(entity))
	values["active"] = meta.Active
	values["created_at"] = meta.CreatedAt
	values["updated_at"] = meta.UpdatedAt

	sqlStr, args, err := s.db.Dialect.Builder().
		Insert(s.table.Name).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s insert: %w", s.table.Name, err)
	}

	var id int64
	if err := s.q(ctx).QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		return nil, sqldb.MapError(err, string(s.table.Kind), 0)
	}
	return s.FindOne(ctx, id)
}

// Update writes every mutable column of entity, including active.
func (s *Store[T, P]) Update(ctx context.Context, entity P) (P, error) {
	meta := entity.Meta()
	meta.UpdatedAt = s.now()

	values := s.table.Values((*T)(entity))
	values["active"] = meta.Active
	values["updated_at"] = meta.UpdatedAt

	if err := s.exec(ctx, meta.ID, s.db.Dialect.Builder().
		Update(s.table.Name).
		SetMap(values).
		Where(sq.Eq{"id": meta.ID})); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, meta.ID)
}

// SoftDelete marks the row inactive and returns it.
func (s *Store[T, P]) SoftDelete(ctx context.Context, id int64) (P, error) {
	if err := s.exec(ctx, id, s.db.Dialect.Builder().
		Update(s.table.Name).
		Set("active", false).
		Set("updated_at", s.now()).
		Where(sq.Eq{"id": id})); err != nil {
		return nil, err
	}
	return s.FindOne(ctx, id)
}

// Delete removes the row. Owned rows go with it through ON DELETE CASCADE.
func (s *Store[T, P]) Delete(ctx context.Context, id int64) error {
	return s.exec(ctx, id, s.db.Dialect.Builder().Delete(s.table.Name).Where(sq.Eq{"id": id}))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type sqlizer interface {
	ToSql() (string, []any, error)
}

// exec runs a statement that must touch exactly the row with id.
func (s *Store[T, P]) exec(ctx context.Context, id int64, stmt sqlizer) error {
	sqlStr, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build %s statement: %w", s.table.Name, err)
	}

	res, err := s.q(ctx).ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return sqldb.MapError(err, string(s.table.Kind), id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return sqldb.MapError(err, string(s.table.Kind), id)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", s.table.Kind, id, domain.ErrNotFound)
	}
	return nil
}

func (s *Store[T, P]) selectBuilder() sq.SelectBuilder {
	return s.db.Dialect.Builder().Select(s.table.Columns...).From(s.table.Name)
}

func (s *Store[T, P]) applyFilter(query sq.SelectBuilder, f Filter) sq.SelectBuilder {
	if f.ActiveOnly {
		query = query.Where(sq.Eq{"active": true})
	}
	if len(f.ParentIDs) > 0 {
		query = query.Where(sq.Eq{s.table.ParentColumn: f.ParentIDs})
	}
	return query
}

func (s *Store[T, P]) q(ctx context.Context) sqldb.Querier {
	return sqldb.QuerierFromCtx(ctx, s.db.SQL)
}
