package store

import (
	"context"
	"fmt"

	"github.com/heartmarshall/planboard-backend/internal/adapter/sqldb"
	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Sequences hands out per-parent code numbers. The counter row is seeded
// from the number of existing siblings, active or not, so numbers are never
// reused after a soft delete.
type Sequences struct {
	db *sqldb.DB
}

func NewSequences(db *sqldb.DB) *Sequences {
	return &Sequences{db: db}
}

const nextSequenceSQL = `INSERT INTO code_sequences (kind, parent_id, last_seq)
VALUES (?, ?, (SELECT COUNT(*) FROM %s WHERE %s = ?) + 1)
ON CONFLICT (kind, parent_id) DO UPDATE SET last_seq = code_sequences.last_seq + 1
RETURNING last_seq`

// Next atomically reserves the next number for a child of kind under
// parentID. Concurrent callers for the same parent serialize on the
// counter row.
func (s *Sequences) Next(ctx context.Context, kind domain.Kind, parentID int64) (int, error) {
	table, parentColumn, ok := location(kind)
	if !ok || !kind.Coded() {
		return 0, fmt.Errorf("sequence for %q: kind is not coded", kind)
	}

	query := s.db.Dialect.Rebind(fmt.Sprintf(nextSequenceSQL, table, parentColumn))

	var n int
	err := sqldb.QuerierFromCtx(ctx, s.db.SQL).
		QueryRowContext(ctx, query, string(kind), parentID, parentID).
		Scan(&n)
	if err != nil {
		return 0, sqldb.MapError(err, "code_sequence", parentID)
	}
	return n, nil
}
