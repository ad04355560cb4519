// Package codes assigns human-readable sequential codes (E1, S1, M1, ...)
// scoped to a parent entity.
package codes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

type sequenceSource interface {
	Next(ctx context.Context, kind domain.Kind, parentID int64) (int, error)
}

// Assigner computes codes from an atomic per-parent counter. Callers run
// Next inside the transaction that inserts the entity so a failed insert
// releases nothing but a number.
type Assigner struct {
	seqs sequenceSource
}

func NewAssigner(seqs sequenceSource) *Assigner {
	return &Assigner{seqs: seqs}
}

// Next returns the code of the next child of kind under parentID.
func (a *Assigner) Next(ctx context.Context, kind domain.Kind, parentID int64) (domain.Coding, error) {
	prefix := kind.CodePrefix()
	if prefix == "" {
		return domain.Coding{}, fmt.Errorf("assign code: %s entities are not coded", kind)
	}
	if parentID <= 0 {
		return domain.Coding{}, domain.NewValidationError(kind.ParentField(), "required")
	}

	n, err := a.seqs.Next(ctx, kind, parentID)
	if err != nil {
		return domain.Coding{}, fmt.Errorf("assign %s code: %w", kind, err)
	}
	return domain.Coding{Seq: n, Code: Format(kind, n)}, nil
}

// Format renders the code of the n-th child of kind.
func Format(kind domain.Kind, n int) string {
	return kind.CodePrefix() + strconv.Itoa(n)
}
