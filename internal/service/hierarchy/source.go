package hierarchy

import (
	"context"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Source reads active entities of one kind.
type Source interface {
	Kind() domain.Kind
	FindActive(ctx context.Context, id int64) (domain.Node, error)
	FindActiveByParents(ctx context.Context, parentIDs []int64, edge domain.Edge) ([]domain.Node, error)
}

type entityStore[T any, P domain.EntityPtr[T]] interface {
	Kind() domain.Kind
	FindActive(ctx context.Context, id int64) (P, error)
	FindActiveByParents(ctx context.Context, parentIDs []int64, edge domain.Edge) ([]P, error)
}

// SourceOf adapts a typed entity store to Source.
func SourceOf[T any, P domain.EntityPtr[T]](s entityStore[T, P]) Source {
	return typedSource[T, P]{store: s}
}

type typedSource[T any, P domain.EntityPtr[T]] struct {
	store entityStore[T, P]
}

func (s typedSource[T, P]) Kind() domain.Kind { return s.store.Kind() }

func (s typedSource[T, P]) FindActive(ctx context.Context, id int64) (domain.Node, error) {
	e, err := s.store.FindActive(ctx, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s typedSource[T, P]) FindActiveByParents(ctx context.Context, parentIDs []int64, edge domain.Edge) ([]domain.Node, error) {
	rows, err := s.store.FindActiveByParents(ctx, parentIDs, edge)
	if err != nil {
		return nil, err
	}
	nodes := make([]domain.Node, len(rows))
	for i, r := range rows {
		nodes[i] = r
	}
	return nodes, nil
}
