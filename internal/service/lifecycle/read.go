package lifecycle

import (
	"context"
	"fmt"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// List returns every active entity of the kind.
func (c *Controller[T, P]) List(ctx context.Context) ([]P, error) {
	out, err := c.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.kind.Plural(), err)
	}
	return out, nil
}

// ListByParent returns the active entities owned by parentID. The parent
// must pass the same check as on create.
func (c *Controller[T, P]) ListByParent(ctx context.Context, parentID int64) ([]P, error) {
	if err := c.parent(ctx, parentID); err != nil {
		return nil, err
	}
	out, err := c.store.ListActiveByParent(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("list %s of %d: %w", c.kind.Plural(), parentID, err)
	}
	if out == nil {
		out = []P{}
	}
	return out, nil
}

// Get returns the active entity with its active subtree.
func (c *Controller[T, P]) Get(ctx context.Context, id int64) (P, error) {
	node, err := c.tree.LoadTree(ctx, c.kind, id)
	if err != nil {
		return nil, err
	}
	entity, ok := node.(P)
	if !ok {
		return nil, fmt.Errorf("load %s %d: unexpected node %T", c.kind, id, node)
	}
	return entity, nil
}

// narrow converts loader output to typed entities. The result is never nil.
func narrow[T any, P domain.EntityPtr[T]](nodes []domain.Node) ([]P, error) {
	out := make([]P, 0, len(nodes))
	for _, n := range nodes {
		e, ok := n.(P)
		if !ok {
			return nil, fmt.Errorf("unexpected node %T", n)
		}
		out = append(out, e)
	}
	return out, nil
}
