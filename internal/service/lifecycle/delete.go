package lifecycle

import (
	"context"
	"fmt"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Delete retires the active entity with id. Soft-deleted kinds return the
// entity with active cleared; kinds with HardDelete return nil after the
// row and everything it owns are gone.
func (c *Controller[T, P]) Delete(ctx context.Context, id int64) (P, error) {
	if _, err := c.store.FindActive(ctx, id); err != nil {
		return nil, err
	}

	if c.policy.HardDelete {
		if err := c.store.Delete(ctx, id); err != nil {
			return nil, fmt.Errorf("delete %s %d: %w", c.kind, id, err)
		}
		c.committed(ctx, domain.EventRemoved, id, nil)
		return nil, nil
	}

	removed, err := c.store.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete %s %d: %w", c.kind, id, err)
	}

	c.committed(ctx, domain.EventRemoved, id, removed)
	return removed, nil
}
