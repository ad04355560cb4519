package lifecycle

import (
	"context"
	"fmt"

	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/internal/service/patch"
)

// ApplyPatch applies a replace-only patch document to the active entity
// with id. Either every operation applies and the result is stored, or
// nothing changes.
func (c *Controller[T, P]) ApplyPatch(ctx context.Context, id int64, body []byte) (_ P, err error) {
	ops, err := patch.Parse(c.kind, body)
	if err != nil {
		return nil, err
	}

	current, err := c.loadForPatch(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.policy.RewritePatch != nil {
		var undo Undo
		ops, undo, err = c.policy.RewritePatch(ctx, current, ops)
		if err != nil {
			return nil, err
		}
		defer func() { undo.revert(ctx, err != nil) }()
	}

	patched, err := patch.Apply[T, P](current, ops)
	if err != nil {
		return nil, err
	}

	updated, err := c.store.Update(ctx, patched)
	if err != nil {
		return nil, fmt.Errorf("patch %s %d: %w", c.kind, id, err)
	}
	if c.policy.PreloadOnPatch {
		// keep the loaded subtree, take the stored timestamps
		*patched.Meta() = *updated.Meta()
		updated = patched
	}

	c.committed(ctx, domain.EventUpdated, id, updated)
	return updated, nil
}

func (c *Controller[T, P]) loadForPatch(ctx context.Context, id int64) (P, error) {
	if c.policy.PreloadOnPatch {
		return c.Get(ctx, id)
	}
	return c.store.FindActive(ctx, id)
}
