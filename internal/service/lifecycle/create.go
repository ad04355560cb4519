package lifecycle

import (
	"context"
	"fmt"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Create stores payload as a new active entity. The parent reference is
// required and must point at an active parent; coded kinds get the next
// code of that parent inside the insert transaction.
func (c *Controller[T, P]) Create(ctx context.Context, payload P) (P, error) {
	if payload == nil {
		return nil, domain.NewValidationError("body", "required")
	}

	created, err := c.create(ctx, payload)
	if err != nil {
		return nil, err
	}

	c.committed(ctx, domain.EventCreated, created.NodeID(), created)
	return created, nil
}

func (c *Controller[T, P]) create(ctx context.Context, payload P) (_ P, err error) {
	meta := payload.Meta()
	meta.ID = 0
	meta.Active = true

	parentID := payload.ParentRef()
	if parentID <= 0 {
		return nil, domain.NewValidationError(c.kind.ParentField(), "required")
	}
	if err := c.parent(ctx, parentID); err != nil {
		return nil, fmt.Errorf("%s parent: %w", c.kind, err)
	}

	if c.policy.Prepare != nil {
		undo, prepErr := c.policy.Prepare(ctx, payload, true)
		if prepErr != nil {
			return nil, prepErr
		}
		defer func() { undo.revert(ctx, err != nil) }()
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var created P
	err = c.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if seq, ok := any(payload).(domain.Sequenced); ok {
			coding, err := c.codes.Next(txCtx, c.kind, parentID)
			if err != nil {
				return err
			}
			*seq.Sequence() = coding
		}

		var err error
		created, err = c.store.Create(txCtx, payload)
		if err != nil {
			return fmt.Errorf("create %s: %w", c.kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
