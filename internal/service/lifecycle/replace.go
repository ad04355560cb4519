package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// ReplaceAll writes body over the entity with id, active or not. When no
// such entity exists body is created as a new entity instead and the
// second result is true. A client supplied _id is ignored; identity, parent and code of
// an existing entity never change.
func (c *Controller[T, P]) ReplaceAll(ctx context.Context, id int64, body []byte) (_ P, _ bool, err error) {
	existing, err := c.store.FindOne(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		payload := P(new(T))
		if err := decodeBody(body, payload); err != nil {
			return nil, false, err
		}
		entity, err := c.create(ctx, payload)
		if err != nil {
			return nil, false, err
		}
		c.committed(ctx, domain.EventCreated, entity.NodeID(), entity)
		return entity, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	merged := P(new(T))
	*merged = *existing
	if err := decodeBody(body, merged); err != nil {
		return nil, false, err
	}
	restoreProtected(merged, existing)

	if c.policy.Prepare != nil {
		undo, prepErr := c.policy.Prepare(ctx, merged, false)
		if prepErr != nil {
			return nil, false, prepErr
		}
		defer func() { undo.revert(ctx, err != nil) }()
	}
	if err := merged.Validate(); err != nil {
		return nil, false, err
	}

	updated, err := c.store.Update(ctx, merged)
	if err != nil {
		return nil, false, fmt.Errorf("replace %s %d: %w", c.kind, id, err)
	}

	c.committed(ctx, domain.EventUpdated, id, updated)
	return updated, false, nil
}

func restoreProtected[T any, P domain.EntityPtr[T]](dst, src P) {
	meta, orig := dst.Meta(), src.Meta()
	meta.ID = orig.ID
	meta.CreatedAt = orig.CreatedAt
	meta.UpdatedAt = orig.UpdatedAt
	dst.SetParentRef(src.ParentRef())
	if seq, ok := any(dst).(domain.Sequenced); ok {
		*seq.Sequence() = *any(src).(domain.Sequenced).Sequence()
	}
}

func decodeBody(body []byte, into any) error {
	if len(body) == 0 {
		return domain.NewValidationError("body", "required")
	}
	if err := json.Unmarshal(body, into); err != nil {
		return domain.NewValidationError("body", "malformed JSON")
	}
	return nil
}
