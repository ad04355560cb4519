// Package lifecycle orchestrates create, read, replace, patch and delete
// of planning entities on top of the store, code assigner, patch applier
// and hierarchy loader.
package lifecycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/planboard-backend/internal/domain"
	"github.com/heartmarshall/planboard-backend/internal/service/patch"
)

//go:generate moq -out entity_store_mock_test.go -pkg lifecycle . entityStore
//go:generate moq -out code_assigner_mock_test.go -pkg lifecycle . codeAssigner
//go:generate moq -out tree_loader_mock_test.go -pkg lifecycle . treeLoader
//go:generate moq -out tx_manager_mock_test.go -pkg lifecycle . txManager
//go:generate moq -out event_publisher_mock_test.go -pkg lifecycle . eventPublisher
//go:generate moq -out image_store_mock_test.go -pkg lifecycle . imageStore
//go:generate moq -out mutation_observer_mock_test.go -pkg lifecycle . mutationObserver

type entityStore[T any, P domain.EntityPtr[T]] interface {
	ListActive(ctx context.Context) ([]P, error)
	ListActiveByParent(ctx context.Context, parentID int64) ([]P, error)
	FindOne(ctx context.Context, id int64) (P, error)
	FindActive(ctx context.Context, id int64) (P, error)
	Create(ctx context.Context, entity P) (P, error)
	Update(ctx context.Context, entity P) (P, error)
	SoftDelete(ctx context.Context, id int64) (P, error)
	Delete(ctx context.Context, id int64) error
}

type codeAssigner interface {
	Next(ctx context.Context, kind domain.Kind, parentID int64) (domain.Coding, error)
}

type treeLoader interface {
	LoadTree(ctx context.Context, kind domain.Kind, id int64) (domain.Node, error)
	LoadChildren(ctx context.Context, parent domain.Kind, parentID int64, child domain.Kind) ([]domain.Node, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.Event)
}

type imageStore interface {
	Store(ctx context.Context, dataURI, hint string) (string, error)
	Remove(ctx context.Context, publicPath string) error
}

type mutationObserver interface {
	ObserveMutation(kind domain.Kind, event domain.EventType)
}

// parentCheck returns nil when the parent with id can own a new child.
type parentCheck func(ctx context.Context, id int64) error

// Policy holds the per-kind differences of the lifecycle.
type Policy[T any, P domain.EntityPtr[T]] struct {
	// PreloadOnPatch patches the entity with its active subtree attached.
	PreloadOnPatch bool
	// HardDelete removes the row instead of clearing active.
	HardDelete bool
	// Prepare runs on a payload before it is validated and stored.
	Prepare func(ctx context.Context, entity P, creating bool) (Undo, error)
	// RewritePatch resolves virtual operations once the target is known.
	// The returned operations keep the positions of the input.
	RewritePatch func(ctx context.Context, entity P, ops []patch.Replace) ([]patch.Replace, Undo, error)
}

// Undo reverts the side effect of a policy hook when a later step of the
// same operation fails. It may be nil.
type Undo func(ctx context.Context)

// revert runs u unless the operation succeeded. It ignores cancellation of
// the request so cleanup still reaches the collaborator.
func (u Undo) revert(ctx context.Context, failed bool) {
	if u != nil && failed {
		u(context.WithoutCancel(ctx))
	}
}

// Controller runs the lifecycle of one entity kind.
type Controller[T any, P domain.EntityPtr[T]] struct {
	kind     domain.Kind
	store    entityStore[T, P]
	parent   parentCheck
	codes    codeAssigner
	tree     treeLoader
	tx       txManager
	events   eventPublisher
	observer mutationObserver
	policy   Policy[T, P]
	log      *slog.Logger
	now      func() time.Time
}

func newController[T any, P domain.EntityPtr[T]](
	kind domain.Kind,
	deps deps,
	store entityStore[T, P],
	parent parentCheck,
	policy Policy[T, P],
) *Controller[T, P] {
	return &Controller[T, P]{
		kind:     kind,
		store:    store,
		parent:   parent,
		codes:    deps.codes,
		tree:     deps.tree,
		tx:       deps.tx,
		events:   deps.events,
		observer: deps.observer,
		policy:   policy,
		log:      deps.log.With("service", kind.String()),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Kind returns the entity kind the controller manages.
func (c *Controller[T, P]) Kind() domain.Kind { return c.kind }

// HardDelete reports whether Delete removes rows.
func (c *Controller[T, P]) HardDelete() bool { return c.policy.HardDelete }

// committed publishes ev and records it once the write is durable.
func (c *Controller[T, P]) committed(ctx context.Context, typ domain.EventType, id int64, entity P) {
	ev := domain.Event{Type: typ, Kind: c.kind, ID: id, At: c.now()}
	if entity != nil {
		ev.Entity = entity
	}
	c.events.Publish(ctx, ev)
	c.observer.ObserveMutation(c.kind, typ)

	c.log.InfoContext(ctx, c.kind.String()+" "+string(typ),
		slog.Int64(c.kind.String()+"_id", id),
	)
}
