// Package hierarchy assembles nested planning trees from the static
// parent -> children schema declared in the domain package.
package hierarchy

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

// Loader reads a root entity and populates every level below it with its
// active children. Each level of a tree costs one query per child kind,
// however many parents the level holds.
type Loader struct {
	sources map[domain.Kind]Source
}

func NewLoader(sources ...Source) *Loader {
	l := &Loader{sources: make(map[domain.Kind]Source, len(sources))}
	for _, s := range sources {
		l.sources[s.Kind()] = s
	}
	return l
}

// LoadTree returns the active entity kind/id with its descendants. A root
// that is absent or inactive yields ErrNotFound.
func (l *Loader) LoadTree(ctx context.Context, kind domain.Kind, id int64) (domain.Node, error) {
	src, err := l.source(kind)
	if err != nil {
		return nil, err
	}

	root, err := src.FindActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := l.expand(ctx, l.newLoaders(), kind, []domain.Node{root}); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadChildren returns the active children of kind child under the active
// parent, each with its own subtree.
func (l *Loader) LoadChildren(ctx context.Context, parent domain.Kind, parentID int64, child domain.Kind) ([]domain.Node, error) {
	edge, ok := parent.Edge(child)
	if !ok {
		return nil, fmt.Errorf("hierarchy: %s has no %s", parent, child.Plural())
	}

	parentSrc, err := l.source(parent)
	if err != nil {
		return nil, err
	}
	childSrc, err := l.source(child)
	if err != nil {
		return nil, err
	}

	if _, err := parentSrc.FindActive(ctx, parentID); err != nil {
		return nil, err
	}

	children, err := childSrc.FindActiveByParents(ctx, []int64{parentID}, edge)
	if err != nil {
		return nil, fmt.Errorf("load %s of %s %d: %w", child.Plural(), parent, parentID, err)
	}
	if children == nil {
		children = []domain.Node{}
	}

	if err := l.expand(ctx, l.newLoaders(), child, children); err != nil {
		return nil, err
	}
	return children, nil
}

// expand attaches the children of every node for each edge of kind, then
// recurses one level down. Sibling edges load concurrently.
func (l *Loader) expand(ctx context.Context, loaders map[domain.Kind]*childLoader, kind domain.Kind, nodes []domain.Node) error {
	edges := kind.Edges()
	if len(nodes) == 0 || len(edges) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, edge := range edges {
		g.Go(func() error {
			loader, ok := loaders[edge.Child]
			if !ok {
				return fmt.Errorf("hierarchy: no source for %s", edge.Child)
			}

			thunks := make([]dataloader.Thunk[[]domain.Node], len(nodes))
			for i, n := range nodes {
				thunks[i] = loader.Load(gctx, n.NodeID())
			}

			var next []domain.Node
			for i, n := range nodes {
				children, err := thunks[i]()
				if err != nil {
					return fmt.Errorf("load %s of %s %d: %w", edge.Child.Plural(), kind, n.NodeID(), err)
				}
				n.SetChildren(edge.Child, children)
				next = append(next, children...)
			}

			return l.expand(gctx, loaders, edge.Child, next)
		})
	}
	return g.Wait()
}

// newLoaders builds one batching loader per child kind. Loaders cache
// results, so they live for a single read.
func (l *Loader) newLoaders() map[domain.Kind]*childLoader {
	loaders := make(map[domain.Kind]*childLoader)
	for parent := range l.sources {
		for _, edge := range parent.Edges() {
			if src, ok := l.sources[edge.Child]; ok {
				loaders[edge.Child] = newLoader(newChildrenBatchFn(src, edge))
			}
		}
	}
	return loaders
}

func (l *Loader) source(kind domain.Kind) (Source, error) {
	src, ok := l.sources[kind]
	if !ok {
		return nil, fmt.Errorf("hierarchy: no source for %s", kind)
	}
	return src, nil
}
