package hierarchy

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/planboard-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type childLoader = dataloader.Loader[int64, []domain.Node]

// newChildrenBatchFn loads the active children of a batch of parents with
// one query and groups them back by parent, keeping the edge order.
func newChildrenBatchFn(src Source, edge domain.Edge) dataloader.BatchFunc[int64, []domain.Node] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[[]domain.Node] {
		rows, err := src.FindActiveByParents(ctx, keys, edge)
		if err != nil {
			return errorResults[[]domain.Node](len(keys), err)
		}

		grouped := make(map[int64][]domain.Node, len(keys))
		for _, n := range rows {
			grouped[n.ParentRef()] = append(grouped[n.ParentRef()], n)
		}

		return mapResults(keys, grouped, emptySlice[domain.Node])
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []int64, grouped map[int64]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func emptySlice[T any]() []T {
	return []T{}
}
