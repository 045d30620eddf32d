package store

import "context"

type StateStore interface {
	Name() string
}

// StateHandle is a single state partition scoped to a (namespace, tag) pair.
type StateHandle interface {
	Name() string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	// Clear releases every entry held by this partition.
	Clear(ctx context.Context) error
}

// StateService resolves state partitions lazily; a partition is created the
// first time its (namespace, tag) pair is resolved.
type StateService interface {
	StateStore
	StateFor(ctx context.Context, namespace string, tag StateTag) (StateHandle, error)
}
