package store

import (
	"context"

	"github.com/zhangyunhao116/skipmap"
)

// InMemorySkipmapStateStore keeps one skipmap of entries per resolved
// (namespace, tag) partition. Partitions are created lazily on first resolve
// and dropped wholesale on Clear.
type InMemorySkipmapStateStore struct {
	partitions *skipmap.FuncMap[string, *skipmap.FuncMap[string, []byte]]
	name       string
}

var _ = StateService(&InMemorySkipmapStateStore{})

func NewInMemorySkipmapStateStore(name string) *InMemorySkipmapStateStore {
	return &InMemorySkipmapStateStore{
		name:       name,
		partitions: skipmap.NewFunc[string, *skipmap.FuncMap[string, []byte]](StringLessFunc),
	}
}

func (st *InMemorySkipmapStateStore) Name() string {
	return st.name
}

func (st *InMemorySkipmapStateStore) StateFor(ctx context.Context, namespace string, tag StateTag) (StateHandle, error) {
	pkey := partitionKey(namespace, tag)
	entries, exists := st.partitions.Load(pkey)
	if !exists {
		entries, _ = st.partitions.LoadOrStore(pkey,
			skipmap.NewFunc[string, []byte](StringLessFunc))
	}
	return &inMemStateHandle{
		store:   st,
		pkey:    pkey,
		entries: entries,
	}, nil
}

// NumPartitions reports how many partitions currently hold entries.
func (st *InMemorySkipmapStateStore) NumPartitions() int {
	return st.partitions.Len()
}

type inMemStateHandle struct {
	store   *InMemorySkipmapStateStore
	entries *skipmap.FuncMap[string, []byte]
	pkey    string
}

var _ = StateHandle(&inMemStateHandle{})

func (h *inMemStateHandle) Name() string {
	return h.pkey
}

func (h *inMemStateHandle) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, exists := h.entries.Load(key)
	return v, exists, nil
}

func (h *inMemStateHandle) Put(ctx context.Context, key string, value []byte) error {
	h.entries.Store(key, value)
	return nil
}

func (h *inMemStateHandle) Clear(ctx context.Context) error {
	h.store.partitions.Delete(h.pkey)
	return nil
}
