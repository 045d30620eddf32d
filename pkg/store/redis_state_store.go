package store

import (
	"context"
	"fmt"

	"stateful-stream/pkg/hashfuncs"

	"github.com/go-redis/redis/v9"
)

// RedisStateStore spreads partitions over a set of redis instances; the
// instance for a partition is picked by hashing its partition key. One
// partition maps to one redis hash so that Clear is a single DEL.
type RedisStateStore struct {
	rdbArr []*redis.Client
	hasher hashfuncs.StringHasher
	name   string
}

var _ = StateService(&RedisStateStore{})

func NewRedisStateStore(name string, rdbArr []*redis.Client) *RedisStateStore {
	return &RedisStateStore{
		name:   name,
		rdbArr: rdbArr,
	}
}

func (st *RedisStateStore) Name() string {
	return st.name
}

func (st *RedisStateStore) pickClient(pkey string) *redis.Client {
	idx := st.hasher.HashSum64(pkey) % uint64(len(st.rdbArr))
	return st.rdbArr[idx]
}

func (st *RedisStateStore) StateFor(ctx context.Context, namespace string, tag StateTag) (StateHandle, error) {
	if len(st.rdbArr) == 0 {
		return nil, fmt.Errorf("redis state store %s has no clients", st.name)
	}
	pkey := fmt.Sprintf("%s/%s", st.name, partitionKey(namespace, tag))
	return &redisStateHandle{
		rdb:  st.pickClient(pkey),
		pkey: pkey,
	}, nil
}

type redisStateHandle struct {
	rdb  *redis.Client
	pkey string
}

var _ = StateHandle(&redisStateHandle{})

func (h *redisStateHandle) Name() string {
	return h.pkey
}

func (h *redisStateHandle) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := h.rdb.HGet(ctx, h.pkey, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("hget %s %s: %v", h.pkey, key, err)
	}
	return v, true, nil
}

func (h *redisStateHandle) Put(ctx context.Context, key string, value []byte) error {
	if err := h.rdb.HSet(ctx, h.pkey, key, value).Err(); err != nil {
		return fmt.Errorf("hset %s %s: %v", h.pkey, key, err)
	}
	return nil
}

func (h *redisStateHandle) Clear(ctx context.Context) error {
	if err := h.rdb.Del(ctx, h.pkey).Err(); err != nil {
		return fmt.Errorf("del %s: %v", h.pkey, err)
	}
	return nil
}
