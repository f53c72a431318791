package persistence

import (
	"context"
	"errors"
	"slices"

	"github.com/redis/go-redis/v9"

	"github.com/petrijr/regular/pkg/definition"
)

// DefaultRedisPrefix is used when NewRedisStore is given an empty prefix.
const DefaultRedisPrefix = "regular:"

// RedisStore is a Store backed by Redis.
// It uses a simple key structure:
//
//	<prefix>def:<name>   => gob-encoded definition
//	<prefix>idx:all      => SET of all stored names
//
// The payload and the index entry are written in one transaction.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore.
// prefix is optional but recommended (e.g. "regular:").
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) keyDefinition(name string) string {
	return s.prefix + "def:" + name
}

func (s *RedisStore) keyAll() string {
	return s.prefix + "idx:all"
}

func (s *RedisStore) Save(ctx context.Context, def definition.Definition) error {
	data, err := encodeDefinition(def)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.keyDefinition(def.Name), data, 0)
		pipe.SAdd(ctx, s.keyAll(), def.Name)
		return nil
	})
	return err
}

func (s *RedisStore) Get(ctx context.Context, name string) (definition.Definition, error) {
	data, err := s.client.Get(ctx, s.keyDefinition(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return definition.Definition{}, ErrAutomatonNotFound
		}
		return definition.Definition{}, err
	}
	return decodeDefinition(data)
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.keyAll()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	var deleted *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, s.keyDefinition(name))
		pipe.SRem(ctx, s.keyAll(), name)
		return nil
	})
	if err != nil {
		return err
	}
	if deleted.Val() == 0 {
		return ErrAutomatonNotFound
	}
	return nil
}
