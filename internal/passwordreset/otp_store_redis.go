package passwordreset

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "password_reset:otp:"

// redisTTLGrace keeps an expired challenge readable for a while so the
// service can report Expired rather than NotFound; actual expiry is
// still judged against the stored instant.
const redisTTLGrace = time.Hour

// RedisStore shares challenges across instances. Semantics match
// MemoryStore: last write wins, no sweeping beyond the redis TTL.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, email string, ch Challenge) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return err
	}

	ttl := time.Until(ch.Expires) + redisTTLGrace
	return s.rdb.Set(ctx, redisKeyPrefix+email, payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, email string) (*Challenge, error) {
	val, err := s.rdb.Get(ctx, redisKeyPrefix+email).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var ch Challenge
	if err := json.Unmarshal([]byte(val), &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *RedisStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+email).Err()
}
