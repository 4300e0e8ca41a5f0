package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "idento:session:"

// RedisStore keeps the active-session registry in redis so sessions
// survive process restarts and are shared across replicas.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Put(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	return s.rdb.Set(ctx, sessionKeyPrefix+sid, strconv.FormatInt(userID, 10), ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+sid).Err()
}

func (s *RedisStore) Exists(ctx context.Context, sid string) (bool, error) {
	n, err := s.rdb.Exists(ctx, sessionKeyPrefix+sid).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
