package safety

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

// key layout:
//
//	set: safety:banned              -> Set(origin,...)
//	kv : safety:reports:{origin}    -> report counter
const bannedKey = "safety:banned"

func reportKey(origin string) string {
	return fmt.Sprintf("safety:reports:%s", origin)
}

func (r *redisRepo) IsBanned(ctx context.Context, origin string) (bool, error) {
	return r.rdb.SIsMember(ctx, bannedKey, origin).Result()
}

func (r *redisRepo) Ban(ctx context.Context, origin string) error {
	return r.rdb.SAdd(ctx, bannedKey, origin).Err()
}

func (r *redisRepo) Report(ctx context.Context, origin string) (int64, error) {
	return r.rdb.Incr(ctx, reportKey(origin)).Result()
}

func (r *redisRepo) Reports(ctx context.Context, origin string) (int64, error) {
	n, err := r.rdb.Get(ctx, reportKey(origin)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
