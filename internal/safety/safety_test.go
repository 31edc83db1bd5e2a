package safety

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func Test_MemoryRepo_BanFlow(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	banned, err := repo.IsBanned(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.False(t, banned)

	assert.NoError(t, repo.Ban(ctx, "10.0.0.1"))
	banned, err = repo.IsBanned(ctx, "10.0.0.1")
	assert.NoError(t, err)
	assert.True(t, banned)

	// Other origins unaffected
	banned, _ = repo.IsBanned(ctx, "10.0.0.2")
	assert.False(t, banned)
}

func Test_MemoryRepo_ReportCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	n, err := repo.Report(ctx, "10.0.0.5")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, _ = repo.Report(ctx, "10.0.0.5")
	assert.Equal(t, int64(2), n)

	total, err := repo.Reports(ctx, "10.0.0.5")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func Test_RedisRepo_BanFlow(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepo(rdb)

	banned, err := repo.IsBanned(ctx, "203.0.113.9")
	assert.NoError(t, err)
	assert.False(t, banned)

	assert.NoError(t, repo.Ban(ctx, "203.0.113.9"))
	banned, err = repo.IsBanned(ctx, "203.0.113.9")
	assert.NoError(t, err)
	assert.True(t, banned)

	n, err := repo.Report(ctx, "203.0.113.9")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Keys land where expected
	assert.True(t, mr.Exists("safety:banned"))
	assert.True(t, mr.Exists("safety:reports:203.0.113.9"))
}

func Test_Service_ThresholdBan(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryRepo(), 3)

	origin := "198.51.100.7"
	assert.True(t, svc.Allowed(ctx, origin))

	assert.False(t, svc.Report(ctx, origin))
	assert.False(t, svc.Report(ctx, origin))
	assert.True(t, svc.Allowed(ctx, origin), "two reports should not ban")

	assert.True(t, svc.Report(ctx, origin), "third report should trigger ban")
	assert.False(t, svc.Allowed(ctx, origin))
}

func Test_Service_ThresholdBan_Redis(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	svc := NewService(NewRedisRepo(rdb), 2)

	origin := "198.51.100.8"
	assert.False(t, svc.Report(ctx, origin))
	assert.True(t, svc.Report(ctx, origin))
	assert.False(t, svc.Allowed(ctx, origin))
}
