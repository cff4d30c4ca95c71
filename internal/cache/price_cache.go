// Package cache 维护 SOL/USD 单价的双层缓存：进程内副本 + Redis 共享副本。
// 写入带 TTL；读取先走本地，陈旧或未命中时回落 Redis。
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const priceKey = "dao:price:sol_usd_cents"

type PriceCache struct {
	mu        sync.RWMutex
	cents     uint64
	fetchedAt time.Time

	rdb      *redis.Client // 可为 nil（单实例部署时仅用本地副本）
	maxStale time.Duration
}

// NewPriceCache 创建价格缓存，maxStale 同时作为 Redis TTL
func NewPriceCache(rdb *redis.Client, maxStale time.Duration) *PriceCache {
	return &PriceCache{rdb: rdb, maxStale: maxStale}
}

// Set 写入最新单价（美分），本地与 Redis 同步更新
func (pc *PriceCache) Set(ctx context.Context, cents uint64) {
	pc.mu.Lock()
	pc.cents = cents
	pc.fetchedAt = time.Now()
	pc.mu.Unlock()

	if pc.rdb != nil {
		// Redis 写失败不影响本地副本，下一轮刷新会重试
		_ = pc.rdb.Set(ctx, priceKey, cents, pc.maxStale).Err()
	}
}

// Get 返回未超过 maxStale 的单价；本地未命中时尝试 Redis（TTL 即新鲜度保证）
func (pc *PriceCache) Get(ctx context.Context) (uint64, time.Time, bool) {
	pc.mu.RLock()
	cents, fetchedAt := pc.cents, pc.fetchedAt
	pc.mu.RUnlock()

	if !fetchedAt.IsZero() && time.Since(fetchedAt) <= pc.maxStale {
		return cents, fetchedAt, true
	}

	if pc.rdb == nil {
		return 0, time.Time{}, false
	}
	val, err := pc.rdb.Get(ctx, priceKey).Result()
	if err != nil {
		return 0, time.Time{}, false
	}
	parsed, err := strconv.ParseUint(val, 10, 64)
	if err != nil || parsed == 0 {
		return 0, time.Time{}, false
	}

	now := time.Now()
	pc.mu.Lock()
	pc.cents, pc.fetchedAt = parsed, now
	pc.mu.Unlock()
	return parsed, now, true
}

// MustGet 与 Get 相同，但未命中时返回错误，便于调用链直接向上传播
func (pc *PriceCache) MustGet(ctx context.Context) (uint64, error) {
	cents, _, ok := pc.Get(ctx)
	if !ok {
		return 0, errors.New("price cache empty or stale")
	}
	return cents, nil
}

func (pc *PriceCache) String() string {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return fmt.Sprintf("price=%d cents, fetched_at=%s", pc.cents, pc.fetchedAt.Format(time.RFC3339))
}
