package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface - cache key-value dùng chung
// (danh mục khuyến mãi, metric cấp số dự phòng...).
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}
