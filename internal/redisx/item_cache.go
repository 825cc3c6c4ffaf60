package redisx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ariefcatur/go-shop-api/internal/shop"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ItemCache is a read-through cache in front of the catalog. Redis errors
// never fail a lookup; they only cost a trip to the underlying repo.
type ItemCache struct {
	Next  shop.ItemRepo
	Redis redis.Cmdable
	TTL   time.Duration
	Log   *zap.Logger
}

func (c *ItemCache) List(ctx context.Context) ([]shop.Item, error) {
	return c.Next.List(ctx)
}

func (c *ItemCache) FindByName(ctx context.Context, name string) ([]shop.Item, error) {
	return c.Next.FindByName(ctx, name)
}

func (c *ItemCache) FindByID(ctx context.Context, id int64) (shop.Item, error) {
	key := fmt.Sprintf(KeyItem, id)

	s, err := c.Redis.Get(ctx, key).Result()
	switch {
	case err == nil:
		var it shop.Item
		if jerr := json.Unmarshal([]byte(s), &it); jerr == nil {
			return it, nil
		}
		c.Log.Warn("item cache: corrupt entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.Log.Warn("item cache: get failed", zap.String("key", key), zap.Error(err))
	}

	it, err := c.Next.FindByID(ctx, id)
	if err != nil {
		return shop.Item{}, err
	}
	b, err := json.Marshal(it)
	if err != nil {
		return it, nil
	}
	if err := c.Redis.Set(ctx, key, b, c.ttl()).Err(); err != nil {
		c.Log.Warn("item cache: set failed", zap.String("key", key), zap.Error(err))
	}
	return it, nil
}

func (c *ItemCache) ttl() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return TTLItemCache
}
