package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/devodyssey/domain"
	"github.com/Guyuepp/devodyssey/internal/repository/cache"
)

const (
	KeyBlogList = "blog:list"
)

type blogCache struct {
	client *redis.Client
}

var _ domain.BlogCache = (*blogCache)(nil)

func NewBlogCache(client *redis.Client) *blogCache {
	return &blogCache{
		client,
	}
}

func (c *blogCache) GetBlogs(ctx context.Context) ([]domain.Blog, bool, error) {
	data, err := c.client.Get(ctx, KeyBlogList).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var wrapped cache.DataWithLogicalExpire[[]domain.Blog]
	if err = json.Unmarshal(data, &wrapped); err != nil {
		return nil, false, err
	}
	return wrapped.Data, wrapped.IsLogicalExpired(), nil
}

// SetBlogs stores the list without a redis TTL; expiry is logical only.
func (c *blogCache) SetBlogs(ctx context.Context, blogs []domain.Blog, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(blogs, ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyBlogList, data, 0).Err()
}
