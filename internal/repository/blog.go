package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/devodyssey/domain"
)

// DefaultListTTL is how long a cached blog list stays logically fresh.
const DefaultListTTL = 30 * time.Second

// loadTimeout bounds a shared database load, which outlives the request
// that started it.
const loadTimeout = 10 * time.Second

const rebuildListKey = "blog:list"

// blogRepository coordinates the cache and the database
type blogRepository struct {
	db           domain.BlogDBRepository
	cache        domain.BlogCache
	ttl          time.Duration
	rebuildGroup singleflight.Group
}

var _ domain.BlogRepository = (*blogRepository)(nil)

// NewBlogRepository creates the coordination layer.
func NewBlogRepository(db domain.BlogDBRepository, cache domain.BlogCache, ttl time.Duration) *blogRepository {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &blogRepository{
		db:    db,
		cache: cache,
		ttl:   ttl,
	}
}

// Fetch serves the cached list, rebuilding it in the background once it is
// logically expired. A cache failure falls through to the database.
func (r *blogRepository) Fetch(ctx context.Context) ([]domain.Blog, error) {
	blogs, expired, err := r.cache.GetBlogs(ctx)
	if err == nil {
		if expired {
			go r.rebuildListCache(context.Background())
		}
		return blogs, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("cache get error: %v", err)
	}

	// concurrent misses share one database load, so it must not die with
	// whichever caller happened to start it
	result, err, _ := r.rebuildGroup.Do(rebuildListKey, func() (any, error) {
		return r.load(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Blog), nil
}

func (r *blogRepository) load(ctx context.Context) ([]domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	blogs, err := r.db.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.cache.SetBlogs(ctx, blogs, r.ttl); err != nil {
		logrus.Warnf("failed to set blog list cache: %v", err)
	}
	return blogs, nil
}

// rebuildListCache refreshes the cached list asynchronously
func (r *blogRepository) rebuildListCache(ctx context.Context) {
	_, err, _ := r.rebuildGroup.Do(rebuildListKey, func() (any, error) {
		return r.load(ctx)
	})
	if err != nil {
		logrus.Errorf("rebuildListCache failed: %v", err)
	}
}
