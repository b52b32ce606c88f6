package posts

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const collectionKey = "posts"

var _ Source = (*CachedSource)(nil)

// CachedSource keeps the last successful load for ttl. Failed loads are
// never cached.
type CachedSource struct {
	src   Source
	cache *cache.Cache
}

func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src:   src,
		cache: cache.New(ttl, ttl*2),
	}
}

func (s *CachedSource) Fetch(ctx context.Context) ([]*Post, error) {
	if cached, found := s.cache.Get(collectionKey); found {
		if posts, ok := cached.([]*Post); ok {
			return posts, nil
		}
	}

	posts, err := s.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(collectionKey, posts, cache.DefaultExpiration)
	return posts, nil
}

// Invalidate drops the cached collection so the next Fetch goes to the source.
func (s *CachedSource) Invalidate() {
	s.cache.Flush()
}

// Ping succeeds while a collection is cached and checks the source otherwise.
func (s *CachedSource) Ping(ctx context.Context) error {
	if _, found := s.cache.Get(collectionKey); found {
		return nil
	}
	return Ping(ctx, s.src)
}
