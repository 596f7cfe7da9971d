package sources

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type cached[T any] struct {
	inner Source[T]
	cache *gocache.Cache
	ttl   time.Duration
}

// Cached remembers positive results of src for ttl. Misses are never cached so
// the next run asks again.
func Cached[T any](src Source[T], c *gocache.Cache, ttl time.Duration) Source[T] {
	if c == nil || ttl <= 0 {
		return src
	}
	return &cached[T]{inner: src, cache: c, ttl: ttl}
}

func (c *cached[T]) Name() string { return c.inner.Name() }

func (c *cached[T]) Lookup(ctx context.Context, domain string) (T, bool) {
	key := c.inner.Name() + "|" + domain
	if v, found := c.cache.Get(key); found {
		if typed, ok := v.(T); ok {
			return typed, true
		}
	}
	v, ok := c.inner.Lookup(ctx, domain)
	if ok {
		c.cache.Set(key, v, c.ttl)
	}
	return v, ok
}

type limited[T any] struct {
	inner   Source[T]
	limiter *rate.Limiter
}

// Limited throttles calls to src. A caller whose context ends while waiting
// for a token gets no result.
func Limited[T any](src Source[T], l *rate.Limiter) Source[T] {
	if l == nil {
		return src
	}
	return &limited[T]{inner: src, limiter: l}
}

func (l *limited[T]) Name() string { return l.inner.Name() }

func (l *limited[T]) Lookup(ctx context.Context, domain string) (T, bool) {
	if err := l.limiter.Wait(ctx); err != nil {
		var zero T
		log.WithFields(log.Fields{"source": l.inner.Name(), "domain": domain}).Warnf("rate limiter wait aborted: %v", err)
		return zero, false
	}
	return l.inner.Lookup(ctx, domain)
}
