// Package sources holds the lookups that fetch facts about a domain from the
// outside world, and the fallback chain that combines them.
//
// Every source has the same shape: given a domain name it returns a value and
// whether it produced one. Sources never return errors; failures are logged
// where they happen and reported as "no result".
package sources

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Source yields one fact about a domain.
type Source[T any] interface {
	Name() string
	Lookup(ctx context.Context, domain string) (T, bool)
}

// LookupFunc adapts a plain function to a Source.
type LookupFunc[T any] func(ctx context.Context, domain string) (T, bool)

type funcSource[T any] struct {
	name string
	fn   LookupFunc[T]
}

func (f funcSource[T]) Name() string { return f.name }

func (f funcSource[T]) Lookup(ctx context.Context, domain string) (T, bool) {
	return f.fn(ctx, domain)
}

// Func names a LookupFunc so it can take part in a Chain.
func Func[T any](name string, fn LookupFunc[T]) Source[T] {
	return funcSource[T]{name: name, fn: fn}
}

// Observer is notified of every source attempt in a chain.
type Observer func(fact, source string, hit bool)

// DefaultSource is reported when a chain falls back to its default value.
const DefaultSource = "default"

// Chain is an ordered fallback list of sources for the same fact.
type Chain[T any] struct {
	Fact    string
	Sources []Source[T]
	Observe Observer
}

// NewChain builds a chain for fact trying srcs in order.
func NewChain[T any](fact string, obs Observer, srcs ...Source[T]) Chain[T] {
	return Chain[T]{Fact: fact, Sources: srcs, Observe: obs}
}

// Resolve tries each source in order and returns the first result along with
// the name of the source that produced it.
func (c Chain[T]) Resolve(ctx context.Context, domain string) (T, string, bool) {
	var zero T
	for _, src := range c.Sources {
		if ctx.Err() != nil {
			break
		}
		v, ok := src.Lookup(ctx, domain)
		if c.Observe != nil {
			c.Observe(c.Fact, src.Name(), ok)
		}
		if ok {
			return v, src.Name(), true
		}
		log.WithFields(log.Fields{"fact": c.Fact, "source": src.Name(), "domain": domain}).Debug("source returned no result")
	}
	return zero, "", false
}

// ResolveOr is Resolve with a caller supplied default when every source fails.
func (c Chain[T]) ResolveOr(ctx context.Context, domain string, def func() T) (T, string) {
	if v, src, ok := c.Resolve(ctx, domain); ok {
		return v, src
	}
	log.WithFields(log.Fields{"fact": c.Fact, "domain": domain}).Info("all sources exhausted, using default")
	return def(), DefaultSource
}
