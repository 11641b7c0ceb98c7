package hier

import (
	"sync"

	"varc/types"
)

// Cached wraps a hierarchy provider and memoizes its subclass answers.  It is
// safe for use from concurrent override checks: reads share an RLock and a
// miss upgrades to a write lock after querying the wrapped provider.  Errors
// are never cached, so a provider that resolves lazily may be retried.
type Cached struct {
	inner types.Hierarchy

	mu   sync.RWMutex
	memo map[classPair]bool
}

type classPair struct {
	sub, super types.Class
}

// NewCached creates a caching wrapper around the given provider.
func NewCached(inner types.Hierarchy) *Cached {
	return &Cached{
		inner: inner,
		memo:  make(map[classPair]bool),
	}
}

func (c *Cached) IsSubclassOf(sub, super types.Class) (bool, error) {
	key := classPair{sub: sub, super: super}

	c.mu.RLock()
	result, ok := c.memo[key]
	c.mu.RUnlock()
	if ok {
		return result, nil
	}

	result, err := c.inner.IsSubclassOf(sub, super)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	c.memo[key] = result
	c.mu.Unlock()

	return result, nil
}
