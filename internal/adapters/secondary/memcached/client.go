package memcached

import (
	"errors"
	"fmt"

	"github.com/bradfitz/gomemcache/memcache"

	"todo-list-service/internal/config"
	"todo-list-service/internal/core/domain"
)

// Client is the subset of *memcache.Client the repositories use.
type Client interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Add(item *memcache.Item) error
	Delete(key string) error
	Ping() error
}

// NewClient creates a memcached client for the configured server.
func NewClient(cfg *config.MemcachedConfig) *memcache.Client {
	c := memcache.New(cfg.Addr())
	if cfg.Timeout > 0 {
		c.Timeout = cfg.Timeout
	}
	if cfg.MaxIdleConns > 0 {
		c.MaxIdleConns = cfg.MaxIdleConns
	}
	return c
}

// mapError translates client errors that are not cache misses or store
// rejections; those are handled by the callers, which know the entity.
func mapError(op string, err error) error {
	if errors.Is(err, memcache.ErrMalformedKey) {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidID)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrCacheUnavailable, err)
}
