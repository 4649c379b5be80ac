// Package readiness blocks until a dependency answers, the way the
// deployment's init container gates the API on memcached.
package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	log "github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
)

const DefaultInterval = time.Second

var (
	// ErrTimeout indicates the dependency did not become ready in time.
	ErrTimeout = errors.New("dependency not ready before timeout")

	// ErrIntervalNotPositive indicates a non-positive poll interval.
	ErrIntervalNotPositive = errors.New("interval must be positive")
)

// Probe checks a dependency once. A nil error means ready.
type Probe func(ctx context.Context) error

type Config struct {
	Name     string        // For logging (e.g. "memcached")
	Interval time.Duration // Poll interval
	Timeout  time.Duration // Zero waits forever
	Logger   log.FieldLogger
}

// Wait polls probe every Interval until it succeeds, the timeout elapses, or
// ctx is canceled.
func Wait(ctx context.Context, cfg Config, probe Probe) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("wait for %s: %w", cfg.Name, ErrIntervalNotPositive)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	logger = logger.WithField("dependency", cfg.Name)

	attempt := 0
	condition := func(pollCtx context.Context) (bool, error) {
		attempt++
		if err := probe(pollCtx); err != nil {
			logger.WithError(err).WithField("attempt", attempt).Info("waiting for dependency")
			return false, nil
		}
		return true, nil
	}

	pollCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := wait.PollUntilContextCancel(pollCtx, cfg.Interval, true, condition); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("wait for %s: %w", cfg.Name, ctxErr)
		}
		if pollCtx.Err() != nil {
			return fmt.Errorf("wait for %s after %d attempts: %w", cfg.Name, attempt, ErrTimeout)
		}
		return fmt.Errorf("wait for %s: %w", cfg.Name, err)
	}

	logger.WithField("attempt", attempt).Info("dependency ready")
	return nil
}

// MemcachedProbe checks that a memcached server at addr answers the version command.
func MemcachedProbe(addr string, timeout time.Duration) Probe {
	client := memcache.New(addr)
	if timeout > 0 {
		client.Timeout = timeout
	}
	return func(ctx context.Context) error {
		return client.Ping()
	}
}
