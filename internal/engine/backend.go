package engine

import (
	"context"
	"time"

	"github.com/hammamikhairi/recipehaven/internal/domain"
	"github.com/hammamikhairi/recipehaven/internal/logger"
)

// DefaultDelay is the simulated network latency of DelayBackend.
const DefaultDelay = time.Second

// Compile-time interface check.
var _ domain.Backend = (*DelayBackend)(nil)

// DelayBackend stands in for a remote recipe API. It waits a fixed delay
// and always accepts.
type DelayBackend struct {
	delay time.Duration
	log   *logger.Logger
}

// NewDelayBackend creates a backend that waits delay before accepting.
func NewDelayBackend(delay time.Duration, log *logger.Logger) *DelayBackend {
	return &DelayBackend{delay: delay, log: log}
}

// Submit waits for the delay or until ctx is done.
func (b *DelayBackend) Submit(ctx context.Context, d domain.Draft) error {
	if b.delay <= 0 {
		return nil
	}
	b.log.Debug("simulating backend for %q (%s)", d.Title, b.delay)

	t := time.NewTimer(b.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
