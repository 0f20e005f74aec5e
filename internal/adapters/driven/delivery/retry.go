package delivery

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

// DefaultMaxAttempts is the total number of delivery attempts, including the
// first. Retries are immediate, with no backoff between attempts.
const DefaultMaxAttempts = 4

// Compile-time check that Retrier implements the DeliverySink interface.
var _ driven.DeliverySink = (*Retrier)(nil)

// Retrier delivers a report through a SinkDialer, retrying on failure.
// Every attempt dials a fresh sink so a connection left broken by a failed
// attempt is never reused.
type Retrier struct {
	dial        driven.SinkDialer
	maxAttempts int
}

// NewRetrier creates a Retrier around the given dialer with the default
// attempt limit.
func NewRetrier(dial driven.SinkDialer) *Retrier {
	return &Retrier{
		dial:        dial,
		maxAttempts: DefaultMaxAttempts,
	}
}

// Deliver attempts delivery until it succeeds or the attempt limit is
// reached. Dial failures and delivery failures both consume an attempt.
// The error returned after the final attempt wraps domain.ErrDeliveryFailed
// and the error from that last attempt.
func (r *Retrier) Deliver(ctx context.Context, name string, payload []byte) error {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		sink, err := r.dial(ctx)
		if err != nil {
			lastErr = fmt.Errorf("dial sink: %w", err)
			continue
		}

		if err := sink.Deliver(ctx, name, payload); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return fmt.Errorf("%w after %d attempts: %w", domain.ErrDeliveryFailed, r.maxAttempts, lastErr)
}
