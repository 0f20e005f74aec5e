package delivery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

// mockDialer produces a fresh mockSink on every dial and records the sinks
// it handed out. Leading dials or deliveries can be made to fail.
type mockDialer struct {
	failDials      int // leading dials that return an error
	failDeliveries int // leading deliveries that return an error

	dials      int
	deliveries int
	sinks      []*mockSink
}

func (m *mockDialer) dial(ctx context.Context) (driven.DeliverySink, error) {
	m.dials++
	if m.dials <= m.failDials {
		return nil, errors.New("connect: connection refused")
	}
	sink := &mockSink{dialer: m}
	m.sinks = append(m.sinks, sink)
	return sink, nil
}

// mockSink counts its own calls and reports failures through the shared
// dialer counters.
type mockSink struct {
	dialer  *mockDialer
	calls   int
	name    string
	payload []byte
}

func (s *mockSink) Deliver(ctx context.Context, name string, payload []byte) error {
	s.calls++
	s.name = name
	s.payload = payload
	s.dialer.deliveries++
	if s.dialer.deliveries <= s.dialer.failDeliveries {
		return errors.New("write: broken pipe")
	}
	return nil
}

// TestRetrier_Deliver tests the retry loop around sink delivery.
func TestRetrier_Deliver(t *testing.T) {
	ctx := context.Background()
	payload := []byte("exported_at,id\n")

	t.Run("succeeds on first attempt", func(t *testing.T) {
		dialer := &mockDialer{}
		retrier := NewRetrier(dialer.dial)

		err := retrier.Deliver(ctx, "documents_20240102.csv", payload)

		require.NoError(t, err)
		assert.Equal(t, 1, dialer.dials)
		require.Len(t, dialer.sinks, 1)
		assert.Equal(t, "documents_20240102.csv", dialer.sinks[0].name)
		assert.Equal(t, payload, dialer.sinks[0].payload)
	})

	t.Run("retries on a fresh sink until success", func(t *testing.T) {
		dialer := &mockDialer{failDeliveries: 2}
		retrier := NewRetrier(dialer.dial)

		err := retrier.Deliver(ctx, "report.csv", payload)

		require.NoError(t, err)
		assert.Equal(t, 3, dialer.dials)
		require.Len(t, dialer.sinks, 3)
		for _, sink := range dialer.sinks {
			assert.Equal(t, 1, sink.calls, "each sink should be used exactly once")
		}
	})

	t.Run("surfaces last error after exhausting attempts", func(t *testing.T) {
		dialer := &mockDialer{failDeliveries: 10}
		retrier := NewRetrier(dialer.dial)

		err := retrier.Deliver(ctx, "report.csv", payload)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
		assert.Contains(t, err.Error(), "after 4 attempts")
		assert.Contains(t, err.Error(), "broken pipe")
		assert.Equal(t, DefaultMaxAttempts, dialer.dials)
	})

	t.Run("dial failures consume attempts", func(t *testing.T) {
		dialer := &mockDialer{failDials: 10}
		retrier := NewRetrier(dialer.dial)

		err := retrier.Deliver(ctx, "report.csv", payload)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
		assert.Contains(t, err.Error(), "dial sink")
		assert.Equal(t, DefaultMaxAttempts, dialer.dials)
		assert.Empty(t, dialer.sinks)
	})

	t.Run("recovers from a dial failure", func(t *testing.T) {
		dialer := &mockDialer{failDials: 1}
		retrier := NewRetrier(dialer.dial)

		err := retrier.Deliver(ctx, "report.csv", payload)

		require.NoError(t, err)
		assert.Equal(t, 2, dialer.dials)
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		dialer := &mockDialer{}
		retrier := NewRetrier(dialer.dial)

		err := retrier.Deliver(cancelled, "report.csv", payload)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, dialer.dials)
	})
}
