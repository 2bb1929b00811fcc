package events

import (
	"context"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// stalledSink blocks every delivery until release is closed.
type stalledSink struct {
	release chan struct{}

	mu  sync.Mutex
	got []Event
}

func (s *stalledSink) Publish(ctx context.Context, e Event) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.mu.Lock()
	s.got = append(s.got, e)
	s.mu.Unlock()
	return nil
}

func TestAsync_PublishDoesNotWaitForSink(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := &stalledSink{release: make(chan struct{})}
	a := NewAsync(slogdiscard.NewDiscardLogger(), "test", sink, 2, time.Minute)

	start := time.Now()
	require.NoError(t, a.Publish(context.Background(), Changed("venues", "create", 1)))
	require.NoError(t, a.Publish(context.Background(), Changed("venues", "create", 2)))
	assert.Less(t, time.Since(start), time.Second)

	// One event is held by the stalled delivery, so the queue fills up.
	require.Eventually(t, func() bool {
		return a.Publish(context.Background(), Changed("venues", "create", 3)) == nil
	}, time.Second, 5*time.Millisecond)
	assert.ErrorIs(t, a.Publish(context.Background(), Changed("venues", "create", 4)), ErrQueueFull)

	close(sink.release)
	require.NoError(t, a.Close())

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.got, 3)
	for i, e := range sink.got {
		assert.EqualValues(t, i+1, e.ResourceID)
	}

	assert.ErrorIs(t, a.Publish(context.Background(), Changed("venues", "create", 5)), ErrClosed)
	assert.NoError(t, a.Close())
}

func TestAsync_SinkErrorsStayInBackground(t *testing.T) {
	defer goleak.VerifyNone(t)

	w := &recordingWriter{err: errors.New("broker down")}
	a := NewAsync(slogdiscard.NewDiscardLogger(), "kafka", &KafkaPublisher{writer: w}, 4, time.Second)

	assert.NoError(t, a.Publish(context.Background(), New(BookingCreated, "booking", 1, nil)))

	require.NoError(t, a.Close())
	assert.True(t, w.closed)
	assert.Empty(t, w.msgs)
}
