package events

import (
	"context"
	"debaren/internal/lib/logger/sl"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrQueueFull = errors.New("event queue is full")
	ErrClosed    = errors.New("publisher is closed")
)

// Async hands events to a background goroutine that delivers them to next.
// Publish never waits on next; when the queue is full the event is dropped.
type Async struct {
	next    Publisher
	timeout time.Duration
	log     *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan Event
	done   chan struct{}
}

// NewAsync starts the delivery goroutine. Each delivery gets its own context
// bounded by timeout, detached from the publishing request.
func NewAsync(log *slog.Logger, name string, next Publisher, size int, timeout time.Duration) *Async {
	a := &Async{
		next:    next,
		timeout: timeout,
		log:     log.With(slog.String("component", "events.async"), slog.String("sink", name)),
		queue:   make(chan Event, size),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Async) Publish(_ context.Context, e Event) error {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		return ErrClosed
	}

	select {
	case a.queue <- e:
		return nil
	default:
		return fmt.Errorf("events.Async.Publish: %s: %w", e.Type, ErrQueueFull)
	}
}

func (a *Async) run() {
	defer close(a.done)

	for e := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		if err := a.next.Publish(ctx, e); err != nil {
			a.log.Warn("failed to deliver event", slog.String("type", string(e.Type)), sl.Err(err))
		}
		cancel()
	}
}

// Close stops accepting events, drains the queue and closes next when it is an io.Closer.
func (a *Async) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	<-a.done

	if c, ok := a.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
