// Package events carries domain events from the use cases to the admin
// dashboards and, when configured, to Kafka.
package events

import (
	"context"
	"errors"
	"time"
)

type Type string

const (
	BookingCreated       Type = "booking.created"
	BookingStatusChanged Type = "booking.status_changed"
	BookingsSwept        Type = "booking.swept"
	ContactReceived      Type = "contact.received"
	ContentChanged       Type = "content.changed"
)

type Event struct {
	Type       Type      `json:"type"`
	Resource   string    `json:"resource,omitempty"`
	ResourceID int64     `json:"resource_id,omitempty"`
	Action     string    `json:"action,omitempty"`
	Data       any       `json:"data,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New stamps an event with the current time.
func New(t Type, resource string, id int64, data any) Event {
	return Event{
		Type:       t,
		Resource:   resource,
		ResourceID: id,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}

// Changed builds a content.changed event for an admin write.
func Changed(resource, action string, id int64) Event {
	e := New(ContentChanged, resource, id, nil)
	e.Action = action
	return e
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
