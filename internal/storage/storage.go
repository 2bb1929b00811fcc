package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrVenueNotFound = errors.New("venue not found")
	ErrImageNotFound = errors.New("gallery image not found")
	ErrDatesTaken    = errors.New("venue already booked for these dates")

	ErrVenueUnavailable = errors.New("venue is not available for booking")
	ErrBookingNotFound  = errors.New("booking not found")
)

// Collection is the CRUD contract shared by the simple content types.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) (int64, error)
	Update(ctx context.Context, id int64, item *T) error
	Delete(ctx context.Context, id int64) error
}
