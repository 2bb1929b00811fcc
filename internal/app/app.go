// Package app holds the use cases that sit between the HTTP handlers and
// storage: venue geocoding and media handling, booking rules, contact
// submissions and content edits. Every successful write publishes a domain event.
package app

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/lib/geocode"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/lib/media"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput marks request values that could not be coerced into a record.
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (geocode.Point, error)
}

type MediaStore interface {
	Save(folder string, fh *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// notify publishes e and logs a failure; the write it describes has already succeeded.
func notify(ctx context.Context, log *slog.Logger, pub events.Publisher, e events.Event) {
	if err := pub.Publish(ctx, e); err != nil {
		log.Warn("failed to publish event", slog.String("type", string(e.Type)), sl.Err(err))
	}
}

// discard removes stored media after a failed or superseding write.
func discard(log *slog.Logger, media MediaStore, urls ...string) {
	for _, u := range urls {
		if u == "" {
			continue
		}
		if err := media.Remove(u); err != nil {
			log.Warn("failed to remove media", slog.String("url", u), sl.Err(err))
		}
	}
}

// mediaErr reports rejected uploads as invalid input.
func mediaErr(err error) error {
	if errors.Is(err, media.ErrNotImage) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
