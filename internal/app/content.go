package app

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/storage"
	"log/slog"
	"mime/multipart"
)

// ContentService manages one of the simple content collections. Types with an
// image field set Image so uploads replace the stored file.
type ContentService[T any] struct {
	Name string

	repo   storage.Collection[T]
	media  MediaStore
	folder string
	image  func(*T) *string
	events events.Publisher
	log    *slog.Logger
}

type ContentOption[T any] func(*ContentService[T])

// WithImage enables uploads stored under folder and assigned through field.
func WithImage[T any](media MediaStore, folder string, field func(*T) *string) ContentOption[T] {
	return func(s *ContentService[T]) {
		s.media = media
		s.folder = folder
		s.image = field
	}
}

func NewContentService[T any](log *slog.Logger, name string, repo storage.Collection[T], pub events.Publisher, opts ...ContentOption[T]) *ContentService[T] {
	s := &ContentService[T]{
		Name:   name,
		repo:   repo,
		events: pub,
		log:    log.With(slog.String("component", "app."+name)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ContentService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *ContentService[T]) Get(ctx context.Context, id int64) (*T, error) {
	return s.repo.Get(ctx, id)
}

func (s *ContentService[T]) Create(ctx context.Context, item *T, upload *multipart.FileHeader) (*T, error) {
	if err := validate.Struct(item); err != nil {
		return nil, err
	}

	saved, err := s.store(item, upload)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		s.discard(saved)
		return nil, err
	}

	notify(ctx, s.log, s.events, events.Changed(s.Name, "create", id))

	return s.repo.Get(ctx, id)
}

// Update replaces the record. Without an upload the stored image is kept.
func (s *ContentService[T]) Update(ctx context.Context, id int64, item *T, upload *multipart.FileHeader) (*T, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var previous string
	if s.image != nil {
		previous = *s.image(existing)
		*s.image(item) = previous
	}

	if err := validate.Struct(item); err != nil {
		return nil, err
	}

	saved, err := s.store(item, upload)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, item); err != nil {
		s.discard(saved)
		return nil, err
	}
	if saved != "" {
		s.discard(previous)
	}

	notify(ctx, s.log, s.events, events.Changed(s.Name, "update", id))

	return s.repo.Get(ctx, id)
}

func (s *ContentService[T]) Delete(ctx context.Context, id int64) error {
	var image string
	if s.image != nil {
		existing, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		image = *s.image(existing)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.discard(image)

	notify(ctx, s.log, s.events, events.Changed(s.Name, "delete", id))

	return nil
}

func (s *ContentService[T]) store(item *T, upload *multipart.FileHeader) (string, error) {
	if upload == nil || s.image == nil {
		return "", nil
	}

	url, err := s.media.Save(s.folder, upload)
	if err != nil {
		return "", mediaErr(err)
	}
	*s.image(item) = url

	return url, nil
}

func (s *ContentService[T]) discard(url string) {
	if s.media != nil {
		discard(s.log, s.media, url)
	}
}
