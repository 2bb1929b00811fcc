package cached

import (
	"context"
	"debaren/internal/storage"
	"log/slog"
)

// Collection caches the full listing of a content collection. Writes go to the
// underlying store and drop the cached listing.
type Collection[T any] struct {
	next  storage.Collection[T]
	cache Cache
	key   string
	log   *slog.Logger
}

func NewCollection[T any](log *slog.Logger, next storage.Collection[T], cache Cache, key string) *Collection[T] {
	return &Collection[T]{
		next:  next,
		cache: cache,
		key:   key,
		log:   log.With(slog.String("component", "cached."+key)),
	}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return readThrough(ctx, c.log, c.cache, c.key, func() ([]T, error) {
		return c.next.List(ctx)
	})
}

func (c *Collection[T]) Get(ctx context.Context, id int64) (*T, error) {
	return c.next.Get(ctx, id)
}

func (c *Collection[T]) Create(ctx context.Context, item *T) (int64, error) {
	id, err := c.next.Create(ctx, item)
	if err != nil {
		return 0, err
	}

	invalidate(ctx, c.log, c.cache, c.key)
	return id, nil
}

func (c *Collection[T]) Update(ctx context.Context, id int64, item *T) error {
	if err := c.next.Update(ctx, id, item); err != nil {
		return err
	}

	invalidate(ctx, c.log, c.cache, c.key)
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}

	invalidate(ctx, c.log, c.cache, c.key)
	return nil
}
