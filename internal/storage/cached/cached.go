// Package cached wraps the Postgres repositories with Redis cache-aside reads
// and a Redis geo index for radius queries. Cache and index failures are logged
// and fall back to the database.
package cached

import (
	"context"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"debaren/internal/storage/redis"
	"log/slog"
	"math"
	"sort"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type GeoIndex interface {
	Put(ctx context.Context, id int64, lat, lng float64) error
	Remove(ctx context.Context, id int64) error
	Reset(ctx context.Context) error
	Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]redis.GeoHit, error)
}

type located interface {
	Location() (lat, lng float64, ok bool)
	Key() int64
}

const nearbyLimit = 50

// readThrough returns the cached value for key or loads and caches it.
func readThrough[T any](ctx context.Context, log *slog.Logger, cache Cache, key string, load func() (T, error)) (T, error) {
	var cachedValue T

	ok, err := cache.GetJSON(ctx, key, &cachedValue)
	if err != nil {
		log.Warn("cache read failed", slog.String("key", key), sl.Err(err))
	}
	if ok {
		return cachedValue, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if err = cache.SetJSON(ctx, key, v); err != nil {
		log.Warn("cache write failed", slog.String("key", key), sl.Err(err))
	}

	return v, nil
}

func invalidate(ctx context.Context, log *slog.Logger, cache Cache, keys ...string) {
	if err := cache.Invalidate(ctx, keys...); err != nil {
		log.Warn("cache invalidation failed", slog.Any("keys", keys), sl.Err(err))
	}
}

// index puts item into geo when it has coordinates and removes it otherwise.
func index[T located](ctx context.Context, log *slog.Logger, geo GeoIndex, item T) {
	var err error
	if lat, lng, ok := item.Location(); ok {
		err = geo.Put(ctx, item.Key(), lat, lng)
	} else {
		err = geo.Remove(ctx, item.Key())
	}
	if err != nil {
		log.Warn("geo index update failed", slog.Int64("id", item.Key()), sl.Err(err))
	}
}

func reindex[T located](ctx context.Context, geo GeoIndex, items []T) error {
	if err := geo.Reset(ctx); err != nil {
		return err
	}
	for _, item := range items {
		lat, lng, ok := item.Location()
		if !ok {
			continue
		}
		if err := geo.Put(ctx, item.Key(), lat, lng); err != nil {
			return err
		}
	}
	return nil
}

// scanNearby filters items by great-circle distance, closest first.
func scanNearby[T located](items []T, lat, lng, radiusKm float64) []models.Nearby[T] {
	out := []models.Nearby[T]{}
	for _, item := range items {
		ilat, ilng, ok := item.Location()
		if !ok {
			continue
		}
		if d := distanceKm(lat, lng, ilat, ilng); d <= radiusKm {
			out = append(out, models.Nearby[T]{Item: item, DistanceKm: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	if len(out) > nearbyLimit {
		out = out[:nearbyLimit]
	}

	return out
}

// joinHits orders items by the geo hits they match, dropping ids with no item.
func joinHits[T located](hits []redis.GeoHit, items []T) []models.Nearby[T] {
	byID := make(map[int64]T, len(items))
	for _, item := range items {
		byID[item.Key()] = item
	}

	out := make([]models.Nearby[T], 0, len(hits))
	for _, h := range hits {
		if item, ok := byID[h.ID]; ok {
			out = append(out, models.Nearby[T]{Item: item, DistanceKm: h.DistanceKm})
		}
	}

	return out
}

const earthRadiusKm = 6371.0

func distanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
