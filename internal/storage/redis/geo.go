package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
)

const geoKeyPrefix = "debaren:geo:v1:"

// GeoHit is one member found by a radius query.
type GeoHit struct {
	ID         int64
	DistanceKm float64
}

// GeoIndex keeps record coordinates in a Redis geo set keyed by record id.
type GeoIndex struct {
	rdb redis.Cmdable
	key string
}

func NewGeoIndex(rdb redis.Cmdable, name string) *GeoIndex {
	return &GeoIndex{rdb: rdb, key: geoKeyPrefix + name}
}

func (g *GeoIndex) Put(ctx context.Context, id int64, lat, lng float64) error {
	err := g.rdb.GeoAdd(ctx, g.key, &redis.GeoLocation{
		Name:      strconv.FormatInt(id, 10),
		Latitude:  lat,
		Longitude: lng,
	}).Err()
	if err != nil {
		return fmt.Errorf("geoadd %s/%d: %w", g.key, id, err)
	}

	return nil
}

func (g *GeoIndex) Remove(ctx context.Context, id int64) error {
	if err := g.rdb.ZRem(ctx, g.key, strconv.FormatInt(id, 10)).Err(); err != nil {
		return fmt.Errorf("zrem %s/%d: %w", g.key, id, err)
	}

	return nil
}

// Reset drops every member of the index.
func (g *GeoIndex) Reset(ctx context.Context) error {
	return g.rdb.Del(ctx, g.key).Err()
}

// Nearby returns members within radiusKm of the point, closest first.
func (g *GeoIndex) Nearby(ctx context.Context, lat, lng, radiusKm float64, limit int) ([]GeoHit, error) {
	locations, err := g.rdb.GeoRadius(ctx, g.key, lng, lat, &redis.GeoRadiusQuery{
		Radius:   radiusKm,
		Unit:     "km",
		WithDist: true,
		Count:    limit,
		Sort:     "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("georadius %s: %w", g.key, err)
	}

	hits := make([]GeoHit, 0, len(locations))
	for _, loc := range locations {
		id, err := strconv.ParseInt(loc.Name, 10, 64)
		if err != nil {
			continue
		}
		hits = append(hits, GeoHit{ID: id, DistanceKm: loc.Dist})
	}

	return hits, nil
}
