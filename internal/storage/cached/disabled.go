package cached

import (
	"context"
	"debaren/internal/storage/redis"
	"errors"
)

// ErrGeoDisabled is returned by NoGeo radius queries. Callers scan the
// listing instead.
var ErrGeoDisabled = errors.New("geo index disabled")

// NoCache is used when Redis is not configured: every read misses.
type NoCache struct{}

func (NoCache) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (NoCache) SetJSON(context.Context, string, any) error         { return nil }
func (NoCache) Invalidate(context.Context, ...string) error        { return nil }

type NoGeo struct{}

func (NoGeo) Put(context.Context, int64, float64, float64) error { return nil }
func (NoGeo) Remove(context.Context, int64) error                { return nil }
func (NoGeo) Reset(context.Context) error                        { return nil }

func (NoGeo) Nearby(context.Context, float64, float64, float64, int) ([]redis.GeoHit, error) {
	return nil, ErrGeoDisabled
}
