package cached

import (
	"context"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"debaren/internal/storage"
	"errors"
	"log/slog"
)

// WifiSpots adds geo indexing to the cached wifi spot collection.
type WifiSpots struct {
	*Collection[models.WifiSpot]
	geo GeoIndex
}

func NewWifiSpots(log *slog.Logger, next storage.Collection[models.WifiSpot], cache Cache, geo GeoIndex) *WifiSpots {
	return &WifiSpots{
		Collection: NewCollection(log, next, cache, "wifi_spots"),
		geo:        geo,
	}
}

func (w *WifiSpots) Create(ctx context.Context, spot *models.WifiSpot) (int64, error) {
	id, err := w.Collection.Create(ctx, spot)
	if err != nil {
		return 0, err
	}

	indexed := *spot
	indexed.ID = id
	index(ctx, w.log, w.geo, indexed)

	return id, nil
}

func (w *WifiSpots) Update(ctx context.Context, id int64, spot *models.WifiSpot) error {
	if err := w.Collection.Update(ctx, id, spot); err != nil {
		return err
	}

	indexed := *spot
	indexed.ID = id
	index(ctx, w.log, w.geo, indexed)

	return nil
}

func (w *WifiSpots) Delete(ctx context.Context, id int64) error {
	if err := w.Collection.Delete(ctx, id); err != nil {
		return err
	}

	if err := w.geo.Remove(ctx, id); err != nil {
		w.log.Warn("geo index removal failed", slog.Int64("id", id), sl.Err(err))
	}

	return nil
}

// Nearby returns wifi spots within radiusKm of the point, closest first.
func (w *WifiSpots) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Nearby[models.WifiSpot], error) {
	spots, err := w.List(ctx)
	if err != nil {
		return nil, err
	}

	hits, err := w.geo.Nearby(ctx, lat, lng, radiusKm, nearbyLimit)
	if err != nil {
		if !errors.Is(err, ErrGeoDisabled) {
			w.log.Warn("geo query failed, scanning listing", sl.Err(err))
		}
		return scanNearby(spots, lat, lng, radiusKm), nil
	}

	return joinHits(hits, spots), nil
}

// Reindex rebuilds the geo index from the database.
func (w *WifiSpots) Reindex(ctx context.Context) error {
	spots, err := w.next.List(ctx)
	if err != nil {
		return err
	}
	return reindex(ctx, w.geo, spots)
}
