// Package findNearby answers "what is close to this point" for any located
// collection, such as venues and WiFi spots.
package findNearby

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"debaren/internal/models"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

const (
	DefaultRadiusKm = 25
	MaxRadiusKm     = 500
)

type NearbyResponse[T any] struct {
	response.Response
	RadiusKm float64            `json:"radius_km"`
	Results  []models.Nearby[T] `json:"results"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Finder
type Finder[T any] interface {
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Nearby[T], error)
}

func New[T any](log *slog.Logger, finder Finder[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.geo.findNearby.New"

		log := log.With(slog.String("op", op))

		lat, lng, radius, err := point(r)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to search nearby")
			return
		}

		results, err := finder.Nearby(r.Context(), lat, lng, radius)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to search nearby")
			return
		}

		log.Info("nearby search done",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.Float64("radius_km", radius),
			slog.Int("count", len(results)),
		)

		if results == nil {
			results = []models.Nearby[T]{}
		}

		render.JSON(w, r, NearbyResponse[T]{
			Response: response.OK(),
			RadiusKm: radius,
			Results:  results,
		})
	}
}

func point(r *http.Request) (lat, lng, radius float64, err error) {
	q := r.URL.Query()
	if q.Get("lat") == "" || q.Get("lng") == "" {
		return 0, 0, 0, fmt.Errorf("%w: lat and lng are required", request.ErrBadParam)
	}

	if lat, err = request.Float(r, "lat", 0); err != nil {
		return 0, 0, 0, err
	}
	if lng, err = request.Float(r, "lng", 0); err != nil {
		return 0, 0, 0, err
	}
	if radius, err = request.Float(r, "radius_km", DefaultRadiusKm); err != nil {
		return 0, 0, 0, err
	}

	switch {
	case lat < -90 || lat > 90:
		return 0, 0, 0, fmt.Errorf("%w: lat must be between -90 and 90", request.ErrBadParam)
	case lng < -180 || lng > 180:
		return 0, 0, 0, fmt.Errorf("%w: lng must be between -180 and 180", request.ErrBadParam)
	case radius <= 0 || radius > MaxRadiusKm:
		return 0, 0, 0, fmt.Errorf("%w: radius_km must be in (0, %d]", request.ErrBadParam, MaxRadiusKm)
	}

	return lat, lng, radius, nil
}
