package deleteVenue

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	Delete(ctx context.Context, id int64) error
}

func New(log *slog.Logger, deleter VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to delete venue")
			return
		}

		if err = deleter.Delete(r.Context(), id); err != nil {
			errmap.Write(w, r, log.With(slog.Int64("venue_id", id)), err, "failed to delete venue")
			return
		}

		log.Info("venue deleted", slog.Int64("venue_id", id))

		render.JSON(w, r, response.OK())
	}
}
