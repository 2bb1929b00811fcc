package getVenueInfo

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"debaren/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type VenueResponse struct {
	response.Response
	Venue *models.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGetter
type VenueGetter interface {
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
}

func New(log *slog.Logger, getter VenueGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenueInfo.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get venue")
			return
		}

		log = log.With(slog.Int64("venue_id", id))

		venue, err := getter.GetVenue(r.Context(), id)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get venue")
			return
		}

		log.Info("venue retrieved")

		render.JSON(w, r, VenueResponse{
			Response: response.OK(),
			Venue:    venue,
		})
	}
}
