package getAllVenues

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/response"
	"debaren/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type VenuesResponse struct {
	response.Response
	Venues []models.Venue `json:"venues"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueLister
type VenueLister interface {
	ListVenues(ctx context.Context, venueType models.VenueType) ([]models.Venue, error)
}

func New(log *slog.Logger, lister VenueLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getAllVenues.New"

		log := log.With(slog.String("op", op))

		venueType := models.VenueType(r.URL.Query().Get("venue_type"))
		if venueType != "" && !venueType.Valid() {
			log.Info("unknown venue type", slog.String("venue_type", string(venueType)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown venue type"))
			return
		}

		venues, err := lister.ListVenues(r.Context(), venueType)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get venues")
			return
		}

		log.Info("venues retrieved", slog.Int("count", len(venues)))

		responseOK(w, r, venues)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venues []models.Venue) {
	if venues == nil {
		venues = []models.Venue{}
	}

	render.JSON(w, r, VenuesResponse{
		Response: response.OK(),
		Venues:   venues,
	})
}
