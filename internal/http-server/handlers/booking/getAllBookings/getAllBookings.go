package getAllBookings

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"debaren/internal/models"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
}

func New(log *slog.Logger, lister BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getAllBookings.New"

		log := log.With(slog.String("op", op))

		filter, err := parseFilter(r)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get bookings")
			return
		}

		bookings, err := lister.List(r.Context(), filter)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get bookings")
			return
		}

		log.Info("bookings retrieved", slog.Int("count", len(bookings)))

		if bookings == nil {
			bookings = []models.Booking{}
		}

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}

func parseFilter(r *http.Request) (models.BookingFilter, error) {
	q := r.URL.Query()

	filter := models.BookingFilter{Status: models.BookingStatus(q.Get("status"))}

	if raw := q.Get("venue_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return models.BookingFilter{}, fmt.Errorf("%w: invalid venue_id format", request.ErrBadParam)
		}
		filter.VenueID = id
	}

	return filter, nil
}
