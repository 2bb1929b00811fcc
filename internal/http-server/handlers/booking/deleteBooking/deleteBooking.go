package deleteBooking

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	Delete(ctx context.Context, id int64) error
}

func New(log *slog.Logger, deleter BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to delete booking")
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		if err = deleter.Delete(r.Context(), id); err != nil {
			errmap.Write(w, r, log, err, "failed to delete booking")
			return
		}

		log.Info("booking deleted")

		render.JSON(w, r, response.OK())
	}
}
