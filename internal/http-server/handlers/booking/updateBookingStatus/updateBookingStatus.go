package updateBookingStatus

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type StatusRequest struct {
	Status models.BookingStatus `json:"status" validate:"required,oneof=pending confirmed cancelled completed rejected"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusSetter
type StatusSetter interface {
	SetStatus(ctx context.Context, id int64, next models.BookingStatus) (*models.Booking, error)
}

var validate = validator.New()

func New(log *slog.Logger, booking StatusSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBookingStatus.New"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update booking status")
			return
		}

		log = log.With(slog.Int64("booking_id", id))

		var req StatusRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		b, err := booking.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update booking status")
			return
		}

		log.Info("booking status updated", slog.String("status", string(b.Status)))

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
