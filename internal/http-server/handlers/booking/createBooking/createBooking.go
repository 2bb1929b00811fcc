package createBooking

import (
	"context"
	"debaren/internal/app"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/response"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, req app.BookingRequest) (*models.Booking, error)
}

var validate = validator.New()

func New(log *slog.Logger, booking BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		var req app.BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log = log.With(slog.Int64("venue_id", req.VenueID))

		if err = validate.Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		b, err := booking.Create(r.Context(), req)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to create booking")
			return
		}

		log.Info("booking created", slog.Int64("booking_id", b.ID), slog.String("start_date", b.StartDate.String()))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
