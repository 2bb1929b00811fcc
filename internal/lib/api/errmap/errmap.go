// Package errmap translates use case and storage errors into API responses.
package errmap

import (
	"context"
	"debaren/internal/app"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"debaren/internal/storage"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Mapping ties an error to a status. An empty Message answers with the
// mapped error's own text.
type Mapping struct {
	Err     error
	Status  int
	Message string
}

var defaults = []Mapping{
	{Err: storage.ErrVenueNotFound, Status: http.StatusNotFound},
	{Err: storage.ErrBookingNotFound, Status: http.StatusNotFound},
	{Err: storage.ErrImageNotFound, Status: http.StatusNotFound},
	{Err: storage.ErrNotFound, Status: http.StatusNotFound},
	{Err: storage.ErrDatesTaken, Status: http.StatusConflict},
	{Err: storage.ErrVenueUnavailable, Status: http.StatusConflict},
	{Err: models.ErrInvalidTransition, Status: http.StatusConflict},
	{Err: app.ErrInvalidDateRange, Status: http.StatusBadRequest},
	{Err: app.ErrStartInPast, Status: http.StatusBadRequest},
	{Err: context.DeadlineExceeded, Status: http.StatusGatewayTimeout, Message: "request timeout"},
}

// Resolve returns the status and client message for err. fallback is the
// message for unexpected errors.
func Resolve(err error, fallback string, extra ...Mapping) (int, response.Response) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, response.ValidationError(verrs)
	}

	if errors.Is(err, app.ErrInvalidInput) || errors.Is(err, request.ErrBadParam) {
		return http.StatusBadRequest, response.Error(err.Error())
	}

	for _, mappings := range [][]Mapping{extra, defaults} {
		for _, m := range mappings {
			if !errors.Is(err, m.Err) {
				continue
			}
			msg := m.Message
			if msg == "" {
				msg = m.Err.Error()
			}
			return m.Status, response.Error(msg)
		}
	}

	return http.StatusInternalServerError, response.Error(fallback)
}

// Write logs err and renders the mapped response.
func Write(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, fallback string, extra ...Mapping) {
	status, resp := Resolve(err, fallback, extra...)

	if status >= http.StatusInternalServerError {
		log.Error(fallback, sl.Err(err))
	} else {
		log.Info("request rejected", slog.Int("status", status), sl.Err(err))
	}

	render.Status(r, status)
	render.JSON(w, r, resp)
}
