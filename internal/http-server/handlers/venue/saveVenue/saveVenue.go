// Package saveVenue handles admin venue submissions sent as multipart forms.
package saveVenue

import (
	"context"
	"debaren/internal/app"
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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueSaver
type VenueSaver interface {
	Create(ctx context.Context, form app.VenueForm) (*models.Venue, error)
	Update(ctx context.Context, id int64, form app.VenueForm) (*models.Venue, error)
}

func NewCreate(log *slog.Logger, saver VenueSaver, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.saveVenue.NewCreate"

		log := log.With(slog.String("op", op))

		form, err := parse(w, r, maxBytes)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to create venue")
			return
		}

		venue, err := saver.Create(r.Context(), form)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to create venue")
			return
		}

		log.Info("venue created", slog.Int64("venue_id", venue.ID), slog.Bool("located", venue.HasLocation()))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, venue)
	}
}

func NewUpdate(log *slog.Logger, saver VenueSaver, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.saveVenue.NewUpdate"

		log := log.With(slog.String("op", op))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update venue")
			return
		}

		log = log.With(slog.Int64("venue_id", id))

		form, err := parse(w, r, maxBytes)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update venue")
			return
		}

		venue, err := saver.Update(r.Context(), id, form)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update venue")
			return
		}

		log.Info("venue updated", slog.Bool("located", venue.HasLocation()))

		responseOK(w, r, venue)
	}
}

func parse(w http.ResponseWriter, r *http.Request, maxBytes int64) (app.VenueForm, error) {
	mf, err := request.Form(w, r, maxBytes)
	if err != nil {
		return app.VenueForm{}, err
	}
	return app.ParseVenueForm(mf)
}

func responseOK(w http.ResponseWriter, r *http.Request, venue *models.Venue) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK(),
		Venue:    venue,
	})
}
