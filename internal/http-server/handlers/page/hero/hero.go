package hero

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/response"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"debaren/internal/storage"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type HeroRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"cta_text"`
	CTAURL   string `json:"cta_url"`
}

type HeroResponse struct {
	response.Response
	Hero *models.HeroSection `json:"hero"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HeroPage
type HeroPage interface {
	Hero(ctx context.Context) (*models.HeroSection, error)
	SaveHero(ctx context.Context, h *models.HeroSection) (*models.HeroSection, error)
}

var notSet = errmap.Mapping{Err: storage.ErrNotFound, Status: http.StatusNotFound, Message: "hero section is not set"}

func NewGet(log *slog.Logger, page HeroPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.hero.NewGet"

		log := log.With(slog.String("op", op))

		h, err := page.Hero(r.Context())
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get hero section", notSet)
			return
		}

		responseOK(w, r, h)
	}
}

func NewSave(log *slog.Logger, page HeroPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.hero.NewSave"

		log := log.With(slog.String("op", op))

		var req HeroRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		saved, err := page.SaveHero(r.Context(), &models.HeroSection{
			Title:    req.Title,
			Subtitle: req.Subtitle,
			CTAText:  req.CTAText,
			CTAURL:   req.CTAURL,
		})
		if err != nil {
			errmap.Write(w, r, log, err, "failed to save hero section")
			return
		}

		log.Info("hero section saved")

		responseOK(w, r, saved)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, h *models.HeroSection) {
	render.JSON(w, r, HeroResponse{
		Response: response.OK(),
		Hero:     h,
	})
}
