package about

import (
	"context"
	"debaren/internal/app"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"debaren/internal/models"
	"debaren/internal/storage"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/render"
)

type AboutResponse struct {
	response.Response
	About *models.About `json:"about"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AboutPage
type AboutPage interface {
	About(ctx context.Context) (*models.About, error)
	SaveAbout(ctx context.Context, a *models.About, upload *multipart.FileHeader) (*models.About, error)
}

var notSet = errmap.Mapping{Err: storage.ErrNotFound, Status: http.StatusNotFound, Message: "about information is not set"}

func NewGet(log *slog.Logger, page AboutPage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.about.NewGet"

		log := log.With(slog.String("op", op))

		a, err := page.About(r.Context())
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get about information", notSet)
			return
		}

		responseOK(w, r, a)
	}
}

// NewSave upserts the about record from a multipart form with an optional image.
func NewSave(log *slog.Logger, page AboutPage, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.page.about.NewSave"

		log := log.With(slog.String("op", op))

		form, err := request.Form(w, r, maxBytes)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to save about information")
			return
		}

		a, upload, err := app.ParseAboutForm(form)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to save about information")
			return
		}

		saved, err := page.SaveAbout(r.Context(), a, upload)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to save about information")
			return
		}

		log.Info("about information saved", slog.Bool("new_image", upload != nil))

		responseOK(w, r, saved)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, a *models.About) {
	render.JSON(w, r, AboutResponse{
		Response: response.OK(),
		About:    a,
	})
}
