// Package venueGallery edits a venue's image gallery.
package venueGallery

import (
	"context"
	"debaren/internal/app"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type GalleryResponse struct {
	response.Response
	Images []models.GalleryImage `json:"images"`
}

type ReorderRequest struct {
	ImageIDs []int64 `json:"image_ids" validate:"required,min=1,dive,gt=0"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GalleryEditor
type GalleryEditor interface {
	AddGallery(ctx context.Context, venueID int64, files []*multipart.FileHeader, caption string) ([]models.GalleryImage, error)
	RemoveGalleryImage(ctx context.Context, venueID, imageID int64) error
	ReorderGallery(ctx context.Context, venueID int64, imageIDs []int64) error
}

var validate = validator.New()

// NewAdd appends the files sent as gallery_upload (or gallery) to the venue.
func NewAdd(log *slog.Logger, editor GalleryEditor, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.venueGallery.NewAdd"

		log := log.With(slog.String("op", op))

		venueID, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to add gallery images")
			return
		}

		log = log.With(slog.Int64("venue_id", venueID))

		form, err := request.Form(w, r, maxBytes)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to add gallery images")
			return
		}

		files := form.File[app.FieldGalleryUpload]
		if len(files) == 0 {
			files = form.File[app.FieldGallery]
		}

		var caption string
		if v := form.Value[app.FieldCaption]; len(v) > 0 {
			caption = strings.TrimSpace(v[0])
		}

		images, err := editor.AddGallery(r.Context(), venueID, files, caption)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to add gallery images")
			return
		}

		log.Info("gallery images added", slog.Int("count", len(images)))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, GalleryResponse{
			Response: response.OK(),
			Images:   images,
		})
	}
}

func NewRemove(log *slog.Logger, editor GalleryEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.venueGallery.NewRemove"

		log := log.With(slog.String("op", op))

		venueID, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to remove gallery image")
			return
		}

		imageID, err := request.ID(r, "imageID")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to remove gallery image")
			return
		}

		log = log.With(slog.Int64("venue_id", venueID), slog.Int64("image_id", imageID))

		if err = editor.RemoveGalleryImage(r.Context(), venueID, imageID); err != nil {
			errmap.Write(w, r, log, err, "failed to remove gallery image")
			return
		}

		log.Info("gallery image removed")

		render.JSON(w, r, response.OK())
	}
}

func NewReorder(log *slog.Logger, editor GalleryEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.venueGallery.NewReorder"

		log := log.With(slog.String("op", op))

		venueID, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to reorder gallery")
			return
		}

		log = log.With(slog.Int64("venue_id", venueID))

		var req ReorderRequest

		if err = render.DecodeJSON(r.Body, &req); err != nil {
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

		if err = editor.ReorderGallery(r.Context(), venueID, req.ImageIDs); err != nil {
			errmap.Write(w, r, log, err, "failed to reorder gallery")
			return
		}

		log.Info("gallery reordered", slog.Int("count", len(req.ImageIDs)))

		render.JSON(w, r, response.OK())
	}
}
