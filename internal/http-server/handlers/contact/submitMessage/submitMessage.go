package submitMessage

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/response"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ContactResponse struct {
	response.Response
	ID int64 `json:"id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageSubmitter
type MessageSubmitter interface {
	Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
}

func New(log *slog.Logger, submitter MessageSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.submitMessage.New"

		log := log.With(slog.String("op", op))

		var req ContactRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		msg, err := submitter.Submit(r.Context(), models.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		})
		if err != nil {
			errmap.Write(w, r, log, err, "failed to send message")
			return
		}

		log.Info("contact message stored", slog.Int64("message_id", msg.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ContactResponse{
			Response: response.OK(),
			ID:       msg.ID,
		})
	}
}
