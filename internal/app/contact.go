package app

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/models"
	"debaren/internal/storage"
	"log/slog"
	"strings"
)

type ContactService struct {
	repo   storage.Collection[models.ContactMessage]
	events events.Publisher
	log    *slog.Logger
}

func NewContactService(log *slog.Logger, repo storage.Collection[models.ContactMessage], pub events.Publisher) *ContactService {
	return &ContactService{
		repo:   repo,
		events: pub,
		log:    log.With(slog.String("component", "app.contact")),
	}
}

// Submit stores a message from the public contact form.
func (s *ContactService) Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)

	if err := validate.Struct(msg); err != nil {
		return nil, err
	}

	if _, err := s.repo.Create(ctx, &msg); err != nil {
		return nil, err
	}

	notify(ctx, s.log, s.events, events.New(events.ContactReceived, "contact_message", msg.ID, msg))

	return &msg, nil
}
