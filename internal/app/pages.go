package app

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/lib/media"
	"debaren/internal/models"
	"debaren/internal/storage"
	"errors"
	"log/slog"
	"mime/multipart"
)

type PageRepository interface {
	GetAbout(ctx context.Context) (*models.About, error)
	SaveAbout(ctx context.Context, a *models.About) error
	GetHero(ctx context.Context) (*models.HeroSection, error)
	SaveHero(ctx context.Context, h *models.HeroSection) error
}

// PageService edits the about and hero singletons.
type PageService struct {
	repo   PageRepository
	media  MediaStore
	events events.Publisher
	log    *slog.Logger
}

func NewPageService(log *slog.Logger, repo PageRepository, media MediaStore, pub events.Publisher) *PageService {
	return &PageService{
		repo:   repo,
		media:  media,
		events: pub,
		log:    log.With(slog.String("component", "app.pages")),
	}
}

func (s *PageService) About(ctx context.Context) (*models.About, error) {
	return s.repo.GetAbout(ctx)
}

// SaveAbout upserts the about record. Without an upload the current image is kept.
func (s *PageService) SaveAbout(ctx context.Context, a *models.About, upload *multipart.FileHeader) (*models.About, error) {
	if err := validate.Struct(a); err != nil {
		return nil, err
	}

	var previous string
	current, err := s.repo.GetAbout(ctx)
	switch {
	case err == nil:
		previous = current.Image
	case !errors.Is(err, storage.ErrNotFound):
		return nil, err
	}
	a.Image = previous

	if upload != nil {
		url, err := s.media.Save(media.FolderAbout, upload)
		if err != nil {
			return nil, mediaErr(err)
		}
		a.Image = url
	}

	if err := s.repo.SaveAbout(ctx, a); err != nil {
		if upload != nil {
			discard(s.log, s.media, a.Image)
		}
		return nil, err
	}
	if upload != nil {
		discard(s.log, s.media, previous)
	}

	notify(ctx, s.log, s.events, events.Changed("about", "update", 0))

	return s.repo.GetAbout(ctx)
}

// Hero returns the hero section with the default call to action filled in.
func (s *PageService) Hero(ctx context.Context) (*models.HeroSection, error) {
	h, err := s.repo.GetHero(ctx)
	if err != nil {
		return nil, err
	}
	withDefaults := h.WithDefaults()
	return &withDefaults, nil
}

func (s *PageService) SaveHero(ctx context.Context, h *models.HeroSection) (*models.HeroSection, error) {
	withDefaults := h.WithDefaults()
	if err := validate.Struct(withDefaults); err != nil {
		return nil, err
	}

	if err := s.repo.SaveHero(ctx, &withDefaults); err != nil {
		return nil, err
	}

	notify(ctx, s.log, s.events, events.Changed("hero", "update", 0))

	return s.Hero(ctx)
}
