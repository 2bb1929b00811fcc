package cached

import (
	"context"
	"debaren/internal/models"
	"log/slog"
)

type PageStore interface {
	GetAbout(ctx context.Context) (*models.About, error)
	SaveAbout(ctx context.Context, a *models.About) error
	GetHero(ctx context.Context) (*models.HeroSection, error)
	SaveHero(ctx context.Context, h *models.HeroSection) error
}

// Pages caches the about and hero singletons.
type Pages struct {
	next  PageStore
	cache Cache
	log   *slog.Logger
}

const (
	aboutKey = "about"
	heroKey  = "hero"
)

func NewPages(log *slog.Logger, next PageStore, cache Cache) *Pages {
	return &Pages{
		next:  next,
		cache: cache,
		log:   log.With(slog.String("component", "cached.pages")),
	}
}

func (p *Pages) GetAbout(ctx context.Context) (*models.About, error) {
	return readThrough(ctx, p.log, p.cache, aboutKey, func() (*models.About, error) {
		return p.next.GetAbout(ctx)
	})
}

func (p *Pages) SaveAbout(ctx context.Context, a *models.About) error {
	if err := p.next.SaveAbout(ctx, a); err != nil {
		return err
	}

	invalidate(ctx, p.log, p.cache, aboutKey)
	return nil
}

func (p *Pages) GetHero(ctx context.Context) (*models.HeroSection, error) {
	return readThrough(ctx, p.log, p.cache, heroKey, func() (*models.HeroSection, error) {
		return p.next.GetHero(ctx)
	})
}

func (p *Pages) SaveHero(ctx context.Context, h *models.HeroSection) error {
	if err := p.next.SaveHero(ctx, h); err != nil {
		return err
	}

	invalidate(ctx, p.log, p.cache, heroKey)
	return nil
}
