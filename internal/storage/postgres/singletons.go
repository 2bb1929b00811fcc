package postgres

import (
	"context"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"
)

// GetAbout returns the most recently updated about record.
func (s *Storage) GetAbout(ctx context.Context) (*models.About, error) {
	const op = "storage.postgres.GetAbout"

	var a models.About
	err := s.DB.QueryRowContext(ctx, `
		SELECT title, phone, address, description, image, updated_at
		FROM about ORDER BY updated_at DESC, id DESC LIMIT 1`,
	).Scan(&a.Title, &a.Phone, &a.Address, &a.Description, &a.Image, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrNotFound))
	}

	return &a, nil
}

// SaveAbout updates the latest about record, creating it when none exists.
func (s *Storage) SaveAbout(ctx context.Context, a *models.About) error {
	const op = "storage.postgres.SaveAbout"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE about SET title = $1, phone = $2, address = $3, description = $4, image = $5,
			updated_at = NOW()
		WHERE id = (SELECT id FROM about ORDER BY updated_at DESC, id DESC LIMIT 1)`,
		a.Title, a.Phone, a.Address, a.Description, a.Image,
	)
	if err != nil {
		return fmt.Errorf("%s: update: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO about (title, phone, address, description, image) VALUES ($1, $2, $3, $4, $5)`,
		a.Title, a.Phone, a.Address, a.Description, a.Image,
	)
	if err != nil {
		return fmt.Errorf("%s: insert: %w", op, err)
	}

	return nil
}

// GetHero returns the most recently updated hero section.
func (s *Storage) GetHero(ctx context.Context) (*models.HeroSection, error) {
	const op = "storage.postgres.GetHero"

	var h models.HeroSection
	err := s.DB.QueryRowContext(ctx, `
		SELECT title, subtitle, cta_text, cta_url, updated_at
		FROM hero_sections ORDER BY updated_at DESC, id DESC LIMIT 1`,
	).Scan(&h.Title, &h.Subtitle, &h.CTAText, &h.CTAURL, &h.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrNotFound))
	}

	return &h, nil
}

// SaveHero updates the latest hero section, creating it when none exists.
func (s *Storage) SaveHero(ctx context.Context, h *models.HeroSection) error {
	const op = "storage.postgres.SaveHero"

	hero := h.WithDefaults()

	res, err := s.DB.ExecContext(ctx, `
		UPDATE hero_sections SET title = $1, subtitle = $2, cta_text = $3, cta_url = $4,
			updated_at = NOW()
		WHERE id = (SELECT id FROM hero_sections ORDER BY updated_at DESC, id DESC LIMIT 1)`,
		hero.Title, hero.Subtitle, hero.CTAText, hero.CTAURL,
	)
	if err != nil {
		return fmt.Errorf("%s: update: %w", op, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO hero_sections (title, subtitle, cta_text, cta_url) VALUES ($1, $2, $3, $4)`,
		hero.Title, hero.Subtitle, hero.CTAText, hero.CTAURL,
	)
	if err != nil {
		return fmt.Errorf("%s: insert: %w", op, err)
	}

	return nil
}
