package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"
)

type SocialLinks struct {
	db *sql.DB
}

func (s *Storage) SocialLinks() *SocialLinks {
	return &SocialLinks{db: s.DB}
}

func (r *SocialLinks) List(ctx context.Context) ([]models.FooterSocialLink, error) {
	const op = "storage.postgres.SocialLinks.List"

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, platform, url, icon, sort_order FROM footer_social_links ORDER BY sort_order, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.FooterSocialLink{}
	for rows.Next() {
		var l models.FooterSocialLink
		if err = rows.Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Order); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, l)
	}

	return items, rows.Err()
}

func (r *SocialLinks) Get(ctx context.Context, id int64) (*models.FooterSocialLink, error) {
	const op = "storage.postgres.SocialLinks.Get"

	var l models.FooterSocialLink
	err := r.db.QueryRowContext(ctx,
		`SELECT id, platform, url, icon, sort_order FROM footer_social_links WHERE id = $1`, id,
	).Scan(&l.ID, &l.Platform, &l.URL, &l.Icon, &l.Order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrNotFound))
	}

	return &l, nil
}

func (r *SocialLinks) Create(ctx context.Context, l *models.FooterSocialLink) (int64, error) {
	const op = "storage.postgres.SocialLinks.Create"

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO footer_social_links (platform, url, icon, sort_order)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		l.Platform, l.URL, l.Icon, l.Order,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *SocialLinks) Update(ctx context.Context, id int64, l *models.FooterSocialLink) error {
	const op = "storage.postgres.SocialLinks.Update"

	res, err := r.db.ExecContext(ctx, `
		UPDATE footer_social_links SET platform = $2, url = $3, icon = $4, sort_order = $5
		WHERE id = $1`,
		id, l.Platform, l.URL, l.Icon, l.Order,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *SocialLinks) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "storage.postgres.SocialLinks.Delete", "footer_social_links", id)
}
