package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"

	"github.com/lib/pq"
)

func (s *Storage) galleryFor(ctx context.Context, venueIDs []int64) ([]models.GalleryImage, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, venue_id, image, caption, sort_order
		FROM venue_gallery_images
		WHERE venue_id = ANY($1)
		ORDER BY venue_id, sort_order, id`, pq.Array(venueIDs))
	if err != nil {
		return nil, fmt.Errorf("query gallery: %w", err)
	}
	defer rows.Close()

	var images []models.GalleryImage
	for rows.Next() {
		var img models.GalleryImage
		if err = rows.Scan(&img.ID, &img.VenueID, &img.Image, &img.Caption, &img.Order); err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// appendGallery adds images after the venue's current last position.
func appendGallery(ctx context.Context, tx *sql.Tx, venueID int64, images []models.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}

	var next int
	err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM venue_gallery_images WHERE venue_id = $1`, venueID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("next gallery position: %w", err)
	}

	for i, img := range images {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO venue_gallery_images (venue_id, image, caption, sort_order)
			VALUES ($1, $2, $3, $4)`, venueID, img.Image, img.Caption, next+i)
		if err != nil {
			return fmt.Errorf("insert gallery image: %w", err)
		}
	}

	return nil
}

// AddGalleryImages appends images to an existing venue's gallery and returns
// them with their ids and positions.
func (s *Storage) AddGalleryImages(ctx context.Context, venueID int64, images []models.GalleryImage) ([]models.GalleryImage, error) {
	const op = "storage.postgres.AddGalleryImages"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, venueID).Scan(&locked)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrVenueNotFound))
	}

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM venue_gallery_images WHERE venue_id = $1`, venueID,
	).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("%s: next gallery position: %w", op, err)
	}

	out := make([]models.GalleryImage, 0, len(images))
	for i, img := range images {
		img.VenueID = venueID
		img.Order = next + i
		err = tx.QueryRowContext(ctx, `
			INSERT INTO venue_gallery_images (venue_id, image, caption, sort_order)
			VALUES ($1, $2, $3, $4)
			RETURNING id`, venueID, img.Image, img.Caption, img.Order).Scan(&img.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: insert gallery image: %w", op, err)
		}
		out = append(out, img)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return out, nil
}

// RemoveGalleryImage deletes one image of a venue and returns its stored path.
func (s *Storage) RemoveGalleryImage(ctx context.Context, venueID, imageID int64) (string, error) {
	const op = "storage.postgres.RemoveGalleryImage"

	var image string
	err := s.DB.QueryRowContext(ctx, `
		DELETE FROM venue_gallery_images
		WHERE id = $1 AND venue_id = $2
		RETURNING image`, imageID, venueID).Scan(&image)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, notFound(err, storage.ErrImageNotFound))
	}

	return image, nil
}

// ReorderGallery sets image positions to their index in imageIDs. Every id must
// belong to the venue; images not listed keep their relative order after the listed ones.
func (s *Storage) ReorderGallery(ctx context.Context, venueID int64, imageIDs []int64) error {
	const op = "storage.postgres.ReorderGallery"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var owned int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM venue_gallery_images
		WHERE venue_id = $1 AND id = ANY($2)`, venueID, pq.Array(imageIDs)).Scan(&owned)
	if err != nil {
		return fmt.Errorf("%s: check ownership: %w", op, err)
	}
	if owned != len(imageIDs) {
		return fmt.Errorf("%s: %w", op, storage.ErrImageNotFound)
	}

	for pos, id := range imageIDs {
		if _, err = tx.ExecContext(ctx,
			`UPDATE venue_gallery_images SET sort_order = $1 WHERE id = $2`, pos, id); err != nil {
			return fmt.Errorf("%s: update position: %w", op, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE venue_gallery_images g SET sort_order = $2 + r.rn
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY sort_order, id) - 1 AS rn
			FROM venue_gallery_images
			WHERE venue_id = $1 AND NOT (id = ANY($3))
		) r
		WHERE g.id = r.id`, venueID, len(imageIDs), pq.Array(imageIDs))
	if err != nil {
		return fmt.Errorf("%s: shift unlisted: %w", op, err)
	}

	return tx.Commit()
}
