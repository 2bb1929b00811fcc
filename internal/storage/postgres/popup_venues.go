package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"
)

type PopupVenues struct {
	db *sql.DB
}

func (s *Storage) PopupVenues() *PopupVenues {
	return &PopupVenues{db: s.DB}
}

func (r *PopupVenues) List(ctx context.Context) ([]models.PopupVenue, error) {
	const op = "storage.postgres.PopupVenues.List"

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, location, image FROM popup_venues ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.PopupVenue{}
	for rows.Next() {
		var p models.PopupVenue
		if err = rows.Scan(&p.ID, &p.Name, &p.Location, &p.Image); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, p)
	}

	return items, rows.Err()
}

func (r *PopupVenues) Get(ctx context.Context, id int64) (*models.PopupVenue, error) {
	const op = "storage.postgres.PopupVenues.Get"

	var p models.PopupVenue
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, location, image FROM popup_venues WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Location, &p.Image)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrNotFound))
	}

	return &p, nil
}

func (r *PopupVenues) Create(ctx context.Context, p *models.PopupVenue) (int64, error) {
	const op = "storage.postgres.PopupVenues.Create"

	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO popup_venues (name, location, image) VALUES ($1, $2, $3) RETURNING id`,
		p.Name, p.Location, p.Image,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *PopupVenues) Update(ctx context.Context, id int64, p *models.PopupVenue) error {
	const op = "storage.postgres.PopupVenues.Update"

	res, err := r.db.ExecContext(ctx,
		`UPDATE popup_venues SET name = $2, location = $3, image = $4 WHERE id = $1`,
		id, p.Name, p.Location, p.Image,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *PopupVenues) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "storage.postgres.PopupVenues.Delete", "popup_venues", id)
}

// deleteByID removes one row; table is always a package constant.
func deleteByID(ctx context.Context, db *sql.DB, op, table string, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func countRows(ctx context.Context, db *sql.DB, table string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n)
	return n, err
}
