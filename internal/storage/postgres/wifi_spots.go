package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"
)

const wifiColumns = `id, name, address, city, region, country, latitude, longitude, provider,
	description, website, contact_email, contact_phone, available, created_at`

type WifiSpots struct {
	db *sql.DB
}

func (s *Storage) WifiSpots() *WifiSpots {
	return &WifiSpots{db: s.DB}
}

func scanWifiSpot(row rowScanner) (*models.WifiSpot, error) {
	var (
		w        models.WifiSpot
		lat, lng sql.NullFloat64
	)

	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.Region, &w.Country, &lat, &lng,
		&w.Provider, &w.Description, &w.Website, &w.ContactEmail, &w.ContactPhone, &w.Available,
		&w.CreatedAt)
	if err != nil {
		return nil, err
	}

	w.Latitude = floatPtr(lat)
	w.Longitude = floatPtr(lng)
	return &w, nil
}

func (r *WifiSpots) List(ctx context.Context) ([]models.WifiSpot, error) {
	const op = "storage.postgres.WifiSpots.List"

	rows, err := r.db.QueryContext(ctx, `SELECT `+wifiColumns+` FROM wifi_spots ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.WifiSpot{}
	for rows.Next() {
		w, err := scanWifiSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, *w)
	}

	return items, rows.Err()
}

func (r *WifiSpots) Get(ctx context.Context, id int64) (*models.WifiSpot, error) {
	const op = "storage.postgres.WifiSpots.Get"

	w, err := scanWifiSpot(r.db.QueryRowContext(ctx, `SELECT `+wifiColumns+` FROM wifi_spots WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrNotFound))
	}

	return w, nil
}

func (r *WifiSpots) Create(ctx context.Context, w *models.WifiSpot) (int64, error) {
	const op = "storage.postgres.WifiSpots.Create"

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO wifi_spots (name, address, city, region, country, latitude, longitude, provider,
			description, website, contact_email, contact_phone, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		w.Name, w.Address, w.City, w.Region, w.Country, nullFloat(w.Latitude), nullFloat(w.Longitude),
		w.Provider, w.Description, w.Website, w.ContactEmail, w.ContactPhone, w.Available,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *WifiSpots) Update(ctx context.Context, id int64, w *models.WifiSpot) error {
	const op = "storage.postgres.WifiSpots.Update"

	res, err := r.db.ExecContext(ctx, `
		UPDATE wifi_spots SET
			name = $2, address = $3, city = $4, region = $5, country = $6, latitude = $7,
			longitude = $8, provider = $9, description = $10, website = $11, contact_email = $12,
			contact_phone = $13, available = $14
		WHERE id = $1`,
		id, w.Name, w.Address, w.City, w.Region, w.Country, nullFloat(w.Latitude), nullFloat(w.Longitude),
		w.Provider, w.Description, w.Website, w.ContactEmail, w.ContactPhone, w.Available,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *WifiSpots) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "storage.postgres.WifiSpots.Delete", "wifi_spots", id)
}
