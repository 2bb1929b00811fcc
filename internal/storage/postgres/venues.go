package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"

	"github.com/lib/pq"
)

const venueColumns = `id, name, venue_type, description, image, address, city, region, country,
	postal_code, latitude, longitude, capacity, amenities, price_per_day, contact_email,
	contact_phone, website, available, rating, tags, created_at, updated_at`

func scanVenue(row rowScanner) (*models.Venue, error) {
	var (
		v             models.Venue
		lat, lng, ppd sql.NullFloat64
	)

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.VenueType,
		&v.Description,
		&v.Image,
		&v.Address,
		&v.City,
		&v.Region,
		&v.Country,
		&v.PostalCode,
		&lat,
		&lng,
		&v.Capacity,
		&v.Amenities,
		&ppd,
		&v.ContactEmail,
		&v.ContactPhone,
		&v.Website,
		&v.Available,
		&v.Rating,
		&v.Tags,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Latitude = floatPtr(lat)
	v.Longitude = floatPtr(lng)
	v.PricePerDay = floatPtr(ppd)
	v.Gallery = []models.GalleryImage{}

	return &v, nil
}

// ListVenues returns venues newest first. An empty venueType lists every type.
func (s *Storage) ListVenues(ctx context.Context, venueType models.VenueType) ([]models.Venue, error) {
	const op = "storage.postgres.ListVenues"

	query := `SELECT ` + venueColumns + ` FROM venues`
	args := []any{}
	if venueType != "" {
		query += ` WHERE venue_type = $1`
		args = append(args, venueType)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	return s.queryVenues(ctx, op, query, args...)
}

// GetVenuesByIDs returns the venues with the given ids, in no particular order.
func (s *Storage) GetVenuesByIDs(ctx context.Context, ids []int64) ([]models.Venue, error) {
	const op = "storage.postgres.GetVenuesByIDs"

	if len(ids) == 0 {
		return []models.Venue{}, nil
	}

	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = ANY($1)`

	return s.queryVenues(ctx, op, query, pq.Array(ids))
}

func (s *Storage) queryVenues(ctx context.Context, op, query string, args ...any) ([]models.Venue, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	venues := []models.Venue{}
	index := map[int64]int{}
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan venue: %w", op, err)
		}
		index[v.ID] = len(venues)
		venues = append(venues, *v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate venues: %w", op, err)
	}

	if len(venues) == 0 {
		return venues, nil
	}

	ids := make([]int64, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, v.ID)
	}

	gallery, err := s.galleryFor(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, img := range gallery {
		i := index[img.VenueID]
		venues[i].Gallery = append(venues[i].Gallery, img)
	}

	return venues, nil
}

func (s *Storage) GetVenue(ctx context.Context, id int64) (*models.Venue, error) {
	const op = "storage.postgres.GetVenue"

	row := s.DB.QueryRowContext(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id)
	v, err := scanVenue(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrVenueNotFound))
	}

	gallery, err := s.galleryFor(ctx, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	v.Gallery = append(v.Gallery, gallery...)

	return v, nil
}

// CreateVenue inserts the venue and its gallery, returning the new id.
func (s *Storage) CreateVenue(ctx context.Context, v *models.Venue) (int64, error) {
	const op = "storage.postgres.CreateVenue"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO venues (name, venue_type, description, image, address, city, region, country,
			postal_code, latitude, longitude, capacity, amenities, price_per_day, contact_email,
			contact_phone, website, available, rating, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`,
		v.Name, v.VenueType, v.Description, v.Image, v.Address, v.City, v.Region, v.Country,
		v.PostalCode, nullFloat(v.Latitude), nullFloat(v.Longitude), v.Capacity, v.Amenities,
		nullFloat(v.PricePerDay), v.ContactEmail, v.ContactPhone, v.Website, v.Available,
		v.Rating, v.Tags,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: insert venue: %w", op, err)
	}

	if err = appendGallery(ctx, tx, id, v.Gallery); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return id, nil
}

// UpdateVenue overwrites the venue's fields and appends any new gallery images.
// Existing gallery images are kept.
func (s *Storage) UpdateVenue(ctx context.Context, id int64, v *models.Venue) error {
	const op = "storage.postgres.UpdateVenue"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE venues SET
			name = $2, venue_type = $3, description = $4, image = $5, address = $6, city = $7,
			region = $8, country = $9, postal_code = $10, latitude = $11, longitude = $12,
			capacity = $13, amenities = $14, price_per_day = $15, contact_email = $16,
			contact_phone = $17, website = $18, available = $19, rating = $20, tags = $21,
			updated_at = NOW()
		WHERE id = $1`,
		id, v.Name, v.VenueType, v.Description, v.Image, v.Address, v.City, v.Region, v.Country,
		v.PostalCode, nullFloat(v.Latitude), nullFloat(v.Longitude), v.Capacity, v.Amenities,
		nullFloat(v.PricePerDay), v.ContactEmail, v.ContactPhone, v.Website, v.Available,
		v.Rating, v.Tags,
	)
	if err != nil {
		return fmt.Errorf("%s: update venue: %w", op, err)
	}
	if err = expectAffected(res, storage.ErrVenueNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = appendGallery(ctx, tx, id, v.Gallery); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return tx.Commit()
}

func (s *Storage) DeleteVenue(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteVenue"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = expectAffected(res, storage.ErrVenueNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CountVenues returns the number of venues per type.
func (s *Storage) CountVenues(ctx context.Context) (map[models.VenueType]int, error) {
	const op = "storage.postgres.CountVenues"

	rows, err := s.DB.QueryContext(ctx, `SELECT venue_type, COUNT(*) FROM venues GROUP BY venue_type`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	counts := map[models.VenueType]int{}
	for rows.Next() {
		var (
			t models.VenueType
			n int
		)
		if err = rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		counts[t] = n
	}

	return counts, rows.Err()
}
