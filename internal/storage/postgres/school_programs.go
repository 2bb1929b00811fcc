package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"
)

const schoolColumns = `id, name, description, image, address, city, region, country,
	contact_email, contact_phone, website, start_date, end_date, created_at`

type SchoolPrograms struct {
	db *sql.DB
}

func (s *Storage) SchoolPrograms() *SchoolPrograms {
	return &SchoolPrograms{db: s.DB}
}

func scanSchoolProgram(row rowScanner) (*models.SchoolProgram, error) {
	var (
		p          models.SchoolProgram
		start, end sql.NullTime
	)

	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Image, &p.Address, &p.City, &p.Region,
		&p.Country, &p.ContactEmail, &p.ContactPhone, &p.Website, &start, &end, &p.CreatedAt)
	if err != nil {
		return nil, err
	}

	p.StartDate = datePtr(start)
	p.EndDate = datePtr(end)
	return &p, nil
}

func (r *SchoolPrograms) List(ctx context.Context) ([]models.SchoolProgram, error) {
	const op = "storage.postgres.SchoolPrograms.List"

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+schoolColumns+` FROM school_programs ORDER BY start_date NULLS LAST, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.SchoolProgram{}
	for rows.Next() {
		p, err := scanSchoolProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, *p)
	}

	return items, rows.Err()
}

func (r *SchoolPrograms) Get(ctx context.Context, id int64) (*models.SchoolProgram, error) {
	const op = "storage.postgres.SchoolPrograms.Get"

	p, err := scanSchoolProgram(r.db.QueryRowContext(ctx,
		`SELECT `+schoolColumns+` FROM school_programs WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrNotFound))
	}

	return p, nil
}

func (r *SchoolPrograms) Create(ctx context.Context, p *models.SchoolProgram) (int64, error) {
	const op = "storage.postgres.SchoolPrograms.Create"

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO school_programs (name, description, image, address, city, region, country,
			contact_email, contact_phone, website, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		p.Name, p.Description, p.Image, p.Address, p.City, p.Region, p.Country,
		p.ContactEmail, p.ContactPhone, p.Website, nullDate(p.StartDate), nullDate(p.EndDate),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *SchoolPrograms) Update(ctx context.Context, id int64, p *models.SchoolProgram) error {
	const op = "storage.postgres.SchoolPrograms.Update"

	res, err := r.db.ExecContext(ctx, `
		UPDATE school_programs SET
			name = $2, description = $3, image = $4, address = $5, city = $6, region = $7,
			country = $8, contact_email = $9, contact_phone = $10, website = $11,
			start_date = $12, end_date = $13
		WHERE id = $1`,
		id, p.Name, p.Description, p.Image, p.Address, p.City, p.Region, p.Country,
		p.ContactEmail, p.ContactPhone, p.Website, nullDate(p.StartDate), nullDate(p.EndDate),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *SchoolPrograms) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "storage.postgres.SchoolPrograms.Delete", "school_programs", id)
}

func nullDate(d *models.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func datePtr(t sql.NullTime) *models.Date {
	if !t.Valid {
		return nil
	}
	y, m, d := t.Time.Date()
	date := models.NewDate(y, m, d)
	return &date
}
