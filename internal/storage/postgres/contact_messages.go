package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"
)

type ContactMessages struct {
	db *sql.DB
}

func (s *Storage) ContactMessages() *ContactMessages {
	return &ContactMessages{db: s.DB}
}

// List returns messages newest first.
func (r *ContactMessages) List(ctx context.Context) ([]models.ContactMessage, error) {
	const op = "storage.postgres.ContactMessages.List"

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.ContactMessage{}
	for rows.Next() {
		var m models.ContactMessage
		if err = rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		items = append(items, m)
	}

	return items, rows.Err()
}

func (r *ContactMessages) Get(ctx context.Context, id int64) (*models.ContactMessage, error) {
	const op = "storage.postgres.ContactMessages.Get"

	var m models.ContactMessage
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_messages WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrNotFound))
	}

	return &m, nil
}

// Create stores the message and fills in its id and creation time.
func (r *ContactMessages) Create(ctx context.Context, m *models.ContactMessage) (int64, error) {
	const op = "storage.postgres.ContactMessages.Create"

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3) RETURNING id, created_at`,
		m.Name, m.Email, m.Message,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return m.ID, nil
}

func (r *ContactMessages) Update(ctx context.Context, id int64, m *models.ContactMessage) error {
	const op = "storage.postgres.ContactMessages.Update"

	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET name = $2, email = $3, message = $4 WHERE id = $1`,
		id, m.Name, m.Email, m.Message,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = expectAffected(res, storage.ErrNotFound); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *ContactMessages) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "storage.postgres.ContactMessages.Delete", "contact_messages", id)
}
