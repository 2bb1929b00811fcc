package postgres

import (
	"context"
	"database/sql"
	"debaren/internal/models"
	"debaren/internal/storage"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const bookingColumns = `b.id, b.venue_id, v.name, b.customer_name, b.customer_email, b.customer_phone,
	b.start_date, b.end_date, b.notes, b.status, b.created_at, b.updated_at`

func scanBooking(row rowScanner) (*models.Booking, error) {
	var (
		b   models.Booking
		end sql.NullTime
	)

	err := row.Scan(&b.ID, &b.VenueID, &b.VenueName, &b.CustomerName, &b.CustomerEmail,
		&b.CustomerPhone, &b.StartDate, &end, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	b.EndDate = datePtr(end)
	return &b, nil
}

// CreateBooking stores a pending booking for an available venue. It fails with
// storage.ErrDatesTaken when a confirmed booking of the venue overlaps the range.
func (s *Storage) CreateBooking(ctx context.Context, b *models.Booking) (int64, error) {
	const op = "storage.postgres.CreateBooking"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var available bool
	err = tx.QueryRowContext(ctx,
		`SELECT available FROM venues WHERE id = $1 FOR SHARE`, b.VenueID,
	).Scan(&available)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrVenueNotFound))
	}
	if !available {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrVenueUnavailable)
	}

	taken, err := datesTaken(ctx, tx, b.VenueID, 0, b.StartDate, b.LastDay())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrDatesTaken)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO bookings (venue_id, customer_name, customer_email, customer_phone,
			start_date, end_date, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		b.VenueID, b.CustomerName, b.CustomerEmail, b.CustomerPhone,
		b.StartDate, nullDate(b.EndDate), b.Notes, models.BookingPending,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("%s: insert booking: %w", op, err)
	}
	b.Status = models.BookingPending

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit: %w", op, err)
	}

	return b.ID, nil
}

func datesTaken(ctx context.Context, tx *sql.Tx, venueID, exceptID int64, start, last models.Date) (bool, error) {
	var taken bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE venue_id = $1 AND id <> $2 AND status = $3
			AND start_date <= $5 AND COALESCE(end_date, start_date) >= $4
		)`, venueID, exceptID, models.BookingConfirmed, start, last,
	).Scan(&taken)
	if err != nil {
		return false, fmt.Errorf("check overlapping bookings: %w", err)
	}
	return taken, nil
}

func (s *Storage) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	const op = "storage.postgres.GetBooking"

	b, err := scanBooking(s.DB.QueryRowContext(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings b JOIN venues v ON v.id = b.venue_id
		WHERE b.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrBookingNotFound))
	}

	return b, nil
}

// ListBookings returns bookings newest first, narrowed by the filter.
func (s *Storage) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	const op = "storage.postgres.ListBookings"

	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, "b.status = $"+strconv.Itoa(len(args)))
	}
	if filter.VenueID != 0 {
		args = append(args, filter.VenueID)
		where = append(where, "b.venue_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings b JOIN venues v ON v.id = b.venue_id`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY b.created_at DESC, b.id DESC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan booking: %w", op, err)
		}
		bookings = append(bookings, *b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: iterate bookings: %w", op, err)
	}

	return bookings, nil
}

// UpdateBookingStatus moves a booking to next, enforcing the status transition
// table. Confirming re-checks overlaps while holding the venue row lock.
func (s *Storage) UpdateBookingStatus(ctx context.Context, id int64, next models.BookingStatus) (*models.Booking, error) {
	const op = "storage.postgres.UpdateBookingStatus"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	var (
		venueID int64
		current models.BookingStatus
		start   models.Date
		end     sql.NullTime
	)
	err = tx.QueryRowContext(ctx, `
		SELECT venue_id, status, start_date, end_date FROM bookings WHERE id = $1 FOR UPDATE`, id,
	).Scan(&venueID, &current, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, notFound(err, storage.ErrBookingNotFound))
	}

	if !current.CanTransition(next) {
		return nil, fmt.Errorf("%s: %s -> %s: %w", op, current, next, models.ErrInvalidTransition)
	}

	if next == models.BookingConfirmed {
		if _, err = tx.ExecContext(ctx, `SELECT id FROM venues WHERE id = $1 FOR UPDATE`, venueID); err != nil {
			return nil, fmt.Errorf("%s: lock venue: %w", op, err)
		}

		last := start
		if d := datePtr(end); d != nil {
			last = *d
		}

		taken, err := datesTaken(ctx, tx, venueID, id, start, last)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrDatesTaken)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`, id, next); err != nil {
		return nil, fmt.Errorf("%s: update status: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return s.GetBooking(ctx, id)
}

func (s *Storage) DeleteBooking(ctx context.Context, id int64) error {
	err := deleteByID(ctx, s.DB, "storage.postgres.DeleteBooking", "bookings", id)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("storage.postgres.DeleteBooking: %w", storage.ErrBookingNotFound)
	}
	return err
}

// ExpireBookings cancels pending bookings whose start date is before today and
// completes confirmed bookings whose last day is before today.
func (s *Storage) ExpireBookings(ctx context.Context, today models.Date) (cancelled, completed int64, err error) {
	const op = "storage.postgres.ExpireBookings"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE status = $2 AND start_date < $3`,
		models.BookingCancelled, models.BookingPending, today)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: cancel stale pending: %w", op, err)
	}
	cancelled, _ = res.RowsAffected()

	res, err = s.DB.ExecContext(ctx, `
		UPDATE bookings SET status = $1, updated_at = NOW()
		WHERE status = $2 AND COALESCE(end_date, start_date) < $3`,
		models.BookingCompleted, models.BookingConfirmed, today)
	if err != nil {
		return cancelled, 0, fmt.Errorf("%s: complete past confirmed: %w", op, err)
	}
	completed, _ = res.RowsAffected()

	return cancelled, completed, nil
}

// Stats counts every content type and the bookings per status.
func (s *Storage) Stats(ctx context.Context) (*models.Stats, error) {
	const op = "storage.postgres.Stats"

	stats := &models.Stats{
		Content:  map[string]int{},
		Bookings: map[models.BookingStatus]int{},
	}

	for _, table := range []string{
		"venues", "popup_venues", "wifi_spots", "school_programs",
		"footer_social_links", "contact_messages", "bookings",
	} {
		n, err := countRows(ctx, s.DB, table)
		if err != nil {
			return nil, fmt.Errorf("%s: count %s: %w", op, table, err)
		}
		stats.Content[table] = n
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%s: bookings by status: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status models.BookingStatus
			n      int
		)
		if err = rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		stats.Bookings[status] = n
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stats.VenuesByType, err = s.CountVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
