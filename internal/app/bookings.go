package app

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/models"
	"errors"
	"log/slog"
)

var (
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrStartInPast      = errors.New("start date must not be in the past")
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, b *models.Booking) (int64, error)
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, next models.BookingStatus) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	ExpireBookings(ctx context.Context, today models.Date) (cancelled, completed int64, err error)
}

// BookingRequest is a guest's booking as submitted by the site or the API.
// Dates are kept as text so a malformed date reports the field by name.
type BookingRequest struct {
	VenueID       int64  `json:"venue" validate:"required,gt=0"`
	CustomerName  string `json:"customer_name" validate:"required,max=120"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone,omitempty" validate:"max=30"`
	StartDate     string `json:"start_date" validate:"required"`
	EndDate       string `json:"end_date,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type BookingService struct {
	repo   BookingRepository
	events events.Publisher
	log    *slog.Logger
	today  func() models.Date
}

func NewBookingService(log *slog.Logger, repo BookingRepository, pub events.Publisher) *BookingService {
	return &BookingService{
		repo:   repo,
		events: pub,
		log:    log.With(slog.String("component", "app.bookings")),
		today:  models.Today,
	}
}

// Create records a pending booking. Storage rejects unknown or unavailable
// venues and dates that overlap a confirmed booking.
func (s *BookingService) Create(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	start, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, invalidf("start_date must be a date in YYYY-MM-DD format")
	}

	var end *models.Date
	if req.EndDate != "" {
		d, err := models.ParseDate(req.EndDate)
		if err != nil {
			return nil, invalidf("end_date must be a date in YYYY-MM-DD format")
		}
		end = &d
	}

	if end != nil && end.Before(start.Time) {
		return nil, ErrInvalidDateRange
	}
	if start.Before(s.today().Time) {
		return nil, ErrStartInPast
	}

	b := &models.Booking{
		VenueID:       req.VenueID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		StartDate:     start,
		EndDate:       end,
		Notes:         req.Notes,
	}

	if _, err := s.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	notify(ctx, s.log, s.events, events.New(events.BookingCreated, "booking", b.ID, b))

	return b, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (*models.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, invalidf("unknown booking status %q", filter.Status)
	}
	return s.repo.ListBookings(ctx, filter)
}

// SetStatus moves a booking along the status lifecycle. Confirming re-checks
// that no other confirmed booking overlaps.
func (s *BookingService) SetStatus(ctx context.Context, id int64, next models.BookingStatus) (*models.Booking, error) {
	if !next.Valid() {
		return nil, invalidf("unknown booking status %q", next)
	}

	b, err := s.repo.UpdateBookingStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	notify(ctx, s.log, s.events, events.New(events.BookingStatusChanged, "booking", b.ID, b))

	return b, nil
}

func (s *BookingService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}

	notify(ctx, s.log, s.events, events.Changed("bookings", "delete", id))

	return nil
}

type SweepResult struct {
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

// Sweep cancels pending bookings whose start date has passed and completes
// confirmed bookings whose last day has passed.
func (s *BookingService) Sweep(ctx context.Context) (SweepResult, error) {
	cancelled, completed, err := s.repo.ExpireBookings(ctx, s.today())
	if err != nil {
		return SweepResult{}, err
	}

	res := SweepResult{Cancelled: cancelled, Completed: completed}
	if cancelled > 0 || completed > 0 {
		notify(ctx, s.log, s.events, events.New(events.BookingsSwept, "bookings", 0, res))
	}

	return res, nil
}
