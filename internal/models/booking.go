package models

import (
	"errors"
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingRejected  BookingStatus = "rejected"
)

var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCancelled,
	BookingCompleted,
	BookingRejected,
}

var ErrInvalidTransition = errors.New("invalid booking status transition")

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingRejected, BookingCancelled},
	BookingConfirmed: {BookingCancelled, BookingCompleted},
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransition reports whether a booking in status s may move to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID            int64         `json:"id"`
	VenueID       int64         `json:"venue"`
	VenueName     string        `json:"venue_name,omitempty"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	CustomerPhone string        `json:"customer_phone"`
	StartDate     Date          `json:"start_date"`
	EndDate       *Date         `json:"end_date"`
	Notes         string        `json:"notes"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// LastDay is the final booked day; single-day bookings end on their start date.
func (b *Booking) LastDay() Date {
	if b.EndDate != nil {
		return *b.EndDate
	}
	return b.StartDate
}

// BookingFilter narrows admin booking listings. Zero values match everything.
type BookingFilter struct {
	Status  BookingStatus
	VenueID int64
}
