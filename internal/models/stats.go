package models

// Stats summarizes stored content for the admin dashboard.
type Stats struct {
	Content      map[string]int        `json:"content"`
	Bookings     map[BookingStatus]int `json:"bookings"`
	VenuesByType map[VenueType]int     `json:"venues_by_type"`
}
