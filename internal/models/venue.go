package models

import "time"

type VenueType string

const (
	VenueCountry    VenueType = "country"
	VenueCity       VenueType = "city"
	VenueTown       VenueType = "town"
	VenueHall       VenueType = "hall"
	VenueConference VenueType = "conference"
	VenueRestaurant VenueType = "restaurant"
	VenueOutdoor    VenueType = "outdoor"
	VenueAuditorium VenueType = "auditorium"
	VenueOther      VenueType = "other"
)

// VenueTypes lists every venue type in display order.
var VenueTypes = []VenueType{
	VenueCountry,
	VenueCity,
	VenueTown,
	VenueHall,
	VenueConference,
	VenueRestaurant,
	VenueOutdoor,
	VenueAuditorium,
	VenueOther,
}

var venueTypeLabels = map[VenueType]string{
	VenueCountry:    "Country",
	VenueCity:       "City",
	VenueTown:       "Town",
	VenueHall:       "Hall",
	VenueConference: "Conference Center",
	VenueRestaurant: "Restaurant",
	VenueOutdoor:    "Outdoor",
	VenueAuditorium: "Auditorium",
	VenueOther:      "Other",
}

func (t VenueType) Valid() bool {
	_, ok := venueTypeLabels[t]
	return ok
}

func (t VenueType) Label() string {
	if l, ok := venueTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

const DefaultCountry = "South Africa"

type Venue struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name" validate:"required,max=200"`
	VenueType    VenueType      `json:"venue_type" validate:"required,oneof=country city town hall conference restaurant outdoor auditorium other"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	Gallery      []GalleryImage `json:"gallery"`
	Address      string         `json:"address" validate:"required,max=250"`
	City         string         `json:"city" validate:"max=120"`
	Region       string         `json:"region" validate:"max=120"`
	Country      string         `json:"country" validate:"max=80"`
	PostalCode   string         `json:"postal_code" validate:"max=20"`
	Latitude     *float64       `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64       `json:"longitude" validate:"omitempty,longitude"`
	Capacity     int            `json:"capacity" validate:"gte=0"`
	Amenities    Amenities      `json:"amenities"`
	PricePerDay  *float64       `json:"price_per_day" validate:"omitempty,gte=0"`
	ContactEmail string         `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string         `json:"contact_phone" validate:"max=50"`
	Website      string         `json:"website" validate:"omitempty,url"`
	Available    bool           `json:"available"`
	Rating       float64        `json:"rating" validate:"gte=0,lte=5"`
	Tags         string         `json:"tags" validate:"max=200"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// HasLocation reports whether both coordinates are set.
func (v Venue) HasLocation() bool {
	_, _, ok := v.Location()
	return ok
}

// FullAddress joins the non-empty address parts for geocoding and display.
func (v Venue) FullAddress() string {
	return joinAddress(v.Address, v.City, v.Region, v.Country)
}

type GalleryImage struct {
	ID      int64  `json:"id"`
	VenueID int64  `json:"-"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
	Order   int    `json:"order"`
}

// Location returns the venue's coordinates when both are set.
func (v Venue) Location() (lat, lng float64, ok bool) {
	if v.Latitude == nil || v.Longitude == nil {
		return 0, 0, false
	}
	return *v.Latitude, *v.Longitude, true
}

func (v Venue) Key() int64 {
	return v.ID
}
