package models

import (
	"strings"
	"time"
)

type PopupVenue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,max=200"`
	Location string `json:"location" validate:"required,max=200"`
	Image    string `json:"image"`
}

type WifiSpot struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,max=200"`
	Address      string    `json:"address" validate:"required"`
	City         string    `json:"city" validate:"max=120"`
	Region       string    `json:"region" validate:"max=120"`
	Country      string    `json:"country" validate:"max=80"`
	Latitude     *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64  `json:"longitude" validate:"omitempty,longitude"`
	Provider     string    `json:"provider" validate:"max=120"`
	Description  string    `json:"description"`
	Website      string    `json:"website" validate:"omitempty,url"`
	ContactEmail string    `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string    `json:"contact_phone" validate:"max=50"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}

func (w WifiSpot) HasLocation() bool {
	_, _, ok := w.Location()
	return ok
}

type SchoolProgram struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required,max=200"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Address      string    `json:"address" validate:"max=250"`
	City         string    `json:"city" validate:"max=120"`
	Region       string    `json:"region" validate:"max=120"`
	Country      string    `json:"country" validate:"max=80"`
	ContactEmail string    `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string    `json:"contact_phone" validate:"max=50"`
	Website      string    `json:"website" validate:"omitempty,url"`
	StartDate    *Date     `json:"start_date"`
	EndDate      *Date     `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
}

type About struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Phone       string    `json:"phone" validate:"required,max=200"`
	Address     string    `json:"address" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	Image       string    `json:"image"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SocialPlatform string

const (
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformPinterest SocialPlatform = "pinterest"
	PlatformTikTok    SocialPlatform = "tiktok"
)

type FooterSocialLink struct {
	ID       int64          `json:"id"`
	Platform SocialPlatform `json:"platform" validate:"required,oneof=linkedin instagram facebook pinterest tiktok"`
	URL      string         `json:"url" validate:"required,url"`
	Icon     string         `json:"icon" validate:"max=50"`
	Order    int            `json:"order" validate:"gte=0"`
}

const (
	DefaultCTAText = "Explore Venues"
	DefaultCTAURL  = "/venues"
)

type HeroSection struct {
	Title     string    `json:"title" validate:"required,max=200"`
	Subtitle  string    `json:"subtitle" validate:"required"`
	CTAText   string    `json:"cta_text" validate:"max=100"`
	CTAURL    string    `json:"cta_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithDefaults fills an empty call to action with the stock venue link.
func (h HeroSection) WithDefaults() HeroSection {
	if strings.TrimSpace(h.CTAText) == "" {
		h.CTAText = DefaultCTAText
	}
	if strings.TrimSpace(h.CTAURL) == "" {
		h.CTAURL = DefaultCTAURL
	}
	return h
}

type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Message   string    `json:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func joinAddress(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func (w WifiSpot) Location() (lat, lng float64, ok bool) {
	if w.Latitude == nil || w.Longitude == nil {
		return 0, 0, false
	}
	return *w.Latitude, *w.Longitude, true
}

func (w WifiSpot) Key() int64 {
	return w.ID
}

// Nearby pairs a record with its distance from a query point.
type Nearby[T any] struct {
	Item       T       `json:"item"`
	DistanceKm float64 `json:"distance_km"`
}
