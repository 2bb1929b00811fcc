package site

import (
	"debaren/internal/app"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"debaren/internal/storage"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

type homeData struct {
	Hero           *models.HeroSection
	Venues         []models.Venue
	PopupVenues    []models.PopupVenue
	WifiSpots      []models.WifiSpot
	SchoolPrograms []models.SchoolProgram
}

// home loads every section independently. A section that fails is logged and
// left out of the page.
func (s *Site) home(w http.ResponseWriter, r *http.Request) {
	const op = "site.home"

	log := s.log.With(slog.String("op", op))
	ctx := r.Context()

	var (
		data homeData
		g    errgroup.Group
	)
	section := func(name string, load func() error) {
		g.Go(func() error {
			if err := load(); err != nil {
				log.Error("failed to load home section", slog.String("section", name), sl.Err(err))
			}
			return nil
		})
	}

	section("hero", func() error {
		hero, err := s.deps.Pages.Hero(ctx)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		data.Hero = hero
		return err
	})
	section("venues", func() error {
		venues, err := s.deps.Venues.ListVenues(ctx, "")
		if len(venues) > featuredVenues {
			venues = venues[:featuredVenues]
		}
		data.Venues = venues
		return err
	})
	section("popup_venues", func() (err error) {
		data.PopupVenues, err = s.deps.PopupVenues.List(ctx)
		return err
	})
	section("wifi_spots", func() (err error) {
		data.WifiSpots, err = s.deps.WifiSpots.List(ctx)
		return err
	})
	section("school_programs", func() (err error) {
		data.SchoolPrograms, err = s.deps.SchoolPrograms.List(ctx)
		return err
	})

	_ = g.Wait()

	s.render(w, r, "home", http.StatusOK, view{Data: data})
}

type venuesData struct {
	Type   models.VenueType
	Types  []models.VenueType
	Venues []models.Venue
}

func (s *Site) venues(w http.ResponseWriter, r *http.Request) {
	venueType := models.VenueType(chi.URLParam(r, "type"))
	if venueType != "" && !venueType.Valid() {
		s.render(w, r, "error", http.StatusNotFound, view{Title: "Page not found"})
		return
	}

	venues, err := s.deps.Venues.ListVenues(r.Context(), venueType)
	if err != nil {
		s.fail(w, r, "venues", err)
		return
	}

	title := "Venues"
	if venueType != "" {
		title = venueType.Label() + " venues"
	}

	s.render(w, r, "venues", http.StatusOK, view{
		Title: title,
		Data:  venuesData{Type: venueType, Types: models.VenueTypes, Venues: venues},
	})
}

type venueData struct {
	Venue *models.Venue
	Form  app.BookingRequest
}

func (s *Site) venue(w http.ResponseWriter, r *http.Request) {
	id, ok := venueID(r)
	if !ok {
		s.render(w, r, "error", http.StatusNotFound, view{Title: "Page not found"})
		return
	}

	venue, err := s.deps.Venues.GetVenue(r.Context(), id)
	if err != nil {
		s.fail(w, r, "venue", err)
		return
	}

	v := view{Title: venue.Name, Data: venueData{Venue: venue}}
	if r.URL.Query().Get("booked") == "1" {
		v.Notice = "Thank you! Your booking request was received and is pending confirmation."
	}

	s.render(w, r, "venue", http.StatusOK, v)
}

func (s *Site) book(w http.ResponseWriter, r *http.Request) {
	id, ok := venueID(r)
	if !ok {
		s.render(w, r, "error", http.StatusNotFound, view{Title: "Page not found"})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	req := app.BookingRequest{
		VenueID:       id,
		CustomerName:  r.PostForm.Get("customer_name"),
		CustomerEmail: r.PostForm.Get("customer_email"),
		CustomerPhone: r.PostForm.Get("customer_phone"),
		StartDate:     r.PostForm.Get("start_date"),
		EndDate:       r.PostForm.Get("end_date"),
		Notes:         r.PostForm.Get("notes"),
	}

	_, err := s.deps.Bookings.Create(r.Context(), req)
	if err == nil {
		http.Redirect(w, r, "/venues/"+strconv.FormatInt(id, 10)+"?booked=1", http.StatusSeeOther)
		return
	}
	if errors.Is(err, storage.ErrVenueNotFound) {
		s.fail(w, r, "venue", err)
		return
	}

	status, msg := formError(err, "We could not submit your booking. Please try again.")
	if status >= http.StatusInternalServerError {
		s.log.Error("failed to create booking", slog.Int64("venue_id", id), sl.Err(err))
	}

	venue, verr := s.deps.Venues.GetVenue(r.Context(), id)
	if verr != nil {
		s.fail(w, r, "venue", verr)
		return
	}

	s.render(w, r, "venue", status, view{
		Title: venue.Name,
		Error: msg,
		Data:  venueData{Venue: venue, Form: req},
	})
}

func (s *Site) popupVenues(w http.ResponseWriter, r *http.Request) {
	items, err := s.deps.PopupVenues.List(r.Context())
	if err != nil {
		s.fail(w, r, "popup_venues", err)
		return
	}
	s.render(w, r, "popup_venues", http.StatusOK, view{Title: "Popup venues", Data: items})
}

func (s *Site) wifiSpots(w http.ResponseWriter, r *http.Request) {
	items, err := s.deps.WifiSpots.List(r.Context())
	if err != nil {
		s.fail(w, r, "wifi_spots", err)
		return
	}
	s.render(w, r, "wifi_spots", http.StatusOK, view{Title: "WiFi spots", Data: items})
}

func (s *Site) schoolPrograms(w http.ResponseWriter, r *http.Request) {
	items, err := s.deps.SchoolPrograms.List(r.Context())
	if err != nil {
		s.fail(w, r, "school", err)
		return
	}
	s.render(w, r, "school", http.StatusOK, view{Title: "School programs", Data: items})
}

func (s *Site) about(w http.ResponseWriter, r *http.Request) {
	about, err := s.deps.Pages.About(r.Context())
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		s.fail(w, r, "about", err)
		return
	}
	s.render(w, r, "about", http.StatusOK, view{Title: "About", Data: about})
}

func (s *Site) contactForm(w http.ResponseWriter, r *http.Request) {
	v := view{Title: "Contact us", Data: models.ContactMessage{}}
	if r.URL.Query().Get("sent") == "1" {
		v.Notice = "Thank you! We'll get back to you soon."
	}
	s.render(w, r, "contact", http.StatusOK, v)
}

func (s *Site) contactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	msg := models.ContactMessage{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Message: r.PostForm.Get("message"),
	}

	if _, err := s.deps.Contact.Submit(r.Context(), msg); err != nil {
		status, text := formError(err, "We could not send your message. Please try again.")
		if status >= http.StatusInternalServerError {
			s.log.Error("failed to store contact message", sl.Err(err))
		}
		s.render(w, r, "contact", status, view{Title: "Contact us", Error: text, Data: msg})
		return
	}

	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}

func (s *Site) privacy(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "privacy", http.StatusOK, view{Title: "Privacy Policy"})
}

func venueID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
