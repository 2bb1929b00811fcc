// Package site renders the public pages from the same services that back
// the content API.
package site

import (
	"bytes"
	"context"
	"debaren/internal/app"
	"debaren/internal/config"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"debaren/internal/storage"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const featuredVenues = 6

type VenueReader interface {
	ListVenues(ctx context.Context, venueType models.VenueType) ([]models.Venue, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
}

type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type PageReader interface {
	About(ctx context.Context) (*models.About, error)
	Hero(ctx context.Context) (*models.HeroSection, error)
}

type BookingCreator interface {
	Create(ctx context.Context, req app.BookingRequest) (*models.Booking, error)
}

type MessageSubmitter interface {
	Submit(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
}

type Deps struct {
	Venues         VenueReader
	PopupVenues    Lister[models.PopupVenue]
	WifiSpots      Lister[models.WifiSpot]
	SchoolPrograms Lister[models.SchoolProgram]
	SocialLinks    Lister[models.FooterSocialLink]
	Pages          PageReader
	Bookings       BookingCreator
	Contact        MessageSubmitter
}

type Site struct {
	log   *slog.Logger
	cfg   config.Site
	deps  Deps
	pages map[string]*template.Template
}

// view is the data every page template receives.
type view struct {
	Site    config.Site
	Title   string
	Notice  string
	Error   string
	Socials []models.FooterSocialLink
	Data    any
}

var pageFiles = []string{
	"home", "venues", "venue", "popup_venues", "wifi_spots",
	"school", "about", "contact", "privacy", "error",
}

func New(log *slog.Logger, cfg config.Site, deps Deps) (*Site, error) {
	const op = "site.New"

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, name, err)
		}
		pages[name] = t
	}

	return &Site{
		log:   log.With(slog.String("component", "site")),
		cfg:   cfg,
		deps:  deps,
		pages: pages,
	}, nil
}

// Routes mounts every public page.
func (s *Site) Routes() http.Handler {
	r := chi.NewRouter()

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/", s.home)
	r.Get("/venues", s.venues)
	r.Get("/venues/type/{type}", s.venues)
	r.Get("/venues/{id}", s.venue)
	r.Post("/venues/{id}/book", s.book)
	r.Get("/popup-venues", s.popupVenues)
	r.Get("/wifi-spots", s.wifiSpots)
	r.Get("/school", s.schoolPrograms)
	r.Get("/about", s.about)
	r.Get("/contact", s.contactForm)
	r.Post("/contact", s.contactSubmit)
	r.Get("/privacy", s.privacy)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, "error", http.StatusNotFound, view{Title: "Page not found"})
	})

	return r
}

func (s *Site) render(w http.ResponseWriter, r *http.Request, page string, status int, v view) {
	v.Site = s.cfg

	socials, err := s.deps.SocialLinks.List(r.Context())
	if err != nil {
		s.log.Warn("failed to load social links", sl.Err(err))
	}
	v.Socials = socials

	var buf bytes.Buffer
	if err = s.pages[page].ExecuteTemplate(&buf, "layout", v); err != nil {
		s.log.Error("failed to render page", slog.String("page", page), sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fail renders the error page for err: unknown records answer 404, anything
// else 500.
func (s *Site) fail(w http.ResponseWriter, r *http.Request, page string, err error) {
	if isNotFound(err) {
		s.render(w, r, "error", http.StatusNotFound, view{Title: "Page not found"})
		return
	}

	s.log.Error("failed to load page", slog.String("page", page), sl.Err(err))
	s.render(w, r, "error", http.StatusInternalServerError, view{Title: "Something went wrong"})
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrVenueNotFound)
}

// formError turns a rejected submission into the status and message shown
// above the re-rendered form.
func formError(err error, fallback string) (int, string) {
	status, resp := errmap.Resolve(err, fallback)
	return status, resp.Error
}

var funcs = template.FuncMap{
	"venueType": func(t models.VenueType) string { return t.Label() },
	"platform": func(p models.SocialPlatform) string {
		if p == models.PlatformTikTok {
			return "TikTok"
		}
		if p == models.PlatformLinkedIn {
			return "LinkedIn"
		}
		s := string(p)
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
	"price": func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', 2, 64)
	},
	"join": func(items []string, sep string) string { return strings.Join(items, sep) },
	"mapURL": func(l interface {
		Location() (lat, lng float64, ok bool)
	}) string {
		lat, lng, _ := l.Location()
		return "https://www.openstreetmap.org/?" + url.Values{
			"mlat": {strconv.FormatFloat(lat, 'f', 6, 64)},
			"mlon": {strconv.FormatFloat(lng, 'f', 6, 64)},
		}.Encode()
	},
	"year": func() int { return time.Now().Year() },
}
