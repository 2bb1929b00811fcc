// Package router mounts the content API, the admin dashboard, the media files
// and the public site on one chi router.
package router

import (
	"debaren/internal/app"
	"debaren/internal/http-server/handlers/admin/login"
	"debaren/internal/http-server/handlers/admin/stats"
	"debaren/internal/http-server/handlers/booking/createBooking"
	"debaren/internal/http-server/handlers/booking/deleteBooking"
	"debaren/internal/http-server/handlers/booking/getAllBookings"
	"debaren/internal/http-server/handlers/booking/updateBookingStatus"
	"debaren/internal/http-server/handlers/contact/submitMessage"
	"debaren/internal/http-server/handlers/content/crud"
	"debaren/internal/http-server/handlers/dashboard/live"
	"debaren/internal/http-server/handlers/dashboard/overview"
	"debaren/internal/http-server/handlers/geo/findNearby"
	"debaren/internal/http-server/handlers/page/about"
	"debaren/internal/http-server/handlers/page/hero"
	"debaren/internal/http-server/handlers/venue/deleteVenue"
	"debaren/internal/http-server/handlers/venue/getAllVenues"
	"debaren/internal/http-server/handlers/venue/getVenueInfo"
	"debaren/internal/http-server/handlers/venue/saveVenue"
	"debaren/internal/http-server/handlers/venue/venueGallery"
	"debaren/internal/http-server/middleware/mwauth"
	"debaren/internal/http-server/middleware/mwlogger"
	"debaren/internal/models"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Venues interface {
	getAllVenues.VenueLister
	getVenueInfo.VenueGetter
	findNearby.Finder[models.Venue]
}

type VenueAdmin interface {
	saveVenue.VenueSaver
	deleteVenue.VenueDeleter
	venueGallery.GalleryEditor
}

type Bookings interface {
	createBooking.BookingCreator
	getAllBookings.BookingLister
	updateBookingStatus.StatusSetter
	deleteBooking.BookingDeleter
}

type Pages interface {
	about.AboutPage
	hero.HeroPage
}

type Auth interface {
	login.Authenticator
	mwauth.TokenValidator
}

type Deps struct {
	Venues          Venues
	VenueAdmin      VenueAdmin
	PopupVenues     crud.Store[models.PopupVenue]
	WifiSpots       crud.Store[models.WifiSpot]
	WifiNearby      findNearby.Finder[models.WifiSpot]
	SchoolPrograms  crud.Store[models.SchoolProgram]
	SocialLinks     crud.Store[models.FooterSocialLink]
	ContactMessages crud.Store[models.ContactMessage]
	Contact         submitMessage.MessageSubmitter
	Bookings        Bookings
	Pages           Pages
	Auth            Auth
	Stats           stats.StatsProvider
	Dashboard       overview.Source
	Hub             live.Subscriber

	// Media serves uploaded files under /media/. Site serves every path no
	// other route claims.
	Media http.Handler
	Site  http.Handler
}

type Options struct {
	Brand          string
	CORSOrigins    []string
	MaxUploadBytes int64
	// MediaPath is the URL prefix Media is mounted under.
	MediaPath string
}

func New(log *slog.Logger, opts Options, deps Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	requireAdmin := mwauth.New(log, deps.Auth)

	router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		publicRoutes(r, log, deps)

		r.Post("/admin/login", login.New(log, deps.Auth))
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)
			adminRoutes(r, log, opts.MaxUploadBytes, deps)
		})
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(requireAdmin)
		r.Get("/dashboard", overview.New(log, deps.Dashboard, opts.Brand))
		r.Get("/ws", live.New(log, deps.Hub))
	})

	if deps.Media != nil {
		router.Handle(strings.TrimRight(opts.MediaPath, "/")+"/*", deps.Media)
	}
	if deps.Site != nil {
		router.Mount("/", deps.Site)
	}

	return router
}

func publicRoutes(r chi.Router, log *slog.Logger, deps Deps) {
	r.Get("/venues", getAllVenues.New(log, deps.Venues))
	r.Get("/venues/nearby", findNearby.New[models.Venue](log, deps.Venues))
	r.Get("/venues/{id}", getVenueInfo.New(log, deps.Venues))

	r.Get("/popup-venues", crud.NewList(log, "popup venues", deps.PopupVenues))
	r.Get("/popup-venues/{id}", crud.NewGet(log, "popup venue", deps.PopupVenues))
	r.Get("/wifi-spots", crud.NewList(log, "wifi spots", deps.WifiSpots))
	r.Get("/wifi-spots/nearby", findNearby.New[models.WifiSpot](log, deps.WifiNearby))
	r.Get("/wifi-spots/{id}", crud.NewGet(log, "wifi spot", deps.WifiSpots))
	r.Get("/school-programs", crud.NewList(log, "school programs", deps.SchoolPrograms))
	r.Get("/school-programs/{id}", crud.NewGet(log, "school program", deps.SchoolPrograms))
	r.Get("/footer-social-links", crud.NewList(log, "social links", deps.SocialLinks))

	r.Get("/about", about.NewGet(log, deps.Pages))
	r.Get("/hero", hero.NewGet(log, deps.Pages))

	r.Post("/contact", submitMessage.New(log, deps.Contact))
	r.Post("/bookings", createBooking.New(log, deps.Bookings))
}

func adminRoutes(r chi.Router, log *slog.Logger, maxBytes int64, deps Deps) {
	r.Get("/stats", stats.New(log, deps.Stats))

	r.Route("/venues", func(r chi.Router) {
		r.Post("/", saveVenue.NewCreate(log, deps.VenueAdmin, maxBytes))
		r.Put("/{id}", saveVenue.NewUpdate(log, deps.VenueAdmin, maxBytes))
		r.Delete("/{id}", deleteVenue.New(log, deps.VenueAdmin))
		r.Post("/{id}/gallery", venueGallery.NewAdd(log, deps.VenueAdmin, maxBytes))
		r.Put("/{id}/gallery/order", venueGallery.NewReorder(log, deps.VenueAdmin))
		r.Delete("/{id}/gallery/{imageID}", venueGallery.NewRemove(log, deps.VenueAdmin))
	})

	popupForm := crud.Form(maxBytes, app.ParsePopupVenueForm)
	r.Route("/popup-venues", func(r chi.Router) {
		r.Post("/", crud.NewCreate(log, "popup venue", deps.PopupVenues, popupForm))
		r.Put("/{id}", crud.NewUpdate(log, "popup venue", deps.PopupVenues, popupForm))
		r.Delete("/{id}", crud.NewDelete(log, "popup venue", deps.PopupVenues))
	})

	schoolForm := crud.Form(maxBytes, app.ParseSchoolProgramForm)
	r.Route("/school-programs", func(r chi.Router) {
		r.Post("/", crud.NewCreate(log, "school program", deps.SchoolPrograms, schoolForm))
		r.Put("/{id}", crud.NewUpdate(log, "school program", deps.SchoolPrograms, schoolForm))
		r.Delete("/{id}", crud.NewDelete(log, "school program", deps.SchoolPrograms))
	})

	r.Route("/wifi-spots", func(r chi.Router) {
		r.Post("/", crud.NewCreate(log, "wifi spot", deps.WifiSpots, crud.JSON[models.WifiSpot]()))
		r.Put("/{id}", crud.NewUpdate(log, "wifi spot", deps.WifiSpots, crud.JSON[models.WifiSpot]()))
		r.Delete("/{id}", crud.NewDelete(log, "wifi spot", deps.WifiSpots))
	})

	r.Route("/footer-social-links", func(r chi.Router) {
		r.Post("/", crud.NewCreate(log, "social link", deps.SocialLinks, crud.JSON[models.FooterSocialLink]()))
		r.Put("/{id}", crud.NewUpdate(log, "social link", deps.SocialLinks, crud.JSON[models.FooterSocialLink]()))
		r.Delete("/{id}", crud.NewDelete(log, "social link", deps.SocialLinks))
	})

	r.Route("/contact-messages", func(r chi.Router) {
		r.Get("/", crud.NewList(log, "contact messages", deps.ContactMessages))
		r.Get("/{id}", crud.NewGet(log, "contact message", deps.ContactMessages))
		r.Delete("/{id}", crud.NewDelete(log, "contact message", deps.ContactMessages))
	})

	r.Put("/about", about.NewSave(log, deps.Pages, maxBytes))
	r.Put("/hero", hero.NewSave(log, deps.Pages))

	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", getAllBookings.New(log, deps.Bookings))
		r.Patch("/{id}/status", updateBookingStatus.New(log, deps.Bookings))
		r.Delete("/{id}", deleteBooking.New(log, deps.Bookings))
	})
}
