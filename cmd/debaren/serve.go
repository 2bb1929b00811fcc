package main

import (
	"context"
	"debaren/internal/app"
	"debaren/internal/config"
	"debaren/internal/http-server/router"
	"debaren/internal/lib/auth"
	"debaren/internal/lib/events"
	"debaren/internal/lib/geocode"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/lib/mail"
	"debaren/internal/lib/media"
	"debaren/internal/models"
	"debaren/internal/realtime"
	"debaren/internal/site"
	"debaren/internal/storage/cached"
	"debaren/internal/storage/postgres"
	"debaren/internal/storage/redis"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	eventQueueSize  = 256
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := setupLogger(cfg.Env)

	log.Info("Starting debaren", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	storage, err := postgres.InitDB(ctx, &cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close postgres connection", sl.Err(err))
		}
		log.Info("postgres connection closed")
	}()

	if migrateOnStart {
		if err = storage.Migrate(ctx); err != nil {
			log.Error("failed to apply migrations", sl.Err(err))
			return err
		}
	}

	var (
		cache    cached.Cache    = cached.NoCache{}
		venueGeo cached.GeoIndex = cached.NoGeo{}
		wifiGeo  cached.GeoIndex = cached.NoGeo{}
	)
	if cfg.Redis.Address != "" {
		rdb, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("failed to connect to redis", sl.Err(err))
			return err
		}
		defer rdb.Close()

		cache = redis.NewCache(rdb, cfg.Redis.TTL)
		venueGeo = redis.NewGeoIndex(rdb, "venues")
		wifiGeo = redis.NewGeoIndex(rdb, "wifi_spots")
	} else {
		log.Warn("redis is not configured, caching and geo index disabled")
	}

	hub := realtime.NewHub(log, cfg.HTTPServer.CORSOrigins)
	defer hub.Close()

	publisher := events.Multi{hub}
	if len(cfg.Kafka.Brokers) > 0 {
		kafka := events.NewAsync(log, "kafka",
			events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic), eventQueueSize, cfg.Kafka.Timeout)
		defer func() {
			if err := kafka.Close(); err != nil {
				log.Error("failed to close kafka writer", sl.Err(err))
			}
		}()
		publisher = append(publisher, kafka)
	}

	if cfg.Mail.Host != "" {
		client, err := mail.New(cfg.Mail)
		if err != nil {
			log.Error("failed to init mail client", sl.Err(err))
			return err
		}
		mailer := events.NewAsync(log, "mail",
			mail.NewContactMailer(client, cfg.Mail, cfg.Site), eventQueueSize, cfg.Mail.Timeout)
		defer mailer.Close()
		publisher = append(publisher, mailer)
	} else {
		log.Warn("smtp is not configured, contact emails disabled")
	}

	venues := cached.NewVenues(log, storage, cache, venueGeo)
	wifiSpots := cached.NewWifiSpots(log, storage.WifiSpots(), cache, wifiGeo)
	reindex(ctx, log, venues, wifiSpots)

	mediaStore := media.New(cfg.Media.Dir, cfg.Media.BaseURL)

	venueService := app.NewVenueService(log, venues, geocode.New(cfg.Geocoder), mediaStore, publisher)
	bookingService := app.NewBookingService(log, storage, publisher)
	contactService := app.NewContactService(log, storage.ContactMessages(), publisher)
	pageService := app.NewPageService(log, cached.NewPages(log, storage, cache), mediaStore, publisher)

	popupVenues := app.NewContentService[models.PopupVenue](log, "popup_venues",
		cached.NewCollection[models.PopupVenue](log, storage.PopupVenues(), cache, "popup_venues"), publisher,
		app.WithImage(mediaStore, media.FolderPopupVenues, func(p *models.PopupVenue) *string { return &p.Image }))
	schoolPrograms := app.NewContentService[models.SchoolProgram](log, "school_programs",
		cached.NewCollection[models.SchoolProgram](log, storage.SchoolPrograms(), cache, "school_programs"), publisher,
		app.WithImage(mediaStore, media.FolderSchool, func(p *models.SchoolProgram) *string { return &p.Image }))
	wifiService := app.NewContentService[models.WifiSpot](log, "wifi_spots", wifiSpots, publisher)
	socialLinks := app.NewContentService[models.FooterSocialLink](log, "footer_social_links",
		cached.NewCollection[models.FooterSocialLink](log, storage.SocialLinks(), cache, "footer_social_links"), publisher)
	contactMessages := app.NewContentService[models.ContactMessage](log, "contact_messages",
		storage.ContactMessages(), publisher)

	pages, err := site.New(log, cfg.Site, site.Deps{
		Venues:         venues,
		PopupVenues:    popupVenues,
		WifiSpots:      wifiService,
		SchoolPrograms: schoolPrograms,
		SocialLinks:    socialLinks,
		Pages:          pageService,
		Bookings:       bookingService,
		Contact:        contactService,
	})
	if err != nil {
		log.Error("failed to load site templates", sl.Err(err))
		return err
	}

	handler := router.New(log, router.Options{
		Brand:          cfg.Site.Brand,
		CORSOrigins:    cfg.HTTPServer.CORSOrigins,
		MaxUploadBytes: cfg.Media.MaxUploadMB << 20,
		MediaPath:      mediaStore.BaseURL(),
	}, router.Deps{
		Venues:          venues,
		VenueAdmin:      venueService,
		PopupVenues:     popupVenues,
		WifiSpots:       wifiService,
		WifiNearby:      wifiSpots,
		SchoolPrograms:  schoolPrograms,
		SocialLinks:     socialLinks,
		ContactMessages: contactMessages,
		Contact:         contactService,
		Bookings:        bookingService,
		Pages:           pageService,
		Auth:            auth.New(cfg.Admin),
		Stats:           storage,
		Dashboard:       storage,
		Hub:             hub,
		Media:           mediaStore.Handler(),
		Site:            pages.Routes(),
	})

	stopSweeper := startSweeper(ctx, log, bookingService, cfg.Bookings.SweepInterval)
	defer stopSweeper()

	return listen(ctx, log, cfg.HTTPServer, handler)
}

func reindex(ctx context.Context, log *slog.Logger, indexes ...interface{ Reindex(context.Context) error }) {
	for _, idx := range indexes {
		if err := idx.Reindex(ctx); err != nil {
			log.Warn("failed to rebuild geo index", slog.String("index", fmt.Sprintf("%T", idx)), sl.Err(err))
		}
	}
}

type sweeper interface {
	Sweep(ctx context.Context) (app.SweepResult, error)
}

// startSweeper runs sweepBookings in the background. The returned stop cancels
// it and waits for a sweep in progress to return.
func startSweeper(ctx context.Context, log *slog.Logger, bookings sweeper, interval time.Duration) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)

	var g errgroup.Group
	g.Go(func() error {
		sweepBookings(ctx, log, bookings, interval)
		return nil
	})

	return func() {
		cancel()
		_ = g.Wait()
	}
}

// sweepBookings expires stale bookings until ctx is done.
func sweepBookings(ctx context.Context, log *slog.Logger, bookings sweeper, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := bookings.Sweep(ctx)
		if err != nil {
			log.Error("failed to expire bookings", sl.Err(err))
		} else if res.Cancelled > 0 || res.Completed > 0 {
			log.Info("expired bookings", slog.Int64("cancelled", res.Cancelled), slog.Int64("completed", res.Completed))
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}

func listen(ctx context.Context, log *slog.Logger, cfg config.HTTPServer, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Info("starting server", slog.String("address", cfg.Address))

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		log.Error("failed to start server", sl.Err(err))
		return err
	case <-ctx.Done():
	}

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
		return err
	}

	log.Info("application stopped")

	return nil
}
