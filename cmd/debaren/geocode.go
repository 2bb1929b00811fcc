package main

import (
	"debaren/internal/app"
	"debaren/internal/lib/events"
	"debaren/internal/lib/geocode"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/lib/media"
	"debaren/internal/storage/postgres"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Nominatim's usage policy allows one request per second.
const backfillDelay = time.Second

var backfillVenues bool

var geocodeCmd = &cobra.Command{
	Use:   "geocode [address]",
	Short: "Resolve an address, or fill in missing venue coordinates with --venues",
	Args: func(cmd *cobra.Command, args []string) error {
		if backfillVenues {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := setupLogger(cfg.Env)
		geocoder := geocode.New(cfg.Geocoder)

		if !backfillVenues {
			p, err := geocoder.Geocode(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f,%.6f\n", p.Lat, p.Lng)
			return nil
		}

		storage, err := postgres.InitDB(cmd.Context(), &cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			return err
		}
		defer storage.Close()

		venues, err := storage.ListVenues(cmd.Context(), "")
		if err != nil {
			return err
		}

		svc := app.NewVenueService(log, storage, geocoder, media.New(cfg.Media.Dir, cfg.Media.BaseURL), events.Noop{})

		var located int
		for _, v := range venues {
			if v.HasLocation() || strings.TrimSpace(v.Address) == "" {
				continue
			}

			ok, err := svc.Locate(cmd.Context(), v.ID)
			if err != nil {
				log.Error("failed to update venue", slog.Int64("id", v.ID), sl.Err(err))
			}
			if ok {
				located++
			}

			time.Sleep(backfillDelay)
		}

		log.Info("venue geocoding finished", slog.Int("venues", len(venues)), slog.Int("located", located))

		return nil
	},
}

func init() {
	geocodeCmd.Flags().BoolVar(&backfillVenues, "venues", false, "geocode stored venues that have an address but no coordinates")
}
