// Package overview renders the admin dashboard: booking and content charts
// plus a map of located venues.
package overview

import (
	"context"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Source
type Source interface {
	Stats(ctx context.Context) (*models.Stats, error)
	ListVenues(ctx context.Context, venueType models.VenueType) ([]models.Venue, error)
}

func New(log *slog.Logger, source Source, brand string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.overview.New"

		log := log.With(slog.String("op", op))

		stats, err := source.Stats(r.Context())
		if err != nil {
			log.Error("failed to load stats", sl.Err(err))
			http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
			return
		}

		venues, err := source.ListVenues(r.Context(), "")
		if err != nil {
			log.Error("failed to load venues", sl.Err(err))
			http.Error(w, "failed to load dashboard", http.StatusInternalServerError)
			return
		}

		page := components.NewPage()
		page.PageTitle = brand + " dashboard"
		page.SetLayout(components.PageFlexLayout)
		page.AddCharts(
			BookingsChart(stats),
			ContentChart(stats),
			VenueTypesChart(stats),
			VenueMap(venues),
		)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err = page.Render(w); err != nil {
			log.Error("failed to render dashboard", sl.Err(err))
		}
	}
}

func BookingsChart(stats *models.Stats) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "Bookings by status"}),
	)

	labels := make([]string, 0, len(models.BookingStatuses))
	data := make([]opts.BarData, 0, len(models.BookingStatuses))
	for _, s := range models.BookingStatuses {
		labels = append(labels, string(s))
		data = append(data, opts.BarData{Name: string(s), Value: stats.Bookings[s]})
	}

	bar.SetXAxis(labels).AddSeries("bookings", data)

	return bar
}

func ContentChart(stats *models.Stats) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "Content"}),
	)

	names := make([]string, 0, len(stats.Content))
	for name := range stats.Content {
		names = append(names, name)
	}
	sort.Strings(names)

	data := make([]opts.PieData, 0, len(names))
	for _, name := range names {
		data = append(data, opts.PieData{Name: name, Value: stats.Content[name]})
	}

	pie.AddSeries("content", data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}))

	return pie
}

func VenueTypesChart(stats *models.Stats) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: "Venues by type"}),
	)

	labels := make([]string, 0, len(models.VenueTypes))
	data := make([]opts.BarData, 0, len(models.VenueTypes))
	for _, t := range models.VenueTypes {
		labels = append(labels, t.Label())
		data = append(data, opts.BarData{Name: t.Label(), Value: stats.VenuesByType[t]})
	}

	bar.SetXAxis(labels).AddSeries("venues", data)

	return bar
}

// VenueMap plots every venue with coordinates. GeoData values are [lng, lat].
func VenueMap(venues []models.Venue) *charts.Geo {
	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Venue locations"}),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: "world"}),
	)

	points := make([]opts.GeoData, 0, len(venues))
	for _, v := range venues {
		lat, lng, ok := v.Location()
		if !ok {
			continue
		}
		points = append(points, opts.GeoData{Name: v.Name, Value: []float64{lng, lat}})
	}

	geo.AddSeries("venues", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(false), Formatter: "{b}"}),
	)

	return geo
}
