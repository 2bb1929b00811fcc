package cached

import (
	"context"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/models"
	"errors"
	"log/slog"
)

// VenueStore is the subset of the Postgres storage that Venues decorates.
type VenueStore interface {
	ListVenues(ctx context.Context, venueType models.VenueType) ([]models.Venue, error)
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	GetVenuesByIDs(ctx context.Context, ids []int64) ([]models.Venue, error)
	CreateVenue(ctx context.Context, v *models.Venue) (int64, error)
	UpdateVenue(ctx context.Context, id int64, v *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
	AddGalleryImages(ctx context.Context, venueID int64, images []models.GalleryImage) ([]models.GalleryImage, error)
	RemoveGalleryImage(ctx context.Context, venueID, imageID int64) (string, error)
	ReorderGallery(ctx context.Context, venueID int64, imageIDs []int64) error
}

// Venues caches venue listings per type and keeps the venue geo index current.
type Venues struct {
	VenueStore
	cache Cache
	geo   GeoIndex
	log   *slog.Logger
}

func NewVenues(log *slog.Logger, next VenueStore, cache Cache, geo GeoIndex) *Venues {
	return &Venues{
		VenueStore: next,
		cache:      cache,
		geo:        geo,
		log:        log.With(slog.String("component", "cached.venues")),
	}
}

func venueListKey(t models.VenueType) string {
	if t == "" {
		return "venues:all"
	}
	return "venues:" + string(t)
}

func allVenueKeys() []string {
	keys := []string{venueListKey("")}
	for _, t := range models.VenueTypes {
		keys = append(keys, venueListKey(t))
	}
	return keys
}

func (v *Venues) ListVenues(ctx context.Context, venueType models.VenueType) ([]models.Venue, error) {
	return readThrough(ctx, v.log, v.cache, venueListKey(venueType), func() ([]models.Venue, error) {
		return v.VenueStore.ListVenues(ctx, venueType)
	})
}

func (v *Venues) CreateVenue(ctx context.Context, venue *models.Venue) (int64, error) {
	id, err := v.VenueStore.CreateVenue(ctx, venue)
	if err != nil {
		return 0, err
	}

	indexed := *venue
	indexed.ID = id
	index(ctx, v.log, v.geo, indexed)
	invalidate(ctx, v.log, v.cache, allVenueKeys()...)

	return id, nil
}

func (v *Venues) UpdateVenue(ctx context.Context, id int64, venue *models.Venue) error {
	if err := v.VenueStore.UpdateVenue(ctx, id, venue); err != nil {
		return err
	}

	indexed := *venue
	indexed.ID = id
	index(ctx, v.log, v.geo, indexed)
	invalidate(ctx, v.log, v.cache, allVenueKeys()...)

	return nil
}

func (v *Venues) DeleteVenue(ctx context.Context, id int64) error {
	if err := v.VenueStore.DeleteVenue(ctx, id); err != nil {
		return err
	}

	if err := v.geo.Remove(ctx, id); err != nil {
		v.log.Warn("geo index removal failed", slog.Int64("id", id), sl.Err(err))
	}
	invalidate(ctx, v.log, v.cache, allVenueKeys()...)

	return nil
}

func (v *Venues) AddGalleryImages(ctx context.Context, venueID int64, images []models.GalleryImage) ([]models.GalleryImage, error) {
	added, err := v.VenueStore.AddGalleryImages(ctx, venueID, images)
	if err != nil {
		return nil, err
	}

	invalidate(ctx, v.log, v.cache, allVenueKeys()...)
	return added, nil
}

func (v *Venues) RemoveGalleryImage(ctx context.Context, venueID, imageID int64) (string, error) {
	image, err := v.VenueStore.RemoveGalleryImage(ctx, venueID, imageID)
	if err != nil {
		return "", err
	}

	invalidate(ctx, v.log, v.cache, allVenueKeys()...)
	return image, nil
}

func (v *Venues) ReorderGallery(ctx context.Context, venueID int64, imageIDs []int64) error {
	if err := v.VenueStore.ReorderGallery(ctx, venueID, imageIDs); err != nil {
		return err
	}

	invalidate(ctx, v.log, v.cache, allVenueKeys()...)
	return nil
}

// Nearby returns venues within radiusKm of the point, closest first.
func (v *Venues) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Nearby[models.Venue], error) {
	hits, err := v.geo.Nearby(ctx, lat, lng, radiusKm, nearbyLimit)
	if err != nil {
		if !errors.Is(err, ErrGeoDisabled) {
			v.log.Warn("geo query failed, scanning listing", sl.Err(err))
		}

		all, err := v.ListVenues(ctx, "")
		if err != nil {
			return nil, err
		}
		return scanNearby(all, lat, lng, radiusKm), nil
	}

	ids := make([]int64, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}

	venues, err := v.VenueStore.GetVenuesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return joinHits(hits, venues), nil
}

// Reindex rebuilds the venue geo index from the database.
func (v *Venues) Reindex(ctx context.Context) error {
	venues, err := v.VenueStore.ListVenues(ctx, "")
	if err != nil {
		return err
	}
	return reindex(ctx, v.geo, venues)
}
