package app

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/lib/logger/sl"
	"debaren/internal/lib/media"
	"debaren/internal/models"
	"log/slog"
	"mime/multipart"
	"strings"
)

type VenueRepository interface {
	GetVenue(ctx context.Context, id int64) (*models.Venue, error)
	CreateVenue(ctx context.Context, v *models.Venue) (int64, error)
	UpdateVenue(ctx context.Context, id int64, v *models.Venue) error
	DeleteVenue(ctx context.Context, id int64) error
	AddGalleryImages(ctx context.Context, venueID int64, images []models.GalleryImage) ([]models.GalleryImage, error)
	RemoveGalleryImage(ctx context.Context, venueID, imageID int64) (string, error)
	ReorderGallery(ctx context.Context, venueID int64, imageIDs []int64) error
}

type VenueService struct {
	repo     VenueRepository
	geocoder Geocoder
	media    MediaStore
	events   events.Publisher
	log      *slog.Logger
}

func NewVenueService(log *slog.Logger, repo VenueRepository, geocoder Geocoder, media MediaStore, pub events.Publisher) *VenueService {
	return &VenueService{
		repo:     repo,
		geocoder: geocoder,
		media:    media,
		events:   pub,
		log:      log.With(slog.String("component", "app.venues")),
	}
}

// Create validates the venue, geocodes it when coordinates are missing,
// stores its uploads and inserts it.
func (s *VenueService) Create(ctx context.Context, form VenueForm) (*models.Venue, error) {
	v := form.Venue
	if err := validate.Struct(v); err != nil {
		return nil, err
	}

	s.locate(ctx, &v)

	saved, err := s.storeUploads(&v, form)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateVenue(ctx, &v)
	if err != nil {
		discard(s.log, s.media, saved...)
		return nil, err
	}

	notify(ctx, s.log, s.events, events.Changed("venues", "create", id))

	return s.repo.GetVenue(ctx, id)
}

// Update replaces the venue's fields. The cover image is kept unless a new one
// is uploaded; gallery uploads are appended.
func (s *VenueService) Update(ctx context.Context, id int64, form VenueForm) (*models.Venue, error) {
	existing, err := s.repo.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	v := form.Venue
	v.ID = id
	v.Image = existing.Image
	if err := validate.Struct(v); err != nil {
		return nil, err
	}

	s.locate(ctx, &v)

	saved, err := s.storeUploads(&v, form)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateVenue(ctx, id, &v); err != nil {
		discard(s.log, s.media, saved...)
		return nil, err
	}

	if form.Image != nil {
		discard(s.log, s.media, existing.Image)
	}

	notify(ctx, s.log, s.events, events.Changed("venues", "update", id))

	return s.repo.GetVenue(ctx, id)
}

func (s *VenueService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetVenue(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteVenue(ctx, id); err != nil {
		return err
	}

	files := []string{existing.Image}
	for _, img := range existing.Gallery {
		files = append(files, img.Image)
	}
	discard(s.log, s.media, files...)

	notify(ctx, s.log, s.events, events.Changed("venues", "delete", id))

	return nil
}

// Locate geocodes a stored venue that has an address but no coordinates. It
// reports whether coordinates were written.
func (s *VenueService) Locate(ctx context.Context, id int64) (bool, error) {
	v, err := s.repo.GetVenue(ctx, id)
	if err != nil {
		return false, err
	}
	if v.HasLocation() {
		return false, nil
	}

	s.locate(ctx, v)
	if !v.HasLocation() {
		return false, nil
	}

	v.Gallery = nil
	if err := s.repo.UpdateVenue(ctx, id, v); err != nil {
		return false, err
	}

	notify(ctx, s.log, s.events, events.Changed("venues", "update", id))

	return true, nil
}

// AddGallery stores uploaded files and appends them to the venue's gallery.
// A single caption, when given, applies to every uploaded image.
func (s *VenueService) AddGallery(ctx context.Context, venueID int64, files []*multipart.FileHeader, caption string) ([]models.GalleryImage, error) {
	if len(files) == 0 {
		return nil, invalidf("no gallery images uploaded")
	}

	images := make([]models.GalleryImage, 0, len(files))
	saved := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := s.media.Save(media.FolderVenueGallery, fh)
		if err != nil {
			discard(s.log, s.media, saved...)
			return nil, mediaErr(err)
		}
		saved = append(saved, url)
		images = append(images, models.GalleryImage{Image: url, Caption: caption})
	}

	added, err := s.repo.AddGalleryImages(ctx, venueID, images)
	if err != nil {
		discard(s.log, s.media, saved...)
		return nil, err
	}

	notify(ctx, s.log, s.events, events.Changed("venues", "gallery_add", venueID))

	return added, nil
}

func (s *VenueService) RemoveGalleryImage(ctx context.Context, venueID, imageID int64) error {
	image, err := s.repo.RemoveGalleryImage(ctx, venueID, imageID)
	if err != nil {
		return err
	}

	discard(s.log, s.media, image)
	notify(ctx, s.log, s.events, events.Changed("venues", "gallery_remove", venueID))

	return nil
}

// ReorderGallery moves the listed images to the front of the gallery in the given order.
func (s *VenueService) ReorderGallery(ctx context.Context, venueID int64, imageIDs []int64) error {
	if len(imageIDs) == 0 {
		return invalidf("image order must list at least one image")
	}

	seen := make(map[int64]struct{}, len(imageIDs))
	for _, id := range imageIDs {
		if _, dup := seen[id]; dup {
			return invalidf("image %d listed more than once", id)
		}
		seen[id] = struct{}{}
	}

	if err := s.repo.ReorderGallery(ctx, venueID, imageIDs); err != nil {
		return err
	}

	notify(ctx, s.log, s.events, events.Changed("venues", "gallery_order", venueID))

	return nil
}

// locate fills missing coordinates from the venue address. Failures leave
// the venue without coordinates.
func (s *VenueService) locate(ctx context.Context, v *models.Venue) {
	if v.HasLocation() || strings.TrimSpace(v.Address) == "" {
		return
	}

	address := v.FullAddress()
	p, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.log.Warn("geocoding failed, saving venue without coordinates",
			slog.String("address", address), sl.Err(err))
		v.Latitude, v.Longitude = nil, nil
		return
	}

	v.Latitude, v.Longitude = &p.Lat, &p.Lng
}

// storeUploads saves the cover and gallery files and returns their URLs so a
// failed write can remove them again.
func (s *VenueService) storeUploads(v *models.Venue, form VenueForm) ([]string, error) {
	var saved []string

	if form.Image != nil {
		url, err := s.media.Save(media.FolderVenues, form.Image)
		if err != nil {
			return nil, mediaErr(err)
		}
		v.Image = url
		saved = append(saved, url)
	}

	v.Gallery = nil
	for _, fh := range form.Gallery {
		url, err := s.media.Save(media.FolderVenueGallery, fh)
		if err != nil {
			discard(s.log, s.media, saved...)
			return nil, mediaErr(err)
		}
		v.Gallery = append(v.Gallery, models.GalleryImage{Image: url})
		saved = append(saved, url)
	}

	return saved, nil
}
