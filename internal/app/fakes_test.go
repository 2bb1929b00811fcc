package app

import (
	"context"
	"debaren/internal/lib/events"
	"debaren/internal/lib/geocode"
	"debaren/internal/lib/media"
	"debaren/internal/models"
	"debaren/internal/storage"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"sync"
)

type fakeGeocoder struct {
	point   geocode.Point
	err     error
	queries []string
}

func (g *fakeGeocoder) Geocode(_ context.Context, address string) (geocode.Point, error) {
	g.queries = append(g.queries, address)
	return g.point, g.err
}

type fakeMedia struct {
	saved   []string
	removed []string
	reject  bool
}

func (m *fakeMedia) Save(folder string, fh *multipart.FileHeader) (string, error) {
	if m.reject {
		return "", media.ErrNotImage
	}
	url := fmt.Sprintf("/media/%s/%d-%s", folder, len(m.saved), fh.Filename)
	m.saved = append(m.saved, url)
	return url, nil
}

func (m *fakeMedia) Remove(url string) error {
	m.removed = append(m.removed, url)
	return nil
}

type recordingPublisher struct {
	mu  sync.Mutex
	got []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.got = append(p.got, e)
	return nil
}

func (p *recordingPublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, 0, len(p.got))
	for _, e := range p.got {
		out = append(out, e.Type)
	}
	return out
}

var errDB = errors.New("db is down")

type fakeVenueRepo struct {
	venues    map[int64]models.Venue
	nextID    int64
	createErr error
	reordered []int64
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: map[int64]models.Venue{}}
}

func (r *fakeVenueRepo) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, storage.ErrVenueNotFound
	}
	return &v, nil
}

func (r *fakeVenueRepo) CreateVenue(_ context.Context, v *models.Venue) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	stored := *v
	stored.ID = r.nextID
	r.venues[stored.ID] = stored
	return stored.ID, nil
}

func (r *fakeVenueRepo) UpdateVenue(_ context.Context, id int64, v *models.Venue) error {
	old, ok := r.venues[id]
	if !ok {
		return storage.ErrVenueNotFound
	}
	stored := *v
	stored.ID = id
	stored.Gallery = append(old.Gallery, v.Gallery...)
	r.venues[id] = stored
	return nil
}

func (r *fakeVenueRepo) DeleteVenue(_ context.Context, id int64) error {
	if _, ok := r.venues[id]; !ok {
		return storage.ErrVenueNotFound
	}
	delete(r.venues, id)
	return nil
}

func (r *fakeVenueRepo) AddGalleryImages(_ context.Context, venueID int64, images []models.GalleryImage) ([]models.GalleryImage, error) {
	v, ok := r.venues[venueID]
	if !ok {
		return nil, storage.ErrVenueNotFound
	}
	v.Gallery = append(v.Gallery, images...)
	r.venues[venueID] = v
	return images, nil
}

func (r *fakeVenueRepo) RemoveGalleryImage(_ context.Context, venueID, imageID int64) (string, error) {
	v, ok := r.venues[venueID]
	if !ok {
		return "", storage.ErrImageNotFound
	}
	for i, img := range v.Gallery {
		if img.ID == imageID {
			v.Gallery = append(v.Gallery[:i], v.Gallery[i+1:]...)
			r.venues[venueID] = v
			return img.Image, nil
		}
	}
	return "", storage.ErrImageNotFound
}

func (r *fakeVenueRepo) ReorderGallery(_ context.Context, _ int64, imageIDs []int64) error {
	r.reordered = imageIDs
	return nil
}

type fakeBookingRepo struct {
	bookings  map[int64]models.Booking
	nextID    int64
	createErr error
	swept     [2]int64
	sweptDay  models.Date
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]models.Booking{}}
}

func (r *fakeBookingRepo) CreateBooking(_ context.Context, b *models.Booking) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	b.Status = models.BookingPending
	r.bookings[b.ID] = *b
	return b.ID, nil
}

func (r *fakeBookingRepo) GetBooking(_ context.Context, id int64) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	return &b, nil
}

func (r *fakeBookingRepo) ListBookings(_ context.Context, f models.BookingFilter) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeBookingRepo) UpdateBookingStatus(_ context.Context, id int64, next models.BookingStatus) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	if !b.Status.CanTransition(next) {
		return nil, models.ErrInvalidTransition
	}
	b.Status = next
	r.bookings[id] = b
	return &b, nil
}

func (r *fakeBookingRepo) DeleteBooking(_ context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return storage.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) ExpireBookings(_ context.Context, today models.Date) (int64, int64, error) {
	r.sweptDay = today
	return r.swept[0], r.swept[1], nil
}

// memCollection is an in-memory storage.Collection.
type memCollection[T any] struct {
	items  map[int64]T
	nextID int64
}

func newMemCollection[T any]() *memCollection[T] {
	return &memCollection[T]{items: map[int64]T{}}
}

func (c *memCollection[T]) List(context.Context) ([]T, error) {
	ids := make([]int64, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out, nil
}

func (c *memCollection[T]) Get(_ context.Context, id int64) (*T, error) {
	item, ok := c.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &item, nil
}

func (c *memCollection[T]) Create(_ context.Context, item *T) (int64, error) {
	c.nextID++
	c.items[c.nextID] = *item
	return c.nextID, nil
}

func (c *memCollection[T]) Update(_ context.Context, id int64, item *T) error {
	if _, ok := c.items[id]; !ok {
		return storage.ErrNotFound
	}
	c.items[id] = *item
	return nil
}

func (c *memCollection[T]) Delete(_ context.Context, id int64) error {
	if _, ok := c.items[id]; !ok {
		return storage.ErrNotFound
	}
	delete(c.items, id)
	return nil
}

func upload(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}
