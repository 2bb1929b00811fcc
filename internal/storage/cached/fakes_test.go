package cached

import (
	"context"
	"debaren/internal/models"
	"debaren/internal/storage"
	"debaren/internal/storage/redis"
	"encoding/json"
	"errors"
	"sort"
)

var errDown = errors.New("connection refused")

type memCache struct {
	data  map[string][]byte
	reads int
	fail  bool
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.reads++
	if c.fail {
		return false, errDown
	}
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, v any) error {
	if c.fail {
		return errDown
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) error {
	if c.fail {
		return errDown
	}
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

type point struct{ lat, lng float64 }

type memGeo struct {
	points map[int64]point
	fail   bool
}

func newMemGeo() *memGeo {
	return &memGeo{points: map[int64]point{}}
}

func (g *memGeo) Put(_ context.Context, id int64, lat, lng float64) error {
	if g.fail {
		return errDown
	}
	g.points[id] = point{lat, lng}
	return nil
}

func (g *memGeo) Remove(_ context.Context, id int64) error {
	if g.fail {
		return errDown
	}
	delete(g.points, id)
	return nil
}

func (g *memGeo) Reset(_ context.Context) error {
	if g.fail {
		return errDown
	}
	g.points = map[int64]point{}
	return nil
}

func (g *memGeo) Nearby(_ context.Context, lat, lng, radiusKm float64, limit int) ([]redis.GeoHit, error) {
	if g.fail {
		return nil, errDown
	}
	var hits []redis.GeoHit
	for id, p := range g.points {
		if d := distanceKm(lat, lng, p.lat, p.lng); d <= radiusKm {
			hits = append(hits, redis.GeoHit{ID: id, DistanceKm: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].DistanceKm < hits[j].DistanceKm })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

type memSpots struct {
	items  map[int64]models.WifiSpot
	nextID int64
	lists  int
}

func newMemSpots() *memSpots {
	return &memSpots{items: map[int64]models.WifiSpot{}}
}

func (m *memSpots) List(context.Context) ([]models.WifiSpot, error) {
	m.lists++
	out := make([]models.WifiSpot, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memSpots) Get(_ context.Context, id int64) (*models.WifiSpot, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &s, nil
}

func (m *memSpots) Create(_ context.Context, s *models.WifiSpot) (int64, error) {
	m.nextID++
	s.ID = m.nextID
	m.items[s.ID] = *s
	return s.ID, nil
}

func (m *memSpots) Update(_ context.Context, id int64, s *models.WifiSpot) error {
	if _, ok := m.items[id]; !ok {
		return storage.ErrNotFound
	}
	s.ID = id
	m.items[id] = *s
	return nil
}

func (m *memSpots) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memVenues struct {
	items  map[int64]models.Venue
	nextID int64
	lists  int
}

func newMemVenues() *memVenues {
	return &memVenues{items: map[int64]models.Venue{}}
}

func (m *memVenues) ListVenues(_ context.Context, t models.VenueType) ([]models.Venue, error) {
	m.lists++
	var out []models.Venue
	for _, v := range m.items {
		if t == "" || v.VenueType == t {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memVenues) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, storage.ErrVenueNotFound
	}
	return &v, nil
}

func (m *memVenues) GetVenuesByIDs(_ context.Context, ids []int64) ([]models.Venue, error) {
	var out []models.Venue
	for _, id := range ids {
		if v, ok := m.items[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVenues) CreateVenue(_ context.Context, v *models.Venue) (int64, error) {
	m.nextID++
	v.ID = m.nextID
	m.items[v.ID] = *v
	return v.ID, nil
}

func (m *memVenues) UpdateVenue(_ context.Context, id int64, v *models.Venue) error {
	if _, ok := m.items[id]; !ok {
		return storage.ErrVenueNotFound
	}
	v.ID = id
	m.items[id] = *v
	return nil
}

func (m *memVenues) DeleteVenue(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return storage.ErrVenueNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memVenues) AddGalleryImages(_ context.Context, _ int64, images []models.GalleryImage) ([]models.GalleryImage, error) {
	return images, nil
}

func (m *memVenues) RemoveGalleryImage(context.Context, int64, int64) (string, error) {
	return "gallery/a.jpg", nil
}

func (m *memVenues) ReorderGallery(context.Context, int64, []int64) error {
	return nil
}

func ptr(f float64) *float64 { return &f }
