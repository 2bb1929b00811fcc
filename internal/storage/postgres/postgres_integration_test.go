package postgres_test

import (
	"context"
	"testing"
	"time"

	"debaren/internal/models"
	"debaren/internal/storage"
	"debaren/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueRepository(t *testing.T) {
	s := testutil.NewTestStorage(t)
	ctx := context.Background()

	t.Run("create, get and list with gallery order", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, s)

		lat, lng := -29.858681, 31.021840
		id, err := s.CreateVenue(ctx, &models.Venue{
			Name:      "Harbour Hall",
			VenueType: models.VenueHall,
			Address:   "1 Bay Rd",
			Country:   models.DefaultCountry,
			Latitude:  &lat,
			Longitude: &lng,
			Amenities: models.Amenities{"wifi", "parking"},
			Available: true,
			Gallery: []models.GalleryImage{
				{Image: "venues/gallery/a.jpg"},
				{Image: "venues/gallery/b.jpg"},
			},
		})
		require.NoError(t, err)

		v, err := s.GetVenue(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Harbour Hall", v.Name)
		assert.Equal(t, models.Amenities{"wifi", "parking"}, v.Amenities)
		require.NotNil(t, v.Latitude)
		assert.InDelta(t, lat, *v.Latitude, 1e-6)
		require.Len(t, v.Gallery, 2)
		assert.Equal(t, "venues/gallery/a.jpg", v.Gallery[0].Image)

		require.NoError(t, s.ReorderGallery(ctx, id, []int64{v.Gallery[1].ID}))

		v, err = s.GetVenue(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "venues/gallery/b.jpg", v.Gallery[0].Image)
		assert.Equal(t, "venues/gallery/a.jpg", v.Gallery[1].Image)

		halls, err := s.ListVenues(ctx, models.VenueHall)
		require.NoError(t, err)
		assert.Len(t, halls, 1)

		outdoor, err := s.ListVenues(ctx, models.VenueOutdoor)
		require.NoError(t, err)
		assert.Empty(t, outdoor)
	})

	t.Run("missing venue and image", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, s)

		_, err := s.GetVenue(ctx, 999)
		assert.ErrorIs(t, err, storage.ErrVenueNotFound)

		id := testutil.InsertVenue(t, ctx, s, "Town Hall", true)
		_, err = s.RemoveGalleryImage(ctx, id, 12345)
		assert.ErrorIs(t, err, storage.ErrImageNotFound)

		assert.ErrorIs(t, s.DeleteVenue(ctx, 999), storage.ErrVenueNotFound)

		_, err = s.AddGalleryImages(ctx, 999, []models.GalleryImage{{Image: "/media/x.png"}})
		assert.ErrorIs(t, err, storage.ErrVenueNotFound)
	})

	t.Run("gallery upload appends after existing images", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, s)

		id := testutil.InsertVenue(t, ctx, s, "Beach Club", true)

		first, err := s.AddGalleryImages(ctx, id, []models.GalleryImage{{Image: "/media/a.png"}, {Image: "/media/b.png"}})
		require.NoError(t, err)
		require.Len(t, first, 2)
		assert.Equal(t, 0, first[0].Order)
		assert.Equal(t, 1, first[1].Order)

		second, err := s.AddGalleryImages(ctx, id, []models.GalleryImage{{Image: "/media/c.png", Caption: "Pool"}})
		require.NoError(t, err)
		assert.Equal(t, 2, second[0].Order)
		assert.NotZero(t, second[0].ID)

		v, err := s.GetVenue(ctx, id)
		require.NoError(t, err)
		require.Len(t, v.Gallery, 3)
		assert.Equal(t, "Pool", v.Gallery[2].Caption)
	})
}

func TestBookingRepository(t *testing.T) {
	s := testutil.NewTestStorage(t)
	ctx := context.Background()

	day := func(d int) models.Date { return models.NewDate(2030, time.January, d) }

	t.Run("overlapping confirmed booking is rejected", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, s)
		venueID := testutil.InsertVenue(t, ctx, s, "Garden", true)

		end := day(3)
		first := &models.Booking{VenueID: venueID, CustomerName: "A", CustomerEmail: "a@example.com", StartDate: day(1), EndDate: &end}
		firstID, err := s.CreateBooking(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, models.BookingPending, first.Status)

		second := &models.Booking{VenueID: venueID, CustomerName: "B", CustomerEmail: "b@example.com", StartDate: day(3)}
		secondID, err := s.CreateBooking(ctx, second)
		require.NoError(t, err)

		confirmed, err := s.UpdateBookingStatus(ctx, firstID, models.BookingConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.BookingConfirmed, confirmed.Status)
		assert.Equal(t, "Garden", confirmed.VenueName)

		_, err = s.UpdateBookingStatus(ctx, secondID, models.BookingConfirmed)
		assert.ErrorIs(t, err, storage.ErrDatesTaken)

		_, err = s.CreateBooking(ctx, &models.Booking{VenueID: venueID, CustomerName: "C", CustomerEmail: "c@example.com", StartDate: day(2)})
		assert.ErrorIs(t, err, storage.ErrDatesTaken)

		_, err = s.UpdateBookingStatus(ctx, firstID, models.BookingPending)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	})

	t.Run("unavailable and missing venue", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, s)
		venueID := testutil.InsertVenue(t, ctx, s, "Closed", false)

		_, err := s.CreateBooking(ctx, &models.Booking{VenueID: venueID, CustomerName: "A", CustomerEmail: "a@example.com", StartDate: day(1)})
		assert.ErrorIs(t, err, storage.ErrVenueUnavailable)

		_, err = s.CreateBooking(ctx, &models.Booking{VenueID: 4242, CustomerName: "A", CustomerEmail: "a@example.com", StartDate: day(1)})
		assert.ErrorIs(t, err, storage.ErrVenueNotFound)
	})

	t.Run("expiry sweep", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, s)
		venueID := testutil.InsertVenue(t, ctx, s, "Sweep", true)

		pendingID, err := s.CreateBooking(ctx, &models.Booking{VenueID: venueID, CustomerName: "P", CustomerEmail: "p@example.com", StartDate: day(1)})
		require.NoError(t, err)
		confirmedID, err := s.CreateBooking(ctx, &models.Booking{VenueID: venueID, CustomerName: "C", CustomerEmail: "c@example.com", StartDate: day(5)})
		require.NoError(t, err)
		_, err = s.UpdateBookingStatus(ctx, confirmedID, models.BookingConfirmed)
		require.NoError(t, err)

		cancelled, completed, err := s.ExpireBookings(ctx, day(10))
		require.NoError(t, err)
		assert.EqualValues(t, 1, cancelled)
		assert.EqualValues(t, 1, completed)

		b, err := s.GetBooking(ctx, pendingID)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCancelled, b.Status)

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Content["bookings"])
		assert.Equal(t, 1, stats.Bookings[models.BookingCompleted])
	})
}

func TestSingletons(t *testing.T) {
	s := testutil.NewTestStorage(t)
	ctx := context.Background()
	testutil.TruncateAll(t, ctx, s)

	_, err := s.GetHero(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.SaveHero(ctx, &models.HeroSection{Title: "Venues", Subtitle: "Find one"}))
	require.NoError(t, s.SaveHero(ctx, &models.HeroSection{Title: "Venues!", Subtitle: "Find one"}))

	hero, err := s.GetHero(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Venues!", hero.Title)
	assert.Equal(t, models.DefaultCTAURL, hero.CTAURL)

	var rows int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM hero_sections`).Scan(&rows))
	assert.Equal(t, 1, rows)
}
