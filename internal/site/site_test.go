package site

import (
	"context"
	"debaren/internal/app"
	"debaren/internal/config"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"debaren/internal/models"
	"debaren/internal/storage"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenues struct {
	venues []models.Venue
	err    error
}

func (f *fakeVenues) ListVenues(_ context.Context, venueType models.VenueType) ([]models.Venue, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Venue
	for _, v := range f.venues {
		if venueType == "" || v.VenueType == venueType {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVenues) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	for _, v := range f.venues {
		if v.ID == id {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("get venue %d: %w", id, storage.ErrVenueNotFound)
}

type fakeList[T any] struct {
	items []T
	err   error
}

func (f fakeList[T]) List(context.Context) ([]T, error) {
	return f.items, f.err
}

type fakePages struct {
	about *models.About
	hero  *models.HeroSection
}

func (f fakePages) About(context.Context) (*models.About, error) {
	if f.about == nil {
		return nil, storage.ErrNotFound
	}
	return f.about, nil
}

func (f fakePages) Hero(context.Context) (*models.HeroSection, error) {
	if f.hero == nil {
		return nil, storage.ErrNotFound
	}
	return f.hero, nil
}

type fakeBookings struct {
	got []app.BookingRequest
	err error
}

func (f *fakeBookings) Create(_ context.Context, req app.BookingRequest) (*models.Booking, error) {
	f.got = append(f.got, req)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Booking{ID: 1, VenueID: req.VenueID, Status: models.BookingPending}, nil
}

type fakeContact struct {
	got []models.ContactMessage
	err error
}

func (f *fakeContact) Submit(_ context.Context, msg models.ContactMessage) (*models.ContactMessage, error) {
	f.got = append(f.got, msg)
	if f.err != nil {
		return nil, f.err
	}
	msg.ID = 7
	return &msg, nil
}

type fixture struct {
	venues   *fakeVenues
	bookings *fakeBookings
	contact  *fakeContact
	deps     Deps
}

func newFixture() *fixture {
	f := &fixture{
		venues: &fakeVenues{venues: []models.Venue{
			{ID: 1, Name: "Hilltop Hall", VenueType: models.VenueHall, City: "Pretoria", Capacity: 200, Available: true},
			{ID: 2, Name: "River Garden", VenueType: models.VenueOutdoor, City: "Durban", Capacity: 80},
		}},
		bookings: &fakeBookings{},
		contact:  &fakeContact{},
	}
	f.deps = Deps{
		Venues:         f.venues,
		PopupVenues:    fakeList[models.PopupVenue]{items: []models.PopupVenue{{ID: 1, Name: "Rooftop Market"}}},
		WifiSpots:      fakeList[models.WifiSpot]{items: []models.WifiSpot{{ID: 1, Name: "Library Lounge"}}},
		SchoolPrograms: fakeList[models.SchoolProgram]{items: []models.SchoolProgram{{ID: 1, Name: "Coding Camp"}}},
		SocialLinks: fakeList[models.FooterSocialLink]{items: []models.FooterSocialLink{
			{ID: 1, Platform: models.PlatformTikTok, URL: "https://tiktok.com/@debaren"},
		}},
		Pages:    fakePages{hero: &models.HeroSection{Title: "Find a place", Subtitle: "Book it today", CTAText: "Explore Venues", CTAURL: "/venues"}},
		Bookings: f.bookings,
		Contact:  f.contact,
	}
	return f
}

func (f *fixture) handler(t *testing.T) http.Handler {
	t.Helper()

	s, err := New(slogdiscard.NewDiscardLogger(), config.Site{Brand: "Debaren", SupportEmail: "support@debaren.com"}, f.deps)
	require.NoError(t, err)

	return s.Routes()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestPages(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		path           string
		expectedStatus int
		contains       []string
		excludes       []string
	}{
		{
			name:           "Home",
			path:           "/",
			expectedStatus: http.StatusOK,
			contains:       []string{"Find a place", "Hilltop Hall", "Rooftop Market", "Library Lounge", "Coding Camp", "TikTok"},
		},
		{
			name:           "All venues",
			path:           "/venues",
			expectedStatus: http.StatusOK,
			contains:       []string{"Hilltop Hall", "River Garden"},
		},
		{
			name:           "Venues by type",
			path:           "/venues/type/outdoor",
			expectedStatus: http.StatusOK,
			contains:       []string{"River Garden"},
			excludes:       []string{"Hilltop Hall"},
		},
		{
			name:           "Unknown venue type",
			path:           "/venues/type/castle",
			expectedStatus: http.StatusNotFound,
			contains:       []string{"Page not found"},
		},
		{
			name:           "Venue detail with booking form",
			path:           "/venues/1",
			expectedStatus: http.StatusOK,
			contains:       []string{"Hilltop Hall", `action="/venues/1/book"`},
		},
		{
			name:           "Unavailable venue hides the form",
			path:           "/venues/2",
			expectedStatus: http.StatusOK,
			contains:       []string{"not taking bookings"},
			excludes:       []string{`action="/venues/2/book"`},
		},
		{
			name:           "Booked notice",
			path:           "/venues/1?booked=1",
			expectedStatus: http.StatusOK,
			contains:       []string{"pending confirmation"},
		},
		{
			name:           "Missing venue",
			path:           "/venues/99",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Malformed venue id",
			path:           "/venues/abc",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "About fallback",
			path:           "/about",
			expectedStatus: http.StatusOK,
			contains:       []string{"About Debaren"},
		},
		{
			name:           "Contact sent notice",
			path:           "/contact?sent=1",
			expectedStatus: http.StatusOK,
			contains:       []string{"get back to you soon"},
		},
		{
			name:           "Privacy",
			path:           "/privacy",
			expectedStatus: http.StatusOK,
			contains:       []string{"Privacy Policy"},
		},
		{
			name:           "Unknown page",
			path:           "/nowhere",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Stylesheet",
			path:           "/static/site.css",
			expectedStatus: http.StatusOK,
		},
	}

	h := newFixture().handler(t)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := get(t, h, tc.path)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			for _, s := range tc.contains {
				assert.Contains(t, rr.Body.String(), s)
			}
			for _, s := range tc.excludes {
				assert.NotContains(t, rr.Body.String(), s)
			}
		})
	}
}

func TestHomeRendersSectionsThatLoaded(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.deps.WifiSpots = fakeList[models.WifiSpot]{err: errors.New("db is down")}
	f.deps.SchoolPrograms = fakeList[models.SchoolProgram]{err: errors.New("db is down")}

	rr := get(t, f.handler(t), "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Find a place")
	assert.Contains(t, body, "Hilltop Hall")
	assert.Contains(t, body, "Rooftop Market")
	assert.NotContains(t, body, "WiFi spots")
	assert.NotContains(t, body, "School programs")
	assert.NotContains(t, body, "Something went wrong")
}

func TestHomeWithoutHero(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.deps.Pages = fakePages{}

	rr := get(t, f.handler(t), "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), `class="hero"`)
}

func TestBook(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"customer_name":  {"Thandi"},
		"customer_email": {"thandi@example.com"},
		"start_date":     {"2031-03-01"},
		"end_date":       {"2031-03-02"},
	}

	t.Run("Redirects after success", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		rr := postForm(t, f.handler(t), "/venues/1/book", form)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/venues/1?booked=1", rr.Header().Get("Location"))
		require.Len(t, f.bookings.got, 1)
		assert.Equal(t, app.BookingRequest{
			VenueID:       1,
			CustomerName:  "Thandi",
			CustomerEmail: "thandi@example.com",
			StartDate:     "2031-03-01",
			EndDate:       "2031-03-02",
		}, f.bookings.got[0])
	})

	t.Run("Conflict keeps the form", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.bookings.err = fmt.Errorf("create booking: %w", storage.ErrDatesTaken)

		rr := postForm(t, f.handler(t), "/venues/1/book", form)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), storage.ErrDatesTaken.Error())
		assert.Contains(t, rr.Body.String(), `value="thandi@example.com"`)
	})

	t.Run("Bad date range", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.bookings.err = app.ErrInvalidDateRange

		rr := postForm(t, f.handler(t), "/venues/1/book", form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), app.ErrInvalidDateRange.Error())
	})

	t.Run("Unknown venue", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.bookings.err = storage.ErrVenueNotFound

		rr := postForm(t, f.handler(t), "/venues/99/book", form)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Store failure hides details", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.bookings.err = errors.New("connection reset")

		rr := postForm(t, f.handler(t), "/venues/1/book", form)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "connection reset")
		assert.Contains(t, rr.Body.String(), "could not submit your booking")
	})
}

func TestContact(t *testing.T) {
	t.Parallel()

	form := url.Values{"name": {"Sipho"}, "email": {"sipho@example.com"}, "message": {"Do you host weddings?"}}

	t.Run("Redirects after success", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		rr := postForm(t, f.handler(t), "/contact", form)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/contact?sent=1", rr.Header().Get("Location"))
		require.Len(t, f.contact.got, 1)
		assert.Equal(t, "Do you host weddings?", f.contact.got[0].Message)
	})

	t.Run("Rejected input is shown", func(t *testing.T) {
		t.Parallel()

		f := newFixture()
		f.contact.err = fmt.Errorf("%w: email looks wrong", app.ErrInvalidInput)

		rr := postForm(t, f.handler(t), "/contact", form)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "email looks wrong")
		assert.Contains(t, rr.Body.String(), "Do you host weddings?")
	})
}

func TestFuncs(t *testing.T) {
	t.Parallel()

	platform := funcs["platform"].(func(models.SocialPlatform) string)
	assert.Equal(t, "TikTok", platform(models.PlatformTikTok))
	assert.Equal(t, "LinkedIn", platform(models.PlatformLinkedIn))
	assert.Equal(t, "Instagram", platform(models.PlatformInstagram))

	price := funcs["price"].(func(*float64) string)
	p := 1500.5
	assert.Equal(t, "1500.50", price(&p))
	assert.Equal(t, "", price(nil))
}
