package router

import (
	"context"
	"debaren/internal/config"
	"debaren/internal/lib/auth"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"debaren/internal/models"
	"debaren/internal/storage"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVenues struct {
	nearbyCalls int
}

func (f *fakeVenues) ListVenues(context.Context, models.VenueType) ([]models.Venue, error) {
	return []models.Venue{{ID: 1, Name: "Hilltop Hall"}}, nil
}

func (f *fakeVenues) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	return nil, storage.ErrVenueNotFound
}

func (f *fakeVenues) Nearby(context.Context, float64, float64, float64) ([]models.Nearby[models.Venue], error) {
	f.nearbyCalls++
	return []models.Nearby[models.Venue]{{Item: models.Venue{ID: 1, Name: "Hilltop Hall"}, DistanceKm: 1.5}}, nil
}

type fakeStats struct{}

func (fakeStats) Stats(context.Context) (*models.Stats, error) {
	return &models.Stats{Content: map[string]int{"venues": 3}}, nil
}

func newRouter(t *testing.T) (http.Handler, *fakeVenues, string) {
	t.Helper()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	manager := auth.New(config.Admin{
		Username:     "admin",
		PasswordHash: hash,
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
	})
	token, _, err := manager.Issue("admin")
	require.NoError(t, err)

	venues := &fakeVenues{}
	h := New(slogdiscard.NewDiscardLogger(), Options{
		Brand:          "Debaren",
		CORSOrigins:    []string{"https://admin.debaren.com"},
		MaxUploadBytes: 1 << 20,
		MediaPath:      "/media",
	}, Deps{
		Venues: venues,
		Auth:   manager,
		Stats:  fakeStats{},
		Media: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("media:" + r.URL.Path))
		}),
		Site: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("site:" + r.URL.Path))
		}),
	})

	return h, venues, token
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	h, venues, token := newRouter(t)

	testCases := []struct {
		name           string
		method         string
		path           string
		body           string
		token          string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Public venue list",
			method:         http.MethodGet,
			path:           "/api/venues",
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Hilltop Hall"`,
		},
		{
			name:           "Nearby is not a venue id",
			method:         http.MethodGet,
			path:           "/api/venues/nearby?lat=-29.85&lng=31.02",
			expectedStatus: http.StatusOK,
			expectedBody:   `"distance_km":1.5`,
		},
		{
			name:           "Unknown venue",
			method:         http.MethodGet,
			path:           "/api/venues/42",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Admin route without token",
			method:         http.MethodGet,
			path:           "/api/admin/stats",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"missing token"`,
		},
		{
			name:           "Admin route with bad token",
			method:         http.MethodGet,
			path:           "/api/admin/stats",
			token:          "not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"invalid token"`,
		},
		{
			name:           "Admin route with token",
			method:         http.MethodGet,
			path:           "/api/admin/stats",
			token:          token,
			expectedStatus: http.StatusOK,
			expectedBody:   `"venues":3`,
		},
		{
			name:           "Login is public",
			method:         http.MethodPost,
			path:           "/api/admin/login",
			body:           `{"username":"admin","password":"s3cret"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"`,
		},
		{
			name:           "Login with wrong password",
			method:         http.MethodPost,
			path:           "/api/admin/login",
			body:           `{"username":"admin","password":"nope"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Dashboard requires token",
			method:         http.MethodGet,
			path:           "/admin/dashboard",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Media files",
			method:         http.MethodGet,
			path:           "/media/venues/a.jpg",
			expectedStatus: http.StatusOK,
			expectedBody:   "media:/media/venues/a.jpg",
		},
		{
			name:           "Everything else goes to the site",
			method:         http.MethodGet,
			path:           "/venues/1",
			expectedStatus: http.StatusOK,
			expectedBody:   "site:/venues/1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}

	assert.Equal(t, 1, venues.nearbyCalls)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	h, _, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/venues", nil)
	req.Header.Set("Origin", "https://admin.debaren.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "https://admin.debaren.com", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/venues", nil)
	req.Header.Set("Origin", "https://elsewhere.example")

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
