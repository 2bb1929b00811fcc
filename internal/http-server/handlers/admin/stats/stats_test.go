package stats

import (
	"debaren/internal/http-server/handlers/admin/stats/mocks"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"debaren/internal/models"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		provider := mocks.NewStatsProvider(t)
		provider.On("Stats", mock.Anything).Return(&models.Stats{
			Content:      map[string]int{"venues": 3, "bookings": 2},
			Bookings:     map[models.BookingStatus]int{models.BookingPending: 2},
			VenuesByType: map[models.VenueType]int{models.VenueHall: 3},
		}, nil)

		rr := httptest.NewRecorder()
		New(logger, provider).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK","stats":{"content":{"venues":3,"bookings":2},"bookings":{"pending":2},"venues_by_type":{"hall":3}}}`, rr.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		t.Parallel()

		provider := mocks.NewStatsProvider(t)
		provider.On("Stats", mock.Anything).Return(nil, errors.New("boom"))

		rr := httptest.NewRecorder()
		New(logger, provider).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get stats"}`, rr.Body.String())
	})
}
