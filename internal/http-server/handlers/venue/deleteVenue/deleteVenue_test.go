package deleteVenue

import (
	"debaren/internal/http-server/handlers/venue/deleteVenue/mocks"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"debaren/internal/storage"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteVenueHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		venueID        string
		mockSetup      func(m *mocks.VenueDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			venueID: "3",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("Delete", mock.Anything, int64(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid ID",
			venueID:        "-3",
			mockSetup:      func(m *mocks.VenueDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid parameter: invalid id format"}`,
		},
		{
			name:    "Not found",
			venueID: "3",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("Delete", mock.Anything, int64(3)).Return(storage.ErrVenueNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"venue not found"}`,
		},
		{
			name:    "Storage failure",
			venueID: "3",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("Delete", mock.Anything, int64(3)).Return(errors.New("fk violation"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete venue"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewVenueDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.Delete("/api/admin/venues/{id}", New(logger, deleter))

			req := httptest.NewRequest(http.MethodDelete, "/api/admin/venues/"+tc.venueID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
