package hero

import (
	"debaren/internal/http-server/handlers/page/hero/mocks"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"debaren/internal/models"
	"debaren/internal/storage"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHeroHandlers(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	verr := validator.New().Struct(models.HeroSection{})
	require.Error(t, verr)

	testCases := []struct {
		name           string
		method         string
		body           string
		mockSetup      func(m *mocks.HeroPage)
		expectedStatus int
		contains       string
		expectedBody   string
	}{
		{
			name:   "Get with defaults",
			method: http.MethodGet,
			mockSetup: func(m *mocks.HeroPage) {
				m.On("Hero", mock.Anything).Return(&models.HeroSection{
					Title: "Find your venue", Subtitle: "Across KZN", CTAText: models.DefaultCTAText, CTAURL: models.DefaultCTAURL,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       `"cta_text":"Explore Venues","cta_url":"/venues"`,
		},
		{
			name:   "Get not set",
			method: http.MethodGet,
			mockSetup: func(m *mocks.HeroPage) {
				m.On("Hero", mock.Anything).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"hero section is not set"}`,
		},
		{
			name:   "Save",
			method: http.MethodPut,
			body:   `{"title":"Find your venue","subtitle":"Across KZN"}`,
			mockSetup: func(m *mocks.HeroPage) {
				m.On("SaveHero", mock.Anything, &models.HeroSection{Title: "Find your venue", Subtitle: "Across KZN"}).
					Return(&models.HeroSection{Title: "Find your venue", Subtitle: "Across KZN", CTAText: models.DefaultCTAText, CTAURL: models.DefaultCTAURL}, nil)
			},
			expectedStatus: http.StatusOK,
			contains:       `"cta_url":"/venues"`,
		},
		{
			name:           "Save bad JSON",
			method:         http.MethodPut,
			body:           `[]`,
			mockSetup:      func(m *mocks.HeroPage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:   "Save invalid",
			method: http.MethodPut,
			body:   `{}`,
			mockSetup: func(m *mocks.HeroPage) {
				m.On("SaveHero", mock.Anything, mock.Anything).Return(nil, verr)
			},
			expectedStatus: http.StatusBadRequest,
			contains:       "field Title is a required field",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			page := mocks.NewHeroPage(t)
			tc.mockSetup(page)

			router := chi.NewRouter()
			router.Get("/hero", NewGet(logger, page))
			router.Put("/hero", NewSave(logger, page))

			req := httptest.NewRequest(tc.method, "/hero", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			if tc.contains != "" {
				assert.Contains(t, rr.Body.String(), tc.contains)
			}
		})
	}
}
