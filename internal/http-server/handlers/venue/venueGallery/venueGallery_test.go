package venueGallery

import (
	"bytes"
	"debaren/internal/app"
	"debaren/internal/http-server/handlers/venue/venueGallery/mocks"
	"debaren/internal/lib/logger/handlers/slogdiscard"
	"debaren/internal/models"
	"debaren/internal/storage"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(editor GalleryEditor) http.Handler {
	logger := slogdiscard.NewDiscardLogger()

	router := chi.NewRouter()
	router.Post("/venues/{id}/gallery", NewAdd(logger, editor, 1<<20))
	router.Delete("/venues/{id}/gallery/{imageID}", NewRemove(logger, editor))
	router.Put("/venues/{id}/gallery/order", NewReorder(logger, editor))

	return router
}

func TestAddGalleryHandler(t *testing.T) {
	t.Parallel()

	upload := func(t *testing.T, field string, n int, caption string) (*bytes.Buffer, string) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		for i := 0; i < n; i++ {
			fw, err := mw.CreateFormFile(field, fmt.Sprintf("%d.jpg", i))
			require.NoError(t, err)
			_, _ = fw.Write([]byte{0xFF, 0xD8, 0xFF})
		}
		if caption != "" {
			require.NoError(t, mw.WriteField(app.FieldCaption, caption))
		}
		require.NoError(t, mw.Close())
		return &body, mw.FormDataContentType()
	}

	testCases := []struct {
		name           string
		field          string
		files          int
		mockSetup      func(m *mocks.GalleryEditor)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "Success",
			field: app.FieldGalleryUpload,
			files: 2,
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("AddGallery", mock.Anything, int64(5), mock.MatchedBy(func(f []*multipart.FileHeader) bool { return len(f) == 2 }), "Main room").
					Return([]models.GalleryImage{{ID: 1, Image: "/media/a.jpg", Caption: "Main room", Order: 0}, {ID: 2, Image: "/media/b.jpg", Caption: "Main room", Order: 1}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","images":[{"id":1,"image":"/media/a.jpg","caption":"Main room","order":0},` +
				`{"id":2,"image":"/media/b.jpg","caption":"Main room","order":1}]}`,
		},
		{
			name:  "Gallery field name",
			field: app.FieldGallery,
			files: 1,
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("AddGallery", mock.Anything, int64(5), mock.MatchedBy(func(f []*multipart.FileHeader) bool { return len(f) == 1 }), "Main room").
					Return([]models.GalleryImage{{ID: 3, Image: "/media/c.jpg"}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","images":[{"id":3,"image":"/media/c.jpg","caption":"","order":0}]}`,
		},
		{
			name:  "Venue not found",
			field: app.FieldGalleryUpload,
			files: 1,
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("AddGallery", mock.Anything, int64(5), mock.Anything, "Main room").Return(nil, storage.ErrVenueNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"venue not found"}`,
		},
		{
			name:  "No files",
			field: app.FieldGalleryUpload,
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("AddGallery", mock.Anything, int64(5), mock.Anything, "Main room").
					Return(nil, fmt.Errorf("%w: no gallery images uploaded", app.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid input: no gallery images uploaded"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			editor := mocks.NewGalleryEditor(t)
			tc.mockSetup(editor)

			body, ct := upload(t, tc.field, tc.files, "Main room")
			req := httptest.NewRequest(http.MethodPost, "/venues/5/gallery", body)
			req.Header.Set("Content-Type", ct)
			rr := httptest.NewRecorder()

			newRouter(editor).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestRemoveGalleryImageHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		path           string
		mockSetup      func(m *mocks.GalleryEditor)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			path: "/venues/5/gallery/9",
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("RemoveGalleryImage", mock.Anything, int64(5), int64(9)).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid image ID",
			path:           "/venues/5/gallery/x",
			mockSetup:      func(m *mocks.GalleryEditor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid parameter: invalid imageID format"}`,
		},
		{
			name: "Image of another venue",
			path: "/venues/5/gallery/9",
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("RemoveGalleryImage", mock.Anything, int64(5), int64(9)).Return(storage.ErrImageNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"gallery image not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			editor := mocks.NewGalleryEditor(t)
			tc.mockSetup(editor)

			req := httptest.NewRequest(http.MethodDelete, tc.path, nil)
			rr := httptest.NewRecorder()

			newRouter(editor).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestReorderGalleryHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		body           string
		mockSetup      func(m *mocks.GalleryEditor)
		expectedStatus int
		expectedBody   string
		contains       string
	}{
		{
			name: "Success",
			body: `{"image_ids":[3,1,2]}`,
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("ReorderGallery", mock.Anything, int64(5), []int64{3, 1, 2}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Invalid JSON",
			body:           `[3,1`,
			mockSetup:      func(m *mocks.GalleryEditor) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Empty list",
			body:           `{"image_ids":[]}`,
			mockSetup:      func(m *mocks.GalleryEditor) {},
			expectedStatus: http.StatusBadRequest,
			contains:       "ImageIDs",
		},
		{
			name: "Unknown image",
			body: `{"image_ids":[3,99]}`,
			mockSetup: func(m *mocks.GalleryEditor) {
				m.On("ReorderGallery", mock.Anything, int64(5), []int64{3, 99}).Return(storage.ErrImageNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"gallery image not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			editor := mocks.NewGalleryEditor(t)
			tc.mockSetup(editor)

			req := httptest.NewRequest(http.MethodPut, "/venues/5/gallery/order", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			newRouter(editor).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.contains != "" {
				assert.Contains(t, rr.Body.String(), tc.contains)
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
