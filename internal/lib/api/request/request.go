// Package request holds helpers for reading path and query parameters.
package request

import (
	"errors"
	"fmt"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var ErrBadParam = errors.New("invalid parameter")

// ID reads a positive integer path parameter.
func ID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrBadParam, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s format", ErrBadParam, name)
	}

	return id, nil
}

// Float reads an optional finite float query parameter, returning def when absent.
func Float(r *http.Request, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a number", ErrBadParam, name)
	}

	return v, nil
}

// Form parses a multipart or urlencoded body of at most maxBytes. Urlencoded
// bodies come back as a form without files.
func Form(w http.ResponseWriter, r *http.Request, maxBytes int64) (*multipart.Form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	err := r.ParseMultipartForm(maxBytes)
	if errors.Is(err, http.ErrNotMultipart) {
		if err = r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: malformed form body", ErrBadParam)
		}
		return &multipart.Form{Value: r.PostForm}, nil
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: upload exceeds %d bytes", ErrBadParam, maxBytes)
		}
		return nil, fmt.Errorf("%w: malformed multipart body", ErrBadParam)
	}

	return r.MultipartForm, nil
}
