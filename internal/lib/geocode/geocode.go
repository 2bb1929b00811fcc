// Package geocode resolves free-text addresses to coordinates through a
// Nominatim compatible search API.
package geocode

import (
	"context"
	"debaren/internal/config"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

var ErrNoResults = errors.New("address not found")

type Point struct {
	Lat float64
	Lng float64
}

type Client struct {
	baseURL        string
	userAgent      string
	acceptLanguage string
	http           *http.Client
}

func New(cfg config.Geocoder) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		http:           &http.Client{Timeout: cfg.Timeout},
	}
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the first match for address, rounded to 6 decimal places.
func (c *Client) Geocode(ctx context.Context, address string) (Point, error) {
	const op = "geocode.Geocode"

	address = strings.TrimSpace(address)
	if address == "" {
		return Point{}, fmt.Errorf("%s: %w", op, ErrNoResults)
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("q", address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return Point{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Point{}, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return Point{}, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if len(places) == 0 {
		return Point{}, fmt.Errorf("%s: %q: %w", op, address, ErrNoResults)
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("%s: parse lat: %w", op, err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("%s: parse lon: %w", op, err)
	}

	return Point{Lat: Round6(lat), Lng: Round6(lng)}, nil
}

func Round6(f float64) float64 {
	return math.Round(f*1e6) / 1e6
}
