// Package geocode proxies free-text place lookups to a Nominatim compatible
// search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrEmptyQuery = errors.New("missing query")

// Cache stores raw geocoder responses keyed by query.
type Cache interface {
	GetGeocode(ctx context.Context, query string) ([]byte, bool, error)
	StoreGeocode(ctx context.Context, query string, body []byte, ttl time.Duration) error
}

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
}

type Client struct {
	config     Config
	httpClient *http.Client
	cache      Cache
}

// NewClient builds a client. cache may be nil.
func NewClient(cfg Config, cache Cache) *Client {
	return &Client{
		config:     cfg,
		httpClient: &http.Client{},
		cache:      cache,
	}
}

// Search returns the geocoder's JSON array for query unchanged. The upstream
// call is bounded by the configured timeout regardless of ctx.
func (c *Client) Search(ctx context.Context, query string) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if c.cache != nil {
		if body, ok, err := c.cache.GetGeocode(ctx, query); err != nil {
			log.Printf("Geocode cache lookup failed: %v", err)
		} else if ok {
			return body, nil
		}
	}

	body, err := c.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.StoreGeocode(ctx, query, body, c.config.CacheTTL); err != nil {
			log.Printf("Geocode cache store failed: %v", err)
		}
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, query string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("User-Agent", c.config.UserAgent)
	request.Header.Set("Accept", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("geocoder returned status %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("geocoder returned invalid JSON")
	}
	return body, nil
}
