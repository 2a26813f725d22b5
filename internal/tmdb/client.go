package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config carries the external service endpoints and credentials. It is
// built from application configuration at startup; the client keeps no
// ambient global state.
type Config struct {
	BaseURL      string // e.g. https://api.themoviedb.org/3
	ImageBaseURL string // e.g. https://www.themoviedb.org/t/p/original
	APIKey       string
}

// Client talks to the TMDB HTTP API. It performs no retries and no
// response caching; a single request timeout bounds hung upstreams.
type Client struct {
	cfg    Config
	client *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchResult is one candidate from the search endpoint, passed through
// as provided by the service.
type SearchResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// MovieDetails is the detail response reduced to the fields the library
// stores. Year keeps only the year portion of the service's release date.
type MovieDetails struct {
	Title       string
	Year        int
	Description string
	ImgURL      string
}

// Search queries the search endpoint with the given free-text title.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("api_key", c.cfg.APIKey)

	var payload struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.get(ctx, "/search/movie", q, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Details fetches the detail endpoint for one external id and maps the
// response into stored-movie fields, synthesizing the poster URL from the
// configured image host prefix.
func (c *Client) Details(ctx context.Context, externalID int64) (*MovieDetails, error) {
	q := url.Values{}
	q.Set("api_key", c.cfg.APIKey)

	var payload struct {
		Title       string `json:"title"`
		ReleaseDate string `json:"release_date"`
		Overview    string `json:"overview"`
		PosterPath  string `json:"poster_path"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", externalID), q, &payload); err != nil {
		return nil, err
	}

	return &MovieDetails{
		Title:       payload.Title,
		Year:        yearOf(payload.ReleaseDate),
		Description: payload.Overview,
		ImgURL:      c.cfg.ImageBaseURL + payload.PosterPath,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("tmdb: request: %w", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: status %d for %s: %s", resp.StatusCode, path, string(body))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("tmdb: decode: %w", err)
	}
	return nil
}

// yearOf extracts the year from a YYYY-MM-DD release date. Missing or
// malformed dates yield 0 rather than an error; some catalog entries have
// no release date at all.
func yearOf(releaseDate string) int {
	head, _, _ := strings.Cut(releaseDate, "-")
	y, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return y
}
