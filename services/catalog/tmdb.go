// TMDB client for the movie-metadata collaborator.
//
// Response types follow https://developer.themoviedb.org/reference; only the
// fields the browse screens consume are decoded.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"streamify/models"
)

// Client is a typed HTTP client for the metadata collaborator. The API key is
// sent as a query parameter on every request, exactly as the browser client
// did.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a metadata client. The timeout is a defensive addition
// the upstream browser code never had; zero falls back to 10s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metadata request %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode metadata response: %w", err)
	}
	return nil
}

type listResponse struct {
	Results []models.Movie `json:"results"`
}

type creditsResponse struct {
	Cast []models.CastMember `json:"cast"`
}

// MovieList fetches one title list (trending, popular, discover-by-genre...).
func (c *Client) MovieList(ctx context.Context, path string, params url.Values) ([]models.Movie, error) {
	var resp listResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// MovieDetail fetches a single title with its credits appended.
func (c *Client) MovieDetail(ctx context.Context, id int64) (*models.MovieDetail, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("append_to_response", "credits")

	var detail struct {
		models.Movie
		Genres  []models.Genre  `json:"genres"`
		Runtime int             `json:"runtime"`
		Tagline string          `json:"tagline"`
		Credits creditsResponse `json:"credits"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", id), params, &detail); err != nil {
		return nil, err
	}
	return &models.MovieDetail{
		Movie:   detail.Movie,
		Genres:  detail.Genres,
		Runtime: detail.Runtime,
		Tagline: detail.Tagline,
		Cast:    detail.Credits.Cast,
	}, nil
}

// Similar fetches the similar-titles row for a movie.
func (c *Client) Similar(ctx context.Context, id int64) ([]models.Movie, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("page", "1")
	return c.MovieList(ctx, fmt.Sprintf("/movie/%d/similar", id), params)
}

// Search runs a free-text title search.
func (c *Client) Search(ctx context.Context, query string) ([]models.Movie, error) {
	params := url.Values{}
	params.Set("language", "en-US")
	params.Set("query", query)
	params.Set("page", "1")
	return c.MovieList(ctx, "/search/movie", params)
}
