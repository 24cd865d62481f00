package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Waddenn/streamflix/internal/appinfo"
	"github.com/Waddenn/streamflix/internal/config"
)

var (
	// ErrTransport covers network failures and unusable responses before decoding.
	ErrTransport = errors.New("catalog transport error")
	// ErrMalformed covers undecodable bodies, non-2xx statuses and success:false.
	ErrMalformed = errors.New("catalog malformed response")
	// ErrNotFound is a valid request with empty or absent data.
	ErrNotFound = errors.New("catalog item not found")
)

// Fetcher is the read-only surface the UI consumes.
type Fetcher interface {
	Trending(ctx context.Context) ([]Item, error)
	Popular(ctx context.Context) ([]Item, error)
	TopRated(ctx context.Context) ([]Item, error)
	Upcoming(ctx context.Context) ([]Item, error)
	Genres(ctx context.Context) ([]Genre, error)
	Movie(ctx context.Context, id int) (*Detail, error)
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

func NewClient(cfg config.API, logger zerolog.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  appinfo.Default().UserAgent,
		logger:     logger.With().Str("component", "catalog").Logger(),
	}
}

type listEnvelope struct {
	Success bool   `json:"success"`
	Results []Item `json:"results"`
}

type genreEnvelope struct {
	Success bool    `json:"success"`
	Genres  []Genre `json:"genres"`
}

type detailEnvelope struct {
	Success bool           `json:"success"`
	Data    *detailPayload `json:"data"`
}

type detailPayload struct {
	Detail
	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`
	Similar struct {
		Results []Item `json:"results"`
	} `json:"similar"`
}

func (c *Client) Trending(ctx context.Context) ([]Item, error) {
	params := url.Values{}
	params.Set("mediaType", "movie")
	params.Set("timeWindow", "week")
	return c.getList(ctx, "/movies/trending", params)
}

func (c *Client) Popular(ctx context.Context) ([]Item, error) {
	return c.getList(ctx, "/movies/popular", nil)
}

func (c *Client) TopRated(ctx context.Context) ([]Item, error) {
	return c.getList(ctx, "/movies/top-rated", nil)
}

func (c *Client) Upcoming(ctx context.Context) ([]Item, error) {
	return c.getList(ctx, "/movies/upcoming", nil)
}

func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var env genreEnvelope
	if err := c.getJSON(ctx, "/movies/genres", nil, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: genres reported success=false", ErrMalformed)
	}
	return env.Genres, nil
}

// Movie fetches the detail bundle with credits, videos and similar titles in one call.
func (c *Client) Movie(ctx context.Context, id int) (*Detail, error) {
	params := url.Values{}
	params.Set("append", "credits,videos,similar")

	var env detailEnvelope
	if err := c.getJSON(ctx, "/movies/"+strconv.Itoa(id), params, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: movie %d reported success=false", ErrMalformed, id)
	}
	if env.Data == nil || env.Data.ID == 0 {
		return nil, fmt.Errorf("%w: movie %d", ErrNotFound, id)
	}

	d := env.Data.Detail
	d.Videos = env.Data.Videos.Results
	d.Similar = env.Data.Similar.Results

	c.logger.Debug().
		Int("id", id).
		Str("title", d.DisplayTitle()).
		Int("videos", len(d.Videos)).
		Int("similar", len(d.Similar)).
		Msg("Got movie details")

	return &d, nil
}

func (c *Client) getList(ctx context.Context, path string, params url.Values) ([]Item, error) {
	var env listEnvelope
	if err := c.getJSON(ctx, path, params, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: %s reported success=false", ErrMalformed, path)
	}
	return env.Results, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, target interface{}) error {
	reqURL := c.BaseURL + path
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", reqURL, params.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Str("request_id", reqID).Msg("HTTP request failed")
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("path", path).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("HTTP request completed")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s status %d", ErrMalformed, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %v", ErrMalformed, path, err)
	}
	return nil
}
