package musiccatalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"readingsoundtrack/internal/metrics"
)

const DefaultLimit = 10

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// Query holds the filters for GET /music/recommendations. Zero values are
// not sent, except Limit which falls back to DefaultLimit.
type Query struct {
	Genre     string
	Mood      string
	EnergyMax *float64
	Limit     int
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d - %s", e.StatusCode, e.Reason)
}

// Recommendations returns the raw response body of GET /music/recommendations.
func (c *Client) Recommendations(ctx context.Context, q Query) ([]byte, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if q.Genre != "" {
		params.Set("genre", q.Genre)
	}
	if q.Mood != "" {
		params.Set("mood", q.Mood)
	}
	if q.EnergyMax != nil {
		params.Set("energy_max", strconv.FormatFloat(*q.EnergyMax, 'f', -1, 64))
	}

	return c.get(ctx, "/music/recommendations", params)
}

// Track returns the raw response body of GET /tracks/{id}.
func (c *Client) Track(ctx context.Context, id string) ([]byte, error) {
	return c.get(ctx, "/tracks/"+url.PathEscape(id), nil)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (body []byte, err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream("music_catalog", start, err) }()

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Reason: reason(resp)}
	}

	return io.ReadAll(resp.Body)
}

// reason is the status line's reason phrase, e.g. "Service Unavailable".
func reason(resp *http.Response) string {
	if r := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))); r != "" {
		return r
	}
	return http.StatusText(resp.StatusCode)
}
