package bookcatalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"readingsoundtrack/internal/metrics"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a book catalog client. rps <= 0 disables outbound pacing.
func NewClient(baseURL, apiKey string, timeout time.Duration, rps float64) *Client {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(limit, int(math.Max(1, math.Ceil(rps)))),
	}
}

// Record is a raw book as the catalog returns it. Scalar fields that the
// catalog sends as either strings or numbers are kept raw.
type Record struct {
	ID          json.RawMessage `json:"id"`
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Genre       string          `json:"genre"`
	Language    string          `json:"language"`
	PubYear     json.RawMessage `json:"pub_year"`
	AgeCategory string          `json:"age_category"`
	Rating      json.RawMessage `json:"rating"`
	Tags        json.RawMessage `json:"tags"`
	Description string          `json:"description"`
	PageCount   json.RawMessage `json:"page_count"`
}

// ListParams are forwarded as query parameters to GET /books.
type ListParams struct {
	Search   string
	Genre    string
	TopRated *bool
	Page     int
}

type listResponse struct {
	Data []*Record `json:"data"`
}

type detailResponse struct {
	Data *Record `json:"data"`
}

// StatusError is returned for non-2xx responses. Message carries the
// catalog's own "message" field when the body had one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("book catalog status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("book catalog status %d", e.StatusCode)
}

// ListBooks calls GET /books.
func (c *Client) ListBooks(ctx context.Context, p ListParams) ([]*Record, error) {
	q := url.Values{}
	q.Set("search", p.Search)
	if p.Genre != "" {
		q.Set("genre", p.Genre)
	}
	if p.TopRated != nil {
		q.Set("top_rated", strconv.FormatBool(*p.TopRated))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}

	var res listResponse
	if err := c.get(ctx, "/books", q, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetBook calls GET /books/{id}. A null data field yields a nil record.
func (c *Client) GetBook(ctx context.Context, id string) (*Record, error) {
	var res detailResponse
	if err := c.get(ctx, "/books/"+url.PathEscape(id), url.Values{}, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, target interface{}) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveUpstream("book_catalog", start, err) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	q.Set("apiKey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Message: upstreamMessage(resp.Body)}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

func upstreamMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// UpstreamMessage returns the catalog-provided message carried by err, if any.
func UpstreamMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
