package book

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"readingsoundtrack/internal/apperr"
	"readingsoundtrack/internal/logging"
	"readingsoundtrack/internal/platform/bookcatalog"
)

// ErrNotFound is the cause carried by not-found lookups.
var ErrNotFound = errors.New("book not found")

// Service provides book lookups against the external catalog.
type Service struct {
	catalog Catalog
}

// NewService creates a new book service.
func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// List returns the normalized books matching f. An empty result is not an error.
func (s *Service) List(ctx context.Context, f Filters) ([]Book, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}

	records, err := s.catalog.ListBooks(ctx, bookcatalog.ListParams{
		Search:   f.Search,
		Genre:    f.Genre,
		TopRated: f.TopRated,
		Page:     page,
	})
	if err != nil {
		return nil, catalogError(ctx, "book.List", "list", err)
	}

	books := make([]Book, 0, len(records))
	for _, rec := range records {
		if b := Normalize(rec); b != nil {
			books = append(books, *b)
		}
	}
	return books, nil
}

// GetByID returns the normalized book, or nil when the catalog has no record.
func (s *Service) GetByID(ctx context.Context, id string) (*Book, error) {
	rec, err := s.catalog.GetBook(ctx, id)
	if err != nil {
		return nil, catalogError(ctx, "book.GetByID", "ID "+id, err)
	}
	return Normalize(rec), nil
}

// GetByTitle searches the catalog for title and resolves the first
// case-insensitive exact match to its full record. A match without an id
// is returned as normalized from the search result.
func (s *Service) GetByTitle(ctx context.Context, title string) (*Book, error) {
	logging.Ctx(ctx).Debug().Str("title", title).Msg("searching book by title")

	records, err := s.catalog.ListBooks(ctx, bookcatalog.ListParams{Search: title})
	if err != nil {
		return nil, catalogError(ctx, "book.GetByTitle", fmt.Sprintf("Title %q", title), err)
	}

	var match *bookcatalog.Record
	for _, rec := range records {
		if rec != nil && strings.EqualFold(rec.Title, title) {
			match = rec
			break
		}
	}
	if match == nil {
		return nil, NotFoundByTitle(title)
	}

	partial := Normalize(match)
	if !hasID(match.ID) {
		logging.Ctx(ctx).Warn().Str("title", title).Msg("book found without id, returning search record")
		return partial, nil
	}

	logging.Ctx(ctx).Debug().Str("title", title).Str("book_id", partial.ID).Msg("book found, fetching details")
	return s.GetByID(ctx, partial.ID)
}

// hasID reports whether a search record carries a usable id. A numeric 0
// counts as missing; the string "0" does not.
func hasID(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("0")) {
		return false
	}
	s, ok := scalar(raw)
	return ok && s != ""
}

// NotFoundByID is the error callers return when GetByID yields nil.
func NotFoundByID(id string) error {
	return apperr.Wrap(apperr.KindNotFound, "book.GetByID", fmt.Sprintf("book with ID %s not found", id), ErrNotFound)
}

// NotFoundByTitle is the error returned when no exact title match exists.
func NotFoundByTitle(title string) error {
	return apperr.Wrap(apperr.KindNotFound, "book.GetByTitle", fmt.Sprintf("book with title %q not found", title), ErrNotFound)
}

// catalogError wraps a catalog failure once, embedding the lookup context
// and the catalog's own message when it sent one.
func catalogError(ctx context.Context, op, lookup string, err error) error {
	logging.Ctx(ctx).Error().Err(err).Str("lookup", lookup).Msg("book catalog request failed")

	msg := fmt.Sprintf("book catalog request failed (%s)", lookup)
	if upstream := bookcatalog.UpstreamMessage(err); upstream != "" {
		msg += ": " + upstream
	}

	var se *bookcatalog.StatusError
	var ue *url.Error
	switch {
	case errors.As(err, &se):
		return apperr.Wrap(apperr.KindUpstream, op, msg, err)
	case errors.As(err, &ue):
		return apperr.Wrap(apperr.KindUpstreamUnavailable, op, msg, err)
	default:
		return apperr.Wrap(apperr.KindInternal, op, msg, err)
	}
}
