package music

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"

	"readingsoundtrack/internal/apperr"
	"readingsoundtrack/internal/logging"
	"readingsoundtrack/internal/platform/musiccatalog"
)

var errNoData = errors.New("no data received from music catalog")

// Service searches the external music catalog.
type Service struct {
	catalog Catalog
}

func NewService(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Search returns the tracks matching p. The catalog may answer with
// {data: [...]}, {tracks: [...]}, a bare list or a single object; the
// result is always a list.
func (s *Service) Search(ctx context.Context, p SearchParams) ([]Track, error) {
	const op = "music.Search"

	logging.Ctx(ctx).Debug().
		Str("genre", p.Genre).
		Str("mood", p.Mood).
		Interface("energy_max", p.EnergyMax).
		Int("limit", p.Limit).
		Msg("searching music")

	body, err := s.catalog.Recommendations(ctx, musiccatalog.Query{
		Genre:     p.Genre,
		Mood:      p.Mood,
		EnergyMax: p.EnergyMax,
		Limit:     p.Limit,
	})
	if err != nil {
		return nil, searchError(op, err)
	}

	payload, err := decode(body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, op, fmt.Sprintf("error searching music: %v", err), err)
	}

	return tracks(ctx, unwrap(payload, "data", "tracks")), nil
}

// GetTrack fetches one track by id.
func (s *Service) GetTrack(ctx context.Context, id string) (Track, error) {
	const op = "music.GetTrack"

	body, err := s.catalog.Track(ctx, id)
	if err != nil {
		var se *musiccatalog.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, apperr.Wrap(apperr.KindNotFound, op, fmt.Sprintf("track with ID %s not found", id), err)
		}
		return nil, apperr.Wrap(kindOf(err), op, fmt.Sprintf("error fetching track: %v", err), err)
	}

	payload, err := decode(body)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, op, fmt.Sprintf("error fetching track: %v", err), err)
	}

	track, ok := unwrap(payload, "data").(map[string]any)
	if !ok {
		return nil, apperr.New(apperr.KindInternal, op, "error fetching track: unexpected payload")
	}
	return track, nil
}

func searchError(op string, err error) error {
	var se *musiccatalog.StatusError
	if errors.As(err, &se) {
		return apperr.Wrap(apperr.KindUpstream, op, fmt.Sprintf("music catalog error: %d - %s", se.StatusCode, se.Reason), err)
	}

	switch kind := kindOf(err); kind {
	case apperr.KindUpstreamUnavailable:
		return apperr.Wrap(kind, op, "music catalog is unavailable, check that the service is running", err)
	default:
		return apperr.Wrap(kind, op, fmt.Sprintf("error searching music: %v", err), err)
	}
}

// kindOf classifies a catalog client error: an HTTP status is Upstream,
// a failed round trip (refused, timed out) is UpstreamUnavailable.
func kindOf(err error) apperr.Kind {
	var se *musiccatalog.StatusError
	var ue *url.Error
	switch {
	case errors.As(err, &se):
		return apperr.KindUpstream
	case errors.As(err, &ue):
		return apperr.KindUpstreamUnavailable
	default:
		return apperr.KindInternal
	}
}

func decode(body []byte) (any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errNoData
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errNoData
	}
	return v, nil
}

// unwrap returns the first non-null value among keys of an object payload,
// or the payload itself.
func unwrap(payload any, keys ...string) any {
	obj, ok := payload.(map[string]any)
	if !ok {
		return payload
	}
	for _, k := range keys {
		if v, ok := obj[k]; ok && v != nil {
			return v
		}
	}
	return payload
}

func tracks(ctx context.Context, v any) []Track {
	items, ok := v.([]any)
	if !ok {
		logging.Ctx(ctx).Warn().Msg("music catalog did not return a list, wrapping response")
		items = []any{v}
	}

	out := make([]Track, 0, len(items))
	for _, item := range items {
		t, ok := item.(map[string]any)
		if !ok {
			logging.Ctx(ctx).Warn().Interface("item", item).Msg("skipping non-object track")
			continue
		}
		out = append(out, t)
	}
	return out
}
