// Package soundtrack turns a book into a list of music recommendations:
// resolve the book, derive its music profile, then search the music catalog.
package soundtrack

import (
	"context"
	"strings"

	"readingsoundtrack/internal/apperr"
	"readingsoundtrack/internal/book"
	"readingsoundtrack/internal/logging"
	"readingsoundtrack/internal/metrics"
	"readingsoundtrack/internal/mood"
	"readingsoundtrack/internal/music"
)

// RecommendationLimit is the number of tracks requested per recommendation.
const RecommendationLimit = 10

// energyHeadroom is added to the profile energy to form the search ceiling.
const energyHeadroom = 2

type BookResolver interface {
	GetByID(ctx context.Context, id string) (*book.Book, error)
	GetByTitle(ctx context.Context, title string) (*book.Book, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, b book.Book) mood.Profile
	TestConnection(ctx context.Context) bool
}

type MusicSearcher interface {
	Search(ctx context.Context, p music.SearchParams) ([]music.Track, error)
}

// Recommendation is the result of one pipeline run.
type Recommendation struct {
	Book            *book.Book    `json:"book"`
	MusicProfile    mood.Profile  `json:"musicProfile"`
	Recommendations []music.Track `json:"recommendations"`
}

type stage string

const (
	stageBookResolved    stage = "book_resolved"
	stageProfileComputed stage = "profile_computed"
	stageTracksFetched   stage = "tracks_fetched"
	stageDone            stage = "done"
)

type Orchestrator struct {
	books    BookResolver
	analyzer Analyzer
	music    MusicSearcher
}

func NewOrchestrator(books BookResolver, analyzer Analyzer, music MusicSearcher) *Orchestrator {
	return &Orchestrator{books: books, analyzer: analyzer, music: music}
}

// Recommend runs the pipeline for the book with the given catalog id.
func (o *Orchestrator) Recommend(ctx context.Context, bookID string) (*Recommendation, error) {
	const op = "soundtrack.Recommend"

	if strings.TrimSpace(bookID) == "" {
		return nil, o.fail("id", apperr.New(apperr.KindValidation, op, "Book ID is required"))
	}

	b, err := o.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, o.fail("id", err)
	}
	if b == nil {
		return nil, o.fail("id", book.NotFoundByID(bookID))
	}

	return o.run(ctx, "id", b)
}

// RecommendByTitle runs the pipeline for the book whose title matches exactly.
func (o *Orchestrator) RecommendByTitle(ctx context.Context, title string) (*Recommendation, error) {
	const op = "soundtrack.RecommendByTitle"

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, o.fail("title", apperr.New(apperr.KindValidation, op, "Title parameter is required"))
	}

	b, err := o.books.GetByTitle(ctx, title)
	if err != nil {
		return nil, o.fail("title", err)
	}
	if b == nil {
		return nil, o.fail("title", book.NotFoundByTitle(title))
	}

	return o.run(ctx, "title", b)
}

// Healthy reports whether the model answers a probe.
func (o *Orchestrator) Healthy(ctx context.Context) bool {
	return o.analyzer.TestConnection(ctx)
}

func (o *Orchestrator) run(ctx context.Context, entry string, b *book.Book) (*Recommendation, error) {
	log := logging.Ctx(ctx)
	log.Debug().Str("stage", string(stageBookResolved)).Str("book_id", b.ID).Str("title", b.Title).Msg("recommendation")

	profile := o.analyzer.Analyze(ctx, *b)
	log.Debug().Str("stage", string(stageProfileComputed)).
		Str("primary_genre", profile.PrimaryGenre).
		Str("mood", profile.Mood).
		Float64("energy", profile.Energy).
		Msg("recommendation")

	energyMax := profile.Energy + energyHeadroom
	tracks, err := o.music.Search(ctx, music.SearchParams{
		Genre:     profile.PrimaryGenre,
		Mood:      profile.Mood,
		EnergyMax: &energyMax,
		Limit:     RecommendationLimit,
	})
	if err != nil {
		return nil, o.fail(entry, err)
	}
	log.Debug().Str("stage", string(stageTracksFetched)).Int("tracks", len(tracks)).Msg("recommendation")

	metrics.RecommendationsTotal.WithLabelValues(entry, "success").Inc()
	log.Debug().Str("stage", string(stageDone)).Msg("recommendation")

	return &Recommendation{
		Book:            b,
		MusicProfile:    profile,
		Recommendations: tracks,
	}, nil
}

func (o *Orchestrator) fail(entry string, err error) error {
	metrics.RecommendationsTotal.WithLabelValues(entry, "error").Inc()
	return err
}
