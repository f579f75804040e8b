package mood

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"readingsoundtrack/internal/apperr"
	"readingsoundtrack/internal/book"
	"readingsoundtrack/internal/logging"
	"readingsoundtrack/internal/metrics"
	"readingsoundtrack/internal/platform/gemini"
)

// Generator is the language model behind the analyzer.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

var (
	jsonFence  = regexp.MustCompile("```json\n?")
	plainFence = regexp.MustCompile("```\n?")
)

// candidate is the model's answer before validation.
type candidate struct {
	PrimaryGenre   string   `json:"primaryGenre" validate:"required"`
	SecondaryGenre string   `json:"secondaryGenre"`
	Mood           string   `json:"mood" validate:"required"`
	Energy         *float64 `json:"energy" validate:"required,gte=0,lte=10"`
	Tempo          string   `json:"tempo"`
	Reasoning      string   `json:"reasoning"`
}

// Analyzer derives a music Profile for a book.
type Analyzer struct {
	generator Generator
	validate  *validator.Validate
}

func NewAnalyzer(generator Generator) *Analyzer {
	return &Analyzer{
		generator: generator,
		validate:  validator.New(),
	}
}

// Analyze returns the model's profile for b, or the keyword fallback for
// b.Genre when the model fails or answers with something unusable.
func (a *Analyzer) Analyze(ctx context.Context, b book.Book) Profile {
	p, err := a.TryAnalyze(ctx, b)
	if err != nil {
		reason := apperr.KindOf(err).String()
		logging.Ctx(ctx).Warn().Err(err).Str("title", b.Title).Str("reason", reason).Msg("falling back to rule-based mapping")
		metrics.ProfilesTotal.WithLabelValues("fallback", reason).Inc()
		return Fallback(b.Genre)
	}

	metrics.ProfilesTotal.WithLabelValues("ai", "").Inc()
	return p
}

// TryAnalyze asks the model for a profile and validates the answer.
func (a *Analyzer) TryAnalyze(ctx context.Context, b book.Book) (Profile, error) {
	const op = "mood.TryAnalyze"

	logging.Ctx(ctx).Debug().Str("title", b.Title).Msg("analyzing book with gemini")

	text, err := a.generator.Generate(ctx, SystemPrompt, UserPrompt(b))
	if err != nil {
		return Profile{}, generateError(op, err)
	}

	text = strings.TrimSpace(plainFence.ReplaceAllString(jsonFence.ReplaceAllString(text, ""), ""))

	var c candidate
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return Profile{}, apperr.Wrap(apperr.KindMalformed, op, "model response is not a JSON profile", err)
	}
	if err := a.validate.Struct(c); err != nil {
		return Profile{}, apperr.Wrap(apperr.KindMalformed, op, "model response is missing or has invalid fields", err)
	}

	p := Profile{
		PrimaryGenre:   c.PrimaryGenre,
		SecondaryGenre: c.SecondaryGenre,
		Mood:           c.Mood,
		Energy:         *c.Energy,
		Tempo:          c.Tempo,
		Reasoning:      c.Reasoning,
	}
	logging.Ctx(ctx).Debug().
		Str("primary_genre", p.PrimaryGenre).
		Str("mood", p.Mood).
		Float64("energy", p.Energy).
		Msg("gemini recommendation")
	return p, nil
}

// TestConnection sends a minimal prompt and reports whether the model answered.
func (a *Analyzer) TestConnection(ctx context.Context) bool {
	if _, err := a.generator.Generate(ctx, SystemPrompt, "Test"); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("gemini connection test failed")
		return false
	}
	return true
}

func generateError(op string, err error) error {
	var se *gemini.StatusError
	var ue *url.Error
	switch {
	case gemini.IsRejected(err):
		return apperr.Wrap(apperr.KindUpstreamUnavailable, op, "gemini circuit open", err)
	case errors.Is(err, gemini.ErrEmptyResponse):
		return apperr.Wrap(apperr.KindMalformed, op, "gemini returned no content", err)
	case errors.As(err, &se):
		return apperr.Wrap(apperr.KindUpstream, op, fmt.Sprintf("gemini error: %v", err), err)
	case errors.As(err, &ue):
		return apperr.Wrap(apperr.KindUpstreamUnavailable, op, "gemini is unavailable", err)
	default:
		return apperr.Wrap(apperr.KindUpstream, op, fmt.Sprintf("gemini error: %v", err), err)
	}
}
