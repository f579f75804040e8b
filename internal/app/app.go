// Package app wires configuration into the services shared by the HTTP
// server and the command-line client.
package app

import (
	"net/http"

	"readingsoundtrack/internal/book"
	"readingsoundtrack/internal/config"
	"readingsoundtrack/internal/mood"
	"readingsoundtrack/internal/music"
	"readingsoundtrack/internal/platform/bookcatalog"
	"readingsoundtrack/internal/platform/gemini"
	"readingsoundtrack/internal/platform/musiccatalog"
	"readingsoundtrack/internal/server"
	"readingsoundtrack/internal/soundtrack"
)

type App struct {
	Books        *book.Service
	Music        *music.Service
	Analyzer     *mood.Analyzer
	Orchestrator *soundtrack.Orchestrator
}

func New(cfg config.Config) *App {
	books := book.NewService(bookcatalog.NewClient(cfg.BookAPIBaseURL, cfg.BookAPIKey, cfg.BookTimeout, cfg.BookAPIRPS))
	tracks := music.NewService(musiccatalog.NewClient(cfg.MusicAPIBaseURL, cfg.MusicAPIKey, cfg.MusicTimeout))

	model := gemini.NewBreakerClient(
		gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiAPIKey, cfg.GeminiTimeout),
		gemini.DefaultBreakerSettings,
	)
	analyzer := mood.NewAnalyzer(model)

	return &App{
		Books:        books,
		Music:        tracks,
		Analyzer:     analyzer,
		Orchestrator: soundtrack.NewOrchestrator(books, analyzer, tracks),
	}
}

// Handler returns the HTTP handler serving the API and the frontend.
func (a *App) Handler(cfg config.Config) http.Handler {
	return server.NewRouter(server.Handlers{
		Books:      book.NewHTTPHandler(a.Books),
		Music:      music.NewHTTPHandler(a.Music),
		Soundtrack: soundtrack.NewHTTPHandler(a.Orchestrator),
	}, server.Options{
		StaticDir:          cfg.StaticDir,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		EnableHSTS:         cfg.EnableHSTS,
	})
}
