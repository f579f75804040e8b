// Package server assembles the HTTP surface: the JSON API under /api,
// Prometheus metrics and the static frontend.
package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"readingsoundtrack/internal/book"
	"readingsoundtrack/internal/httpx"
	"readingsoundtrack/internal/music"
	"readingsoundtrack/internal/soundtrack"
)

// Handlers are the API handlers mounted under /api.
type Handlers struct {
	Books      *book.HTTPHandler
	Music      *music.HTTPHandler
	Soundtrack *soundtrack.HTTPHandler
}

type Options struct {
	StaticDir          string
	CORSAllowedOrigins []string
	EnableHSTS         bool
}

// NewRouter returns the application handler.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.SecurityHeadersMiddleware(opts.EnableHSTS))
	r.Use(httpx.CORSMiddleware(opts.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/search-books", h.Books.Search)
		r.Get("/search-book/{bookId}", h.Books.GetByID)
		r.Get("/book-by-title", h.Books.GetByTitle)

		r.Get("/recommend/{bookId}", h.Soundtrack.Recommend)
		r.Get("/recommend-by-title", h.Soundtrack.RecommendByTitle)
		r.Get("/health", h.Soundtrack.Health)

		r.Get("/tracks/{trackId}", h.Music.GetTrack)

		r.NotFound(endpointNotFound)
		r.MethodNotAllowed(endpointNotFound)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/*", staticOrIndex(opts.StaticDir))
	r.NotFound(endpointNotFound)
	r.MethodNotAllowed(endpointNotFound)

	return r
}

func endpointNotFound(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, http.StatusNotFound, "Endpoint not found")
}

// staticOrIndex serves files from dir and answers every other path with
// dir/index.html so the frontend can route client-side.
func staticOrIndex(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		p := path.Clean("/" + r.URL.Path)
		if p != "/" {
			if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(p))); err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}

		if _, err := os.Stat(index); err != nil {
			endpointNotFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}
