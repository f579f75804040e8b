package book

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"readingsoundtrack/internal/apperr"
	"readingsoundtrack/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Search handles GET /api/search-books?name=&page=&genre=&top_rated=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}

	filters := Filters{
		Search: query.Get("name"),
		Page:   page,
		Genre:  query.Get("genre"),
	}
	if v := query.Get("top_rated"); v != "" {
		if topRated, err := strconv.ParseBool(v); err == nil {
			filters.TopRated = &topRated
		}
	}

	books, err := h.service.List(r.Context(), filters)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, books)
}

// GetByID handles GET /api/search-book/{bookId}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "bookId")

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if b == nil {
		httpx.WriteError(w, r, NotFoundByID(id))
		return
	}
	httpx.JSONSuccess(w, b)
}

// GetByTitle handles GET /api/book-by-title?title=
func (h *HTTPHandler) GetByTitle(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		httpx.WriteError(w, r, apperr.New(apperr.KindValidation, "book.GetByTitle", "Title parameter is required"))
		return
	}

	b, err := h.service.GetByTitle(r.Context(), title)
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	if b == nil {
		httpx.WriteError(w, r, NotFoundByTitle(title))
		return
	}
	httpx.JSONSuccess(w, b)
}
