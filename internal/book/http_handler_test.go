package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"readingsoundtrack/internal/platform/bookcatalog"
)

func withBookID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("bookId", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		topRated := true
		m := new(mockCatalog)
		m.On("ListBooks", mock.Anything, bookcatalog.ListParams{Search: "dune", Genre: "Sci-Fi", TopRated: &topRated, Page: 2}).
			Return([]*bookcatalog.Record{record(t, `{"id":1,"title":"Dune"}`)}, nil)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/search-books?name=dune&page=2&genre=Sci-Fi&top_rated=true", nil)
		handler.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
		assert.Contains(t, w.Body.String(), `"title":"Dune"`)
		m.AssertExpectations(t)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("ListBooks", mock.Anything, mock.Anything).Return(nil, nil)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/api/search-books", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("ListBooks", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/api/search-books", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("GetBook", mock.Anything, "42").Return(record(t, `{"id":42,"title":"Answer"}`), nil)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		handler.GetByID(w, withBookID(httptest.NewRequest(http.MethodGet, "/api/search-book/42", nil), "42"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"42"`)
	})

	t.Run("not found", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("GetBook", mock.Anything, "404").Return(nil, nil)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		handler.GetByID(w, withBookID(httptest.NewRequest(http.MethodGet, "/api/search-book/404", nil), "404"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"book with ID 404 not found"}`, w.Body.String())
	})
}

func TestHTTPHandler_GetByTitle(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		m := new(mockCatalog)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		handler.GetByTitle(w, httptest.NewRequest(http.MethodGet, "/api/book-by-title?title=%20", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"Title parameter is required"}`, w.Body.String())
		m.AssertNotCalled(t, "ListBooks", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("ListBooks", mock.Anything, bookcatalog.ListParams{Search: "Emma"}).
			Return([]*bookcatalog.Record{record(t, `{"id":5,"title":"Emma"}`)}, nil)
		m.On("GetBook", mock.Anything, "5").Return(record(t, `{"id":5,"title":"Emma","author":"Jane Austen"}`), nil)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		handler.GetByTitle(w, httptest.NewRequest(http.MethodGet, "/api/book-by-title?title=Emma", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"author":"Jane Austen"`)
	})

	t.Run("not found", func(t *testing.T) {
		m := new(mockCatalog)
		m.On("ListBooks", mock.Anything, mock.Anything).Return([]*bookcatalog.Record{}, nil)
		handler := NewHTTPHandler(NewService(m))

		w := httptest.NewRecorder()
		handler.GetByTitle(w, httptest.NewRequest(http.MethodGet, "/api/book-by-title?title=Nope", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"success":false,"error":"book with title \"Nope\" not found"}`, w.Body.String())
	})
}
