package soundtrack

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"readingsoundtrack/internal/httpx"
)

type HTTPHandler struct {
	orchestrator *Orchestrator
	now          func() time.Time
}

func NewHTTPHandler(orchestrator *Orchestrator) *HTTPHandler {
	return &HTTPHandler{orchestrator: orchestrator, now: time.Now}
}

// Recommend handles GET /api/recommend/{bookId}
func (h *HTTPHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	rec, err := h.orchestrator.Recommend(r.Context(), chi.URLParam(r, "bookId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, rec)
}

// RecommendByTitle handles GET /api/recommend-by-title?title=
func (h *HTTPHandler) RecommendByTitle(w http.ResponseWriter, r *http.Request) {
	rec, err := h.orchestrator.RecommendByTitle(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, rec)
}

type healthResponse struct {
	Success   bool              `json:"success"`
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// Health handles GET /api/health. It always answers 200; a failed model
// probe only marks gemini as disconnected.
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	gemini := "disconnected"
	if h.orchestrator.Healthy(r.Context()) {
		gemini = "connected"
	}

	httpx.WriteJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Status:    "ok",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Services:  map[string]string{"gemini": gemini},
	})
}
