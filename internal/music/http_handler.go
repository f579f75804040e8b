package music

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"readingsoundtrack/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// GetTrack handles GET /api/tracks/{trackId}
func (h *HTTPHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	track, err := h.service.GetTrack(r.Context(), chi.URLParam(r, "trackId"))
	if err != nil {
		httpx.WriteError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, track)
}
