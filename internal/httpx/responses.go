package httpx

import (
	"net/http"

	"github.com/goccy/go-json"

	"readingsoundtrack/internal/apperr"
	"readingsoundtrack/internal/logging"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("encode response")
	}
}

func JSONSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func JSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Success: false, Error: message})
}

// WriteError logs err and writes it with the status its kind maps to.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	logging.Ctx(r.Context()).Error().
		Err(err).
		Str("kind", apperr.KindOf(err).String()).
		Int("status", status).
		Str("path", r.URL.Path).
		Msg("request failed")
	JSONError(w, status, err.Error())
}
