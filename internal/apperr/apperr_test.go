package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain error", errors.New("boom"), KindInternal},
		{"not found", New(KindNotFound, "book.GetByTitle", "missing"), KindNotFound},
		{"wrapped twice", fmt.Errorf("recommend: %w", Wrap(KindUpstreamUnavailable, "music.Search", "down", cause)), KindUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrap(KindUpstream, "op", "music catalog error: 503 - Service Unavailable", cause)

	assert.Equal(t, "music catalog error: 503 - Service Unavailable", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := Wrap(KindInternal, "op", "", cause)
	assert.Equal(t, "timeout", bare.Error())
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(New(KindValidation, "op", "title parameter is required")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(New(KindNotFound, "op", "missing")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
