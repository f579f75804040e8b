package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readingsoundtrack/internal/metrics"
)

func TestClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-goog-api-key"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req generateRequest
		require.NoError(t, json.Unmarshal(raw, &req))
		require.NotNil(t, req.SystemInstruction)
		assert.Equal(t, "be brief", req.SystemInstruction.Parts[0].Text)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)
		assert.Equal(t, 0.7, req.GenerationConfig.Temperature)
		assert.Equal(t, 1000, req.GenerationConfig.MaxOutputTokens)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"mood\":"},{"text":"\"calm\"}"}]}}]}`))
	}))
	defer srv.Close()

	text, err := NewClient(srv.URL, "gemini-test", "key", time.Second).Generate(context.Background(), "be brief", "hello")

	require.NoError(t, err)
	assert.Equal(t, `{"mood":"calm"}`, text)
}

func TestClient_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr func(t *testing.T, err error)
	}{
		{
			name:   "status with api message",
			status: http.StatusForbidden,
			body:   `{"error":{"code":403,"message":"API key not valid"}}`,
			wantErr: func(t *testing.T, err error) {
				var se *StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, "API key not valid", se.Message)
			},
		},
		{
			name:   "no candidates",
			status: http.StatusOK,
			body:   `{"candidates":[]}`,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
		{
			name:   "empty parts",
			status: http.StatusOK,
			body:   `{"candidates":[{"content":{"parts":[]}}]}`,
			wantErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "m", "k", time.Second).Generate(context.Background(), "", "Test")

			require.Error(t, err)
			tt.wantErr(t, err)
		})
	}
}

type stubGenerator struct {
	calls int
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "ok", nil
}

func TestBreakerClient(t *testing.T) {
	t.Run("passes through while closed", func(t *testing.T) {
		stub := &stubGenerator{}
		b := NewBreakerClient(stub, DefaultBreakerSettings)

		text, err := b.Generate(context.Background(), "", "Test")

		require.NoError(t, err)
		assert.Equal(t, "ok", text)
		assert.Equal(t, gobreaker.StateClosed, b.State())
	})

	t.Run("opens after consecutive failures", func(t *testing.T) {
		stub := &stubGenerator{err: errors.New("unavailable")}
		b := NewBreakerClient(stub, BreakerSettings{ConsecutiveFailures: 2, Timeout: time.Minute})

		for i := 0; i < 2; i++ {
			_, err := b.Generate(context.Background(), "", "Test")
			require.Error(t, err)
			assert.False(t, IsRejected(err))
		}

		_, err := b.Generate(context.Background(), "", "Test")

		assert.True(t, IsRejected(err))
		assert.Equal(t, 2, stub.calls)
		assert.Equal(t, gobreaker.StateOpen, b.State())
		assert.Equal(t, float64(2), testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues(breakerName)))
	})

	t.Run("cancellation does not count", func(t *testing.T) {
		stub := &stubGenerator{err: context.Canceled}
		b := NewBreakerClient(stub, BreakerSettings{ConsecutiveFailures: 1, Timeout: time.Minute})

		for i := 0; i < 3; i++ {
			_, _ = b.Generate(context.Background(), "", "Test")
		}

		assert.Equal(t, 3, stub.calls)
		assert.Equal(t, gobreaker.StateClosed, b.State())
	})
}
