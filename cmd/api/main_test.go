package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"readingsoundtrack/internal/config"
)

func TestCheckConfig(t *testing.T) {
	complete := config.Config{
		GeminiAPIKey:    "g",
		GeminiModel:     "gemini-2.0-flash-exp",
		GeminiBaseURL:   "https://generativelanguage.googleapis.com",
		BookAPIBaseURL:  "http://books",
		BookAPIKey:      "b",
		MusicAPIBaseURL: "http://music",
		MusicAPIKey:     "m",
		BookTimeout:     5 * time.Second,
		MusicTimeout:    10 * time.Second,
		GeminiTimeout:   10 * time.Second,
	}

	incomplete := complete
	incomplete.MusicAPIKey = ""

	hosted := incomplete
	hosted.AppEnv = "production"

	vercel := incomplete
	vercel.Vercel = true

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"complete", complete, false},
		{"missing locally", incomplete, true},
		{"missing in production", hosted, false},
		{"missing on vercel", vercel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkConfig(tt.cfg)
			if tt.wantErr {
				assert.ErrorContains(t, err, "MUSIC_API_KEY")
				return
			}
			assert.NoError(t, err)
		})
	}
}
