// Package config loads the service configuration from the environment.
// The result is an immutable value handed to constructors at startup.
package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration.
type Config struct {
	Port   string
	AppEnv string
	Vercel bool

	GeminiAPIKey  string `env:"GEMINI_API_KEY" validate:"required"`
	GeminiModel   string `env:"GEMINI_MODEL" validate:"required"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" validate:"required,url"`

	BookAPIBaseURL string `env:"BOOK_API_BASE_URL" validate:"required"`
	BookAPIKey     string `env:"BOOK_API_KEY" validate:"required"`
	BookAPIRPS     float64

	MusicAPIBaseURL string `env:"MUSIC_API_BASE_URL" validate:"required"`
	MusicAPIKey     string `env:"MUSIC_API_KEY" validate:"required"`

	BookTimeout   time.Duration `env:"BOOK_API_TIMEOUT" validate:"gt=0"`
	MusicTimeout  time.Duration `env:"MUSIC_API_TIMEOUT" validate:"gt=0"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" validate:"gt=0"`

	StaticDir          string
	CORSAllowedOrigins []string
	EnableHSTS         bool

	LogLevel  string
	LogFormat string
}

var defaults = map[string]any{
	"PORT":                 "3000",
	"GEMINI_MODEL":         "gemini-2.0-flash-exp",
	"GEMINI_BASE_URL":      "https://generativelanguage.googleapis.com",
	"BOOK_API_RPS":         0,
	"BOOK_API_TIMEOUT":     5 * time.Second,
	"MUSIC_API_TIMEOUT":    10 * time.Second,
	"GEMINI_TIMEOUT":       10 * time.Second,
	"STATIC_DIR":           "public",
	"CORS_ALLOWED_ORIGINS": "*",
	"ENABLE_HSTS":          false,
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
}

// Load reads .env.local and .env (when present) into the process
// environment, then builds a Config from environment variables.
// It does not validate; call Missing for that.
func Load() Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		Port:   v.GetString("PORT"),
		AppEnv: v.GetString("APP_ENV"),
		Vercel: v.GetString("VERCEL") != "",

		GeminiAPIKey:  v.GetString("GEMINI_API_KEY"),
		GeminiModel:   v.GetString("GEMINI_MODEL"),
		GeminiBaseURL: strings.TrimRight(v.GetString("GEMINI_BASE_URL"), "/"),

		BookAPIBaseURL: strings.TrimRight(v.GetString("BOOK_API_BASE_URL"), "/"),
		BookAPIKey:     v.GetString("BOOK_API_KEY"),
		BookAPIRPS:     v.GetFloat64("BOOK_API_RPS"),

		MusicAPIBaseURL: strings.TrimRight(v.GetString("MUSIC_API_BASE_URL"), "/"),
		MusicAPIKey:     v.GetString("MUSIC_API_KEY"),

		BookTimeout:   timeout(v, "BOOK_API_TIMEOUT"),
		MusicTimeout:  timeout(v, "MUSIC_API_TIMEOUT"),
		GeminiTimeout: timeout(v, "GEMINI_TIMEOUT"),

		StaticDir:          v.GetString("STATIC_DIR"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		EnableHSTS:         v.GetBool("ENABLE_HSTS"),

		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}
}

// timeout reads a duration, falling back to the default when the value is
// zero, negative or unparseable. Outbound calls never run unbounded.
func timeout(v *viper.Viper, key string) time.Duration {
	if d := v.GetDuration(key); d > 0 {
		return d
	}
	return defaults[key].(time.Duration)
}

// Hosted reports whether the process runs in a hosted/production
// environment, where missing configuration is tolerated with a warning.
func (c Config) Hosted() bool {
	return strings.EqualFold(c.AppEnv, "production") || c.Vercel
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Missing returns the environment variable names of required values that
// are empty or invalid, in declaration order.
func (c Config) Missing() []string {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field())
	}
	return names
}

// MissingError formats Missing for logs. It returns nil when nothing is missing.
func (c Config) MissingError() error {
	missing := c.Missing()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
