package book

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"readingsoundtrack/internal/platform/bookcatalog"
)

// Normalize turns a raw catalog record into a fully defaulted Book.
// It returns nil for a nil record; callers treat that as "not found".
func Normalize(raw *bookcatalog.Record) *Book {
	if raw == nil {
		return nil
	}

	id, _ := scalar(raw.ID)
	return &Book{
		ID:          id,
		Title:       raw.Title,
		Author:      orDefault(raw.Author, DefaultAuthor),
		Genre:       raw.Genre,
		Language:    orDefault(raw.Language, DefaultLanguage),
		PubYear:     orDefault(nonZero(raw.PubYear), DefaultPubYear),
		AgeCategory: orDefault(raw.AgeCategory, DefaultAgeCategory),
		Rating:      rating(raw.Rating),
		Tags:        Tags(raw.Tags),
		Description: orDefault(raw.Description, DefaultDescription),
		PageCount:   orDefault(nonZero(raw.PageCount), DefaultPageCount),
	}
}

// Tags accepts either a comma-separated string or a JSON list and returns
// the trimmed, non-empty entries in order. Anything else yields an empty list.
func Tags(raw json.RawMessage) []string {
	tags := []string{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return tags
	}

	var parts []string
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return tags
		}
		parts = strings.Split(s, ",")
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return tags
		}
		for _, item := range items {
			if s, ok := scalar(item); ok {
				parts = append(parts, s)
			}
		}
	}

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// rating renders a number or numeric string with one decimal.
func rating(raw json.RawMessage) string {
	s, ok := scalar(raw)
	if !ok {
		return DefaultRating
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultRating
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// scalar returns the text of a JSON string or number. It reports false for
// null, missing, or structured values.
func scalar(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[':
		return "", false
	default:
		return string(raw), true
	}
}

// nonZero is scalar with a literal 0 treated as absent, matching how the
// catalog marks unknown years and page counts.
func nonZero(raw json.RawMessage) string {
	s, _ := scalar(raw)
	if s == "0" {
		return ""
	}
	return s
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
