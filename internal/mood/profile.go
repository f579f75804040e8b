package mood

import (
	"fmt"
	"strings"
)

// Genres are the music genres the catalog knows.
var Genres = []string{"acoustic", "ambient", "chill", "classical", "piano"}

// Moods are the music moods the catalog knows.
var Moods = []string{
	"dark",
	"uplifting",
	"melancholic",
	"energetic",
	"calm",
	"mysterious",
	"romantic",
	"epic",
	"nostalgic",
	"tense",
	"peaceful",
	"aggressive",
	"dreamy",
	"hopeful",
}

// Profile describes the music that suits a book.
type Profile struct {
	PrimaryGenre   string  `json:"primaryGenre"`
	SecondaryGenre string  `json:"secondaryGenre"`
	Mood           string  `json:"mood"`
	Energy         float64 `json:"energy"`
	Tempo          string  `json:"tempo"`
	Reasoning      string  `json:"reasoning"`
}

type fallbackRule struct {
	keyword      string
	primaryGenre string
	mood         string
	energy       float64
	tempo        string
}

// Order matters: the first keyword found in the genre wins.
var fallbackRules = []fallbackRule{
	{"mystery", "ambient", "mysterious", 4, "slow"},
	{"noir", "ambient", "dark", 3, "slow"},
	{"thriller", "piano", "tense", 7, "fast"},
	{"horror", "ambient", "dark", 6, "slow"},
	{"romance", "acoustic", "romantic", 3, "slow"},
	{"fantasy", "classical", "epic", 7, "medium"},
	{"sci-fi", "ambient", "mysterious", 6, "medium"},
	{"historical", "classical", "nostalgic", 4, "medium"},
	{"comedy", "acoustic", "uplifting", 7, "fast"},
	{"drama", "piano", "melancholic", 4, "slow"},
	{"adventure", "classical", "energetic", 8, "fast"},
	{"literary", "piano", "calm", 3, "slow"},
}

var defaultProfile = Profile{
	PrimaryGenre:   "ambient",
	SecondaryGenre: "acoustic",
	Mood:           "calm",
	Energy:         5,
	Tempo:          "medium",
	Reasoning:      "General recommendation for unknown genre.",
}

// Fallback maps a book genre to a profile by keyword, without calling the model.
func Fallback(genre string) Profile {
	lower := strings.ToLower(genre)
	for _, r := range fallbackRules {
		if strings.Contains(lower, r.keyword) {
			return Profile{
				PrimaryGenre:   r.primaryGenre,
				SecondaryGenre: r.primaryGenre,
				Mood:           r.mood,
				Energy:         r.energy,
				Tempo:          r.tempo,
				Reasoning:      fmt.Sprintf(`Fallback mapping based on "%s" genre classification.`, genre),
			}
		}
	}
	return defaultProfile
}
