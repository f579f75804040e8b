package book

// Defaults applied by Normalize when the catalog omits a field.
const (
	DefaultAuthor      = "Unknown"
	DefaultLanguage    = "N/A"
	DefaultPubYear     = "N/A"
	DefaultAgeCategory = "General"
	DefaultRating      = "0.0"
	DefaultDescription = "No description available."
	DefaultPageCount   = "N/A"
)

// Book is a catalog record normalized so that every field is defined.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Genre       string   `json:"genre"`
	Language    string   `json:"language"`
	PubYear     string   `json:"pub_year"`
	AgeCategory string   `json:"age_category"`
	Rating      string   `json:"rating"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	PageCount   string   `json:"page_count"`
}

// Filters defines the catalog search forwarded by List.
type Filters struct {
	// Search is a keyword; empty lists everything.
	Search   string
	Page     int
	Genre    string
	TopRated *bool
}
