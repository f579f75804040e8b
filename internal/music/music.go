package music

// Track is a catalog track, passed through untouched.
type Track = map[string]any

// SearchParams filters a recommendation search. Unset fields are not sent.
type SearchParams struct {
	Genre     string
	Mood      string
	EnergyMax *float64
	Limit     int
}
