package models

// ScoredProduct pairs a product reference with its transient relevance
// score. It is created fresh for each search call and discarded after
// sorting; the underlying Product is never mutated.
type ScoredProduct struct {
	Product *Product `json:"product"`
	Score   int      `json:"score"`
	Rank    int      `json:"rank"`
}

// SearchResponse is the ordered result of one search call.
type SearchResponse struct {
	Results   []*ScoredProduct `json:"results"`
	Total     int              `json:"total"`
	Query     string           `json:"query"`
	Sort      string           `json:"sort"`
	QueryTime int64            `json:"query_time_ms"`
}

// SuggestionOrigin identifies where a suggestion came from.
type SuggestionOrigin string

const (
	// SuggestionRecent comes from the caller-owned search history.
	SuggestionRecent SuggestionOrigin = "recent"
	// SuggestionTrending comes from catalog products matching the query.
	SuggestionTrending SuggestionOrigin = "trending"
	// SuggestionAutoComplete is a deterministic completion of the query.
	SuggestionAutoComplete SuggestionOrigin = "auto_complete"
)

// Suggestion is one auxiliary query suggestion. Count carries the product
// stock for trending entries and is zero otherwise.
type Suggestion struct {
	Text   string           `json:"text"`
	Origin SuggestionOrigin `json:"origin"`
	Count  int              `json:"count,omitempty"`
}

// SuggestResponse is the ordered suggestion list for one query.
type SuggestResponse struct {
	Query       string       `json:"query"`
	Suggestions []Suggestion `json:"suggestions"`
}
