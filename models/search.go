package models

// SortMode selects the ordering of search results. Unknown values fall back
// to SortRelevance.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortNewest    SortMode = "newest"
	SortPopular   SortMode = "popular"
	SortRating    SortMode = "rating"
	SortPrepTime  SortMode = "prep_time"
)

// SearchFilter is the per-invocation value object describing a recipe
// search. Every field is optional: a zero value means "no constraint", never
// "match empty". IsPremium is a pointer because false ("free recipes only")
// is a meaningful constraint distinct from absence.
//
// Limit and Offset must be non-negative; negative values fail validation
// before any request is composed.
type SearchFilter struct {
	Query       string   `validate:"omitempty,max=200"`
	CategoryID  string   `validate:"omitempty,uuid"`
	Difficulty  string   `validate:"omitempty,oneof=easy medium hard"`
	MaxPrepTime int      `validate:"gte=0"`
	MaxCookTime int      `validate:"gte=0"`
	Ingredients []string `validate:"omitempty,dive,required"`
	MinRating   float64  `validate:"gte=0,lte=5"`
	IsPremium   *bool
	SortBy      SortMode
	Limit       int `validate:"gte=0"`
	Offset      int `validate:"gte=0"`
}

// SearchResult is the outcome value of a recipe search. On any transport or
// validation failure Recipes is empty, Total is zero, and Error carries a
// human-readable message; the search boundary never returns a Go error.
type SearchResult struct {
	Recipes []Recipe
	Total   int
	Error   string
}

// Suggestions groups the three suggestion sources returned for a partial
// search query.
type Suggestions struct {
	Recipes     []RecipeSuggestion
	Ingredients []string
	Categories  []Category
}

// RecipeSuggestion is the minimal recipe projection rendered in the
// search-suggestion dropdown.
type RecipeSuggestion struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	FeaturedImageURL string `json:"featured_image_url,omitempty"`
}
