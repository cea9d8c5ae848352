package models

// InteractionFacts bundles the four independent facts about how one user has
// interacted with one recipe. It is always freshly fetched, never cached or
// persisted on the client.
//
// The zero value is the "no interaction" record returned when either side of
// the (user, recipe) pair is unknown.
type InteractionFacts struct {
	// Liked reports whether the user has liked the recipe.
	Liked bool

	// Bookmarked reports whether the user has bookmarked the recipe.
	Bookmarked bool

	// Rating is the star rating the user gave the recipe, nil when the
	// user has not rated it.
	Rating *float64

	// Purchased reports whether the user has a completed purchase of the
	// recipe.
	Purchased bool
}

// IDRow is a row projection carrying only an identifier. The interaction
// query returns row lists whose mere presence encodes a boolean fact.
type IDRow struct {
	ID string `json:"id"`
}

// RatingRow is a rating-table row for one (user, recipe) pair.
type RatingRow struct {
	ID     string  `json:"id"`
	Rating float64 `json:"rating"`
}

// InteractionRows is the raw batched response for one (user, recipe) pair,
// before it is folded into [InteractionFacts].
type InteractionRows struct {
	Likes     []IDRow     `json:"likes"`
	Bookmarks []IDRow     `json:"bookmarks"`
	Ratings   []RatingRow `json:"ratings"`
	Purchases []IDRow     `json:"purchases"`
}
