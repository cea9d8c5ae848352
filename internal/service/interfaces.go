// Package service holds the client's business logic: the session store, the
// search boundary, and the interaction aggregator.
//
// Services sit between the terminal UI and the transport adapters. Their
// outward-facing operations follow one contract: auth, search and fact
// lookups return outcome values instead of errors, so the UI never has to
// translate a transport failure mid-render. Only the interaction mutations
// return errors, because the UI needs to tell the user a like or rating did
// not stick.
package service

import (
	"context"

	"github.com/galley-app/galley-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService owns the client's authentication state. The session triple
// (user, token, authenticated flag) changes only as a unit; every snapshot
// returned by Session is internally consistent.
type SessionService interface {
	// Login authenticates against the server. On success the session is
	// established atomically and persisted; on failure the session is
	// left untouched and the result carries a normalized message.
	// Never returns an error.
	Login(ctx context.Context, email, password string) models.AuthResult

	// Register creates an account, with the same contract as Login. The
	// profile is validated client-side before any network call.
	Register(ctx context.Context, profile models.RegisterProfile) models.AuthResult

	// Logout resets the session to anonymous and clears the persisted
	// slots. Idempotent; safe to call when already anonymous.
	Logout(ctx context.Context)

	// Init restores the session from the vault at startup. A missing
	// session leaves the client anonymous; a corrupted one additionally
	// clears both slots. Safe to call more than once.
	Init(ctx context.Context)

	// RefreshToken exchanges the current token for a fresh one, keeping
	// the user record. On failure the whole session is invalidated,
	// unless the session changed while the refresh was in flight.
	// Reports whether the token was replaced.
	RefreshToken(ctx context.Context) bool

	// Session returns a consistent snapshot of the current session.
	Session() models.Session

	// Token returns the current bearer token, empty when anonymous.
	Token() string
}

// TokenSource is the read-only view of the session that request-issuing
// services need.
type TokenSource interface {
	Token() string
	Session() models.Session
}

// SearchService is the recipe search boundary.
type SearchService interface {
	// Search validates the filter, composes the predicate tree, and runs
	// the paired rows/count query. On any failure it returns an empty
	// result with a message; it never returns an error. A successful
	// search with a text query also logs the term, best effort.
	Search(ctx context.Context, filter models.SearchFilter) models.SearchResult

	// Suggestions returns typeahead suggestions for a partial query.
	// Queries shorter than two runes return empty suggestions without a
	// network call. Failures yield empty suggestions and a logged error.
	Suggestions(ctx context.Context, text string) models.Suggestions

	// PopularTerms returns the most frequent recent search terms, empty
	// on failure.
	PopularTerms(ctx context.Context) []string

	// Categories lists the recipe categories for the filter form, empty
	// on failure.
	Categories(ctx context.Context) []models.Category
}

// InteractionService aggregates and mutates per-user recipe interactions.
type InteractionService interface {
	// Facts returns the like/bookmark/rating/purchase facts for the
	// current user and the given recipe. If the user is anonymous or
	// recipeID is empty it returns zero-value facts without a network
	// call. Fetch failures also yield zero-value facts, logged only.
	Facts(ctx context.Context, recipeID string) models.InteractionFacts

	// Like, Unlike, Bookmark, RemoveBookmark and Rate are the
	// authenticated mutations. They return [ErrNotAuthenticated] when no
	// session is established, and a wrapped transport error on failure.
	Like(ctx context.Context, recipeID string) error
	Unlike(ctx context.Context, recipeID string) error
	Bookmark(ctx context.Context, recipeID string) error
	RemoveBookmark(ctx context.Context, recipeID string) error

	// Rate records a star rating. Ratings outside [1, 5] are rejected
	// with [ErrInvalidRating] before any request is made.
	Rate(ctx context.Context, recipeID string, rating float64) error
}
