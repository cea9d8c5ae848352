// Package adapter provides the transport layer for communicating with the
// Galley platform.
//
// Two abstractions decouple the service layer from the wire: [AuthAdapter]
// for the REST authentication endpoints and [QueryAdapter] for the
// boolean-expression query endpoint. The package ships one HTTP
// implementation, [HTTPAdapter], which satisfies both.
//
// Adapters are stateless with respect to authentication: the caller passes
// the current bearer token into every method that needs one, and an empty
// token means the request goes out unauthenticated. Transport failures are
// mapped to the sentinel errors in errors.go so callers can use [errors.Is]
// without knowing HTTP status codes.
package adapter

import (
	"context"

	"github.com/galley-app/galley-client/internal/query"
	"github.com/galley-app/galley-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAdapter defines transport for the authentication endpoints.
type AuthAdapter interface {
	// Login exchanges credentials for a token and user record via
	// POST /api/v1/auth/login. Returns [ErrInvalidResponse] if the body
	// decodes but lacks either field.
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)

	// Register creates an account via POST /api/v1/auth/register and
	// returns the same token/user pair as Login, with the same
	// [ErrInvalidResponse] contract.
	Register(ctx context.Context, profile models.RegisterProfile) (models.AuthResponse, error)

	// Refresh exchanges the current token for a fresh one via
	// POST /api/v1/auth/refresh, authenticated with token itself.
	Refresh(ctx context.Context, token string) (models.RefreshResponse, error)
}

// QueryAdapter defines transport for the data-query endpoint. Every method
// issues exactly one request; methods taking a token attach it as a bearer
// credential when non-empty.
type QueryAdapter interface {
	// Search runs the paired row/count query for the composed filter.
	// The one predicate tree in q is attached to both halves of the
	// request, so the returned total always describes the same result
	// set as the returned rows.
	Search(ctx context.Context, token string, q query.Composed) ([]models.Recipe, int, error)

	// InteractionRows fetches the four interaction facts for one
	// (user, recipe) pair in a single batched request.
	InteractionRows(ctx context.Context, token, userID, recipeID string) (models.InteractionRows, error)

	// Suggestions fetches matching recipe titles, distinct ingredient
	// names, and categories for a partial query in one request.
	Suggestions(ctx context.Context, text string) (models.Suggestions, error)

	// PopularSearchTerms returns the most frequent search terms logged
	// over the last thirty days.
	PopularSearchTerms(ctx context.Context) ([]string, error)

	// LogSearch records a search term and its result count. Best effort;
	// callers are expected to swallow the returned error.
	LogSearch(ctx context.Context, token, term string, resultsCount int) error

	// Categories lists all recipe categories ordered by name.
	Categories(ctx context.Context) ([]models.Category, error)

	// LikeRecipe, UnlikeRecipe, BookmarkRecipe, RemoveBookmark, and
	// RateRecipe are the authenticated interaction mutations. Each issues
	// one request and returns a mapped transport error on failure.
	LikeRecipe(ctx context.Context, token, recipeID string) error
	UnlikeRecipe(ctx context.Context, token, recipeID string) error
	BookmarkRecipe(ctx context.Context, token, recipeID string) error
	RemoveBookmark(ctx context.Context, token, recipeID string) error
	RateRecipe(ctx context.Context, token, recipeID string, rating float64) error
}
