package service

import "errors"

var (
	// ErrNotAuthenticated is returned by interaction mutations invoked
	// without an established session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidRating is returned by Rate for ratings outside [1, 5].
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Fallback messages used when error normalization finds nothing better to
// show the user.
const (
	msgLoginFailed    = "login failed"
	msgRegisterFailed = "registration failed"
	msgSearchFailed   = "search failed"

	msgInvalidProfile = "invalid registration details"
	msgInvalidFilter  = "invalid search filter"
)
