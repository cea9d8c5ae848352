package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt extracts the expiry time from a JWT's "exp" claim without
// verifying the signature. The client never holds the signing key; expiry
// is read only to schedule a refresh ahead of time, and the server remains
// the authority on token validity.
//
// Returns an error if the token cannot be parsed or carries no expiry claim.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiry claim")
	}

	return exp.Time, nil
}
