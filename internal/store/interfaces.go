// Package store persists the client's session between runs.
//
// The vault is two named slots in a local SQLite table: the bearer token
// and the serialized user record. The slots are written together and
// cleared together; no caller can persist half a session. Values are sealed
// at rest by [crypto.Sealer] before they reach the database.
package store

import (
	"context"

	"github.com/galley-app/galley-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionVault is the durable two-slot store for the authenticated session.
type SessionVault interface {
	// SaveSession seals and writes both slots in one transaction.
	SaveSession(ctx context.Context, token string, user models.User) error

	// LoadSession reads and unseals both slots.
	//
	// Returns [ErrSessionNotFound] when neither slot exists, and
	// [ErrSessionCorrupted] when the slots are partial, fail to unseal,
	// or the user record fails to parse. On a corrupted read the caller
	// is expected to call ClearSession.
	LoadSession(ctx context.Context) (token string, user models.User, err error)

	// ClearSession removes both slots. Clearing an empty vault is a
	// no-op, not an error.
	ClearSession(ctx context.Context) error
}
