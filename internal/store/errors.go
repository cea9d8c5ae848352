package store

import "errors"

var (
	// ErrSessionNotFound indicates that neither session slot is present:
	// the client has no persisted session to restore.
	ErrSessionNotFound = errors.New("no persisted session")

	// ErrSessionCorrupted indicates the persisted session cannot be
	// trusted: only one slot is present, a slot fails to unseal, or the
	// user record does not parse. Callers must clear both slots rather
	// than half-trust the remains.
	ErrSessionCorrupted = errors.New("persisted session corrupted")
)
