// Package crypto protects the locally persisted session slots at rest.
//
// The galley client stores its bearer token and user record in a local
// SQLite file; [Sealer] wraps both values with authenticated encryption
// under a key derived from a per-machine secret, so a copied database file
// is useless without the secret. This is at-rest hygiene, not a trust
// boundary: the server remains the only authority on token validity.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Sealer provides authenticated encryption for session slot values.
type Sealer interface {
	// Seal encrypts plaintext and returns an opaque blob. Each call uses
	// a fresh nonce, so sealing the same value twice produces different
	// blobs.
	Seal(plaintext []byte) ([]byte, error)

	// Unseal decrypts a blob produced by Seal. Returns an error if the
	// blob is truncated, was sealed under a different key, or fails the
	// authentication check. The caller must treat any of these as a
	// corrupted slot.
	Unseal(blob []byte) ([]byte, error)
}
