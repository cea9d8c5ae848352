package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen   = 16
	secretLen = 32

	// Argon2id parameters recommended by OWASP (2024):
	// 1 iteration, 64 MiB memory, 4 threads, 256-bit key.
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// machineSealer is the private implementation of [Sealer]. It holds the
// AES-256 key derived once at construction time.
type machineSealer struct {
	key []byte
}

// NewMachineSealer constructs a [Sealer] keyed from the secret file at
// secretPath. On first run the file is created with fresh random material
// (mode 0600); on later runs the same file yields the same key, so blobs
// sealed in a previous session unseal correctly.
//
// The file layout is salt ‖ secret; the sealing key is derived from the
// secret with Argon2id under that salt.
func NewMachineSealer(secretPath string) (Sealer, error) {
	salt, secret, err := loadOrCreateSecret(secretPath)
	if err != nil {
		return nil, fmt.Errorf("machine secret: %w", err)
	}

	key := argon2.IDKey(secret, salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return &machineSealer{key: key}, nil
}

func loadOrCreateSecret(path string) (salt, secret []byte, err error) {
	raw, err := os.ReadFile(path)
	if err == nil {
		if len(raw) != saltLen+secretLen {
			return nil, nil, errors.New("secret file has unexpected size")
		}
		return raw[:saltLen], raw[saltLen:], nil
	}
	if !os.IsNotExist(err) {
		return nil, nil, err
	}

	raw = make([]byte, saltLen+secretLen)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, nil, err
		}
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return nil, nil, err
	}

	return raw[:saltLen], raw[saltLen:], nil
}

// Seal implements [Sealer] using AES-256-GCM. A random 12-byte nonce is
// prepended to the ciphertext so Unseal can locate it: blob = nonce ‖
// ciphertext.
func (m *machineSealer) Seal(plaintext []byte) ([]byte, error) {
	gcm, err := m.aead()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...), nil
}

// Unseal implements [Sealer]. The blob must be at least as long as the GCM
// nonce. Returns an error if the blob is too short, the key is wrong, or
// the ciphertext fails its authentication tag.
func (m *machineSealer) Unseal(blob []byte) ([]byte, error) {
	gcm, err := m.aead()
	if err != nil {
		return nil, err
	}

	if len(blob) < gcm.NonceSize() {
		return nil, errors.New("sealed blob too short")
	}

	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("unseal: %w", err)
	}

	return plaintext, nil
}

func (m *machineSealer) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(m.key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
