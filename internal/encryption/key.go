package encryption

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the AES-128 key length used by default.
const KeySize = 16

// GenerateKey reads a size-byte key from random.
// Pass crypto/rand.Reader for real keys and a seeded source for reproducible tests.
func GenerateKey(random io.Reader, size int) ([]byte, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, size)
	}

	key := make([]byte, size)
	if _, err := io.ReadFull(random, key); err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	return key, nil
}

// DeriveKey derives a size-byte key from a passphrase with HKDF-SHA256.
func DeriveKey(passphrase string, size int) ([]byte, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKeySize, size)
	}

	reader := hkdf.New(sha256.New, []byte(passphrase), nil, []byte("gobreak/passphrase"))
	key := make([]byte, size)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	return key, nil
}
