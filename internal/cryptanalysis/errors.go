package cryptanalysis

import "errors"

var (
	// ErrLengthMismatch is returned when two buffers must have equal length but do not.
	ErrLengthMismatch = errors.New("buffers differ in length")
	// ErrEmptyKey is returned when a repeating key has no bytes.
	ErrEmptyKey = errors.New("empty key")
	// ErrCiphertextTooShort is returned when a ciphertext cannot hold four blocks of the largest key size.
	ErrCiphertextTooShort = errors.New("ciphertext too short for key size search")
	// ErrInvalidKeySizeRange is returned when the key size bounds are not 1 <= min <= max.
	ErrInvalidKeySizeRange = errors.New("invalid key size range")
	// ErrNoFullBlock is returned when a ciphertext holds less than one block.
	ErrNoFullBlock = errors.New("ciphertext shorter than one block")
	// ErrNoCandidates is returned when ECB detection receives no ciphertexts.
	ErrNoCandidates = errors.New("no candidates")
	// ErrInvalidTable is returned when a frequency table file is malformed.
	ErrInvalidTable = errors.New("invalid frequency table")
)
