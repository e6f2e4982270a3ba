package encryption

import "errors"

var (
	// ErrEmptyData is returned when attempting to unpad empty data.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext is empty or not aligned with the block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a positive multiple of block size")
	// ErrUnsupportedBlockSize is returned for ciphers whose block size is not 16 bytes.
	ErrUnsupportedBlockSize = errors.New("cipher block size must be 16 bytes")
	// ErrInvalidKeySize is returned when a key size is not positive.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrSameOutput is returned when the output path would overwrite the input file.
	ErrSameOutput = errors.New("output path equals input path")
	// ErrUnknownMode is returned for mode names other than ecb and cbc.
	ErrUnknownMode = errors.New("unknown cipher mode")
)
