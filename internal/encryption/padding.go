package encryption

import (
	"bytes"
	"fmt"
)

// Pad returns a copy of data with PKCS#7 padding up to a multiple of blockSize.
// Aligned input receives a full block of padding.
func Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)

	return append(padded, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// Unpad drops as many trailing bytes as the value of the last byte.
//
// The padding bytes are not checked: malformed padding silently truncates the
// plaintext instead of failing, and a count larger than data empties it.
func Unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}

	padding := int(data[len(data)-1])

	return data[:max(0, len(data)-padding)]
}

// UnpadStrict removes PKCS#7 padding from data after checking that every padding
// byte holds the padding length and that the length lies in [1, blockSize].
func UnpadStrict(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, ErrEmptyData
	}

	padding := int(data[length-1])
	if padding == 0 || padding > length || padding > blockSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidPadding, padding)
	}

	for i := length - padding; i < length; i++ {
		if data[i] != byte(padding) {
			return nil, ErrInvalidPadding
		}
	}

	return data[:length-padding], nil
}
