package codec

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EncodeHex returns the lowercase hexadecimal encoding of data.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex decodes hexadecimal text, ignoring whitespace and control characters.
// Invalid digits and an odd number of digits are reported as errors.
func DecodeHex(text string) ([]byte, error) {
	data, err := hex.DecodeString(string(strip([]byte(text))))
	if err != nil {
		return nil, fmt.Errorf("decoding hex: %w", err)
	}

	return data, nil
}

// EncodeBase64 returns the standard, padded base64 encoding of data.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 decodes standard, padded base64 text, ignoring whitespace and control characters.
func DecodeBase64(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(string(strip([]byte(text))))
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}

	return data, nil
}

// strip drops ASCII whitespace and control characters.
func strip(text []byte) []byte {
	out := make([]byte, 0, len(text))

	for _, c := range text {
		if c <= ' ' || c == 0x7f {
			continue
		}

		out = append(out, c)
	}

	return out
}
