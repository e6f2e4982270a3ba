package codec

import (
	"fmt"
	"strings"
)

// Format selects how ciphertext is represented as text.
type Format string

const (
	// Hex is lowercase hexadecimal text.
	Hex Format = "hex"
	// Base64 is standard, padded base64 text.
	Base64 Format = "base64"
	// Raw is the bytes themselves.
	Raw Format = "raw"
)

// ParseFormat returns the Format with the given (case-insensitive) name.
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(name))); format {
	case Hex, Base64, Raw:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Decode converts text in this format into bytes.
func (f Format) Decode(text []byte) ([]byte, error) {
	switch f {
	case Hex:
		return DecodeHex(string(text))
	case Base64:
		return DecodeBase64(string(text))
	case Raw:
		return text, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Encode converts bytes into text in this format.
func (f Format) Encode(data []byte) ([]byte, error) {
	switch f {
	case Hex:
		return []byte(EncodeHex(data)), nil
	case Base64:
		return []byte(EncodeBase64(data)), nil
	case Raw:
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}
