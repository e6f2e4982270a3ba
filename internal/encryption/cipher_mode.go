package encryption

import (
	"crypto/cipher"
	"fmt"
	"strings"
)

// Mode represents the block cipher mode (ECB or CBC).
type Mode byte

const (
	// ModeCBC represents Cipher Block Chaining mode with a zero IV.
	ModeCBC Mode = iota
	// ModeECB represents Electronic Codebook mode.
	ModeECB
)

// ParseMode returns the Mode with the given (case-insensitive) name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cbc":
		return ModeCBC, nil
	case "ecb":
		return ModeECB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeCBC:
		return "cbc"
	case ModeECB:
		return "ecb"
	default:
		return fmt.Sprintf("mode(%d)", byte(m))
	}
}

// Encrypt encrypts plaintext with block in this mode.
func (m Mode) Encrypt(block cipher.Block, plaintext []byte) ([]byte, error) {
	switch m {
	case ModeCBC:
		return EncryptCBC(block, plaintext)
	case ModeECB:
		return EncryptECB(block, plaintext)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}
}

// Decrypt decrypts ciphertext with block in this mode. With strict set, malformed
// padding is reported instead of silently truncating the plaintext.
func (m Mode) Decrypt(block cipher.Block, ciphertext []byte, strict bool) ([]byte, error) {
	switch {
	case m == ModeCBC && strict:
		return DecryptCBCStrict(block, ciphertext)
	case m == ModeCBC:
		return DecryptCBC(block, ciphertext)
	case m == ModeECB && strict:
		return DecryptECBStrict(block, ciphertext)
	case m == ModeECB:
		return DecryptECB(block, ciphertext)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, m)
	}
}
