package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"fmt"
)

// BlockSize is the only block size supported by the block modes.
const BlockSize = aes.BlockSize

// NewCipher returns an AES block cipher for key.
func NewCipher(key []byte) (cipher.Block, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return block, nil
}

// EncryptCBC pads plaintext and encrypts it in CBC mode with an all-zero IV:
// the first block is encrypted as is, every later block is first XORed with the
// previous ciphertext block.
func EncryptCBC(block cipher.Block, plaintext []byte) ([]byte, error) {
	if block.BlockSize() != BlockSize {
		return nil, ErrUnsupportedBlockSize
	}

	padded := Pad(plaintext, BlockSize)
	ciphertext := make([]byte, len(padded))

	for start := 0; start < len(padded); start += BlockSize {
		src := padded[start : start+BlockSize]
		dst := ciphertext[start : start+BlockSize]

		if start > 0 {
			subtle.XORBytes(src, src, ciphertext[start-BlockSize:start])
		}

		block.Encrypt(dst, src)
	}

	return ciphertext, nil
}

// DecryptCBC reverses EncryptCBC. Blocks are processed from last to first; each
// decrypted block is XORed with the preceding ciphertext block, the first one is used as is.
// Padding is removed with Unpad, so tampered padding is not detected.
func DecryptCBC(block cipher.Block, ciphertext []byte) ([]byte, error) {
	plaintext, err := decryptCBCBlocks(block, ciphertext)
	if err != nil {
		return nil, err
	}

	return Unpad(plaintext), nil
}

// DecryptCBCStrict is DecryptCBC with validated padding.
func DecryptCBCStrict(block cipher.Block, ciphertext []byte) ([]byte, error) {
	plaintext, err := decryptCBCBlocks(block, ciphertext)
	if err != nil {
		return nil, err
	}

	unpadded, err := UnpadStrict(plaintext, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("removing padding: %w", err)
	}

	return unpadded, nil
}

func decryptCBCBlocks(block cipher.Block, ciphertext []byte) ([]byte, error) {
	if block.BlockSize() != BlockSize {
		return nil, ErrUnsupportedBlockSize
	}

	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))

	for start := len(ciphertext) - BlockSize; start >= 0; start -= BlockSize {
		dst := plaintext[start : start+BlockSize]

		block.Decrypt(dst, ciphertext[start:start+BlockSize])

		if start > 0 {
			subtle.XORBytes(dst, dst, ciphertext[start-BlockSize:start])
		}
	}

	return plaintext, nil
}
