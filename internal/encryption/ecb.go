package encryption

import (
	"crypto/cipher"
	"fmt"
)

// EncryptECB pads plaintext and encrypts every block independently.
func EncryptECB(block cipher.Block, plaintext []byte) ([]byte, error) {
	if block.BlockSize() != BlockSize {
		return nil, ErrUnsupportedBlockSize
	}

	padded := Pad(plaintext, BlockSize)
	ciphertext := make([]byte, len(padded))

	for i := 0; i < len(padded); i += BlockSize {
		block.Encrypt(ciphertext[i:i+BlockSize], padded[i:i+BlockSize])
	}

	return ciphertext, nil
}

// DecryptECB decrypts every block independently and removes padding with Unpad.
func DecryptECB(block cipher.Block, ciphertext []byte) ([]byte, error) {
	plaintext, err := decryptECBBlocks(block, ciphertext)
	if err != nil {
		return nil, err
	}

	return Unpad(plaintext), nil
}

// DecryptECBStrict is DecryptECB with validated padding.
func DecryptECBStrict(block cipher.Block, ciphertext []byte) ([]byte, error) {
	plaintext, err := decryptECBBlocks(block, ciphertext)
	if err != nil {
		return nil, err
	}

	unpadded, err := UnpadStrict(plaintext, BlockSize)
	if err != nil {
		return nil, fmt.Errorf("removing padding: %w", err)
	}

	return unpadded, nil
}

func decryptECBBlocks(block cipher.Block, ciphertext []byte) ([]byte, error) {
	if block.BlockSize() != BlockSize {
		return nil, ErrUnsupportedBlockSize
	}

	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))

	for i := 0; i < len(ciphertext); i += BlockSize {
		block.Decrypt(plaintext[i:i+BlockSize], ciphertext[i:i+BlockSize])
	}

	return plaintext, nil
}
