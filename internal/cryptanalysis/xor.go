package cryptanalysis

// XORByte returns src with every byte XORed with key.
func XORByte(src []byte, key byte) []byte {
	dst := make([]byte, len(src))

	for i, b := range src {
		dst[i] = b ^ key
	}

	return dst
}

// XORRepeating returns src XORed with key, cycling through key as needed.
func XORRepeating(src, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	dst := make([]byte, len(src))

	for i, b := range src {
		dst[i] = b ^ key[i%len(key)]
	}

	return dst, nil
}

// XORFixed returns the XOR combination of two equal-length buffers.
func XORFixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	dst := make([]byte, len(a))

	for i := range a {
		dst[i] = a[i] ^ b[i]
	}

	return dst, nil
}
