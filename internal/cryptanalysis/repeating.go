package cryptanalysis

import "fmt"

// KeyRecovery is the result of breaking a repeating-key XOR ciphertext.
type KeyRecovery struct {
	// KeySize is the estimated key length.
	KeySize int
	// Key holds the recovered bytes of every solved column, in column order.
	Key []byte
	// Unresolved lists the columns for which no key byte was found.
	// Key is shorter than KeySize by exactly len(Unresolved).
	Unresolved []int
}

// Complete reports whether every key position was recovered.
func (k KeyRecovery) Complete() bool {
	return len(k.Unresolved) == 0
}

// BreakRepeatingKey estimates the key size of ciphertext, then recovers each key
// byte by breaking the matching column as single-byte XOR.
func BreakRepeatingKey(t Table, ciphertext []byte, minSize, maxSize int) (KeyRecovery, error) {
	size, err := EstimateKeySize(ciphertext, minSize, maxSize)
	if err != nil {
		return KeyRecovery{}, fmt.Errorf("estimating key size: %w", err)
	}

	recovery := KeyRecovery{KeySize: size, Key: make([]byte, 0, size)}

	for i, column := range Transpose(ciphertext, size) {
		candidate, ok := BreakSingleByte(t, column)
		if !ok {
			recovery.Unresolved = append(recovery.Unresolved, i)

			continue
		}

		recovery.Key = append(recovery.Key, candidate.Key)
	}

	return recovery, nil
}
