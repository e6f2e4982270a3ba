package cryptanalysis

import "math/bits"

// HammingDistance returns the number of differing bits between two equal-length buffers.
func HammingDistance(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	return hamming(a, b), nil
}

// hamming counts differing bits over the common prefix of a and b.
func hamming(a, b []byte) int {
	n := min(len(a), len(b))

	var distance int

	for i := range n {
		distance += bits.OnesCount8(a[i] ^ b[i])
	}

	return distance
}
