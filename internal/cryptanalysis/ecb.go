package cryptanalysis

import (
	"fmt"

	"github.com/idelchi/gobreak/internal/codec"
)

// blockSize is the cipher block length assumed by ECB fingerprinting.
const blockSize = 16

// ScoreECB sums the Hamming distance of every pair of 16-byte blocks and divides
// it (integer division) by the number of blocks. Repeated plaintext blocks under
// ECB produce identical ciphertext blocks and pull the score down.
//
// A trailing partial block counts as a block and is compared over its own length.
func ScoreECB(ciphertext []byte) (int, error) {
	if len(ciphertext) < blockSize {
		return 0, ErrNoFullBlock
	}

	blocks := make([][]byte, 0, (len(ciphertext)+blockSize-1)/blockSize)
	for start := 0; start < len(ciphertext); start += blockSize {
		blocks = append(blocks, ciphertext[start:min(start+blockSize, len(ciphertext))])
	}

	var total int

	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			total += hamming(blocks[i], blocks[j])
		}
	}

	return total / len(blocks), nil
}

// DetectECB returns the index of the ciphertext most likely encrypted in ECB mode.
// The first lowest score wins.
func DetectECB(candidates [][]byte) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	best, bestScore := -1, 0

	for i, candidate := range candidates {
		score, err := ScoreECB(candidate)
		if err != nil {
			return 0, fmt.Errorf("scoring candidate %d: %w", i, err)
		}

		if best < 0 || score < bestScore {
			best, bestScore = i, score
		}
	}

	return best, nil
}

// DetectECBHex decodes hex-encoded ciphertexts and returns the one most likely
// encrypted in ECB mode, exactly as it was given.
func DetectECBHex(lines []string) (string, error) {
	candidates := make([][]byte, len(lines))

	for i, line := range lines {
		decoded, err := codec.DecodeHex(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}

		candidates[i] = decoded
	}

	index, err := DetectECB(candidates)
	if err != nil {
		return "", err
	}

	return lines[index], nil
}
