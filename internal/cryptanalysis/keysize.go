package cryptanalysis

import (
	"fmt"
	"slices"
)

const (
	// DefaultMinKeySize is the smallest repeating key length tried by default.
	DefaultMinKeySize = 2
	// DefaultMaxKeySize is the largest repeating key length tried by default.
	DefaultMaxKeySize = 40

	// sampleChunks is the number of leading key-sized chunks compared per size.
	sampleChunks = 4
)

// KeySizeScore is the normalized edit distance observed for one key size.
type KeySizeScore struct {
	Size     int
	Distance float64
}

// EstimateKeySize returns the key size in [minSize, maxSize] with the smallest
// normalized distance. Ties go to the smaller size.
func EstimateKeySize(ciphertext []byte, minSize, maxSize int) (int, error) {
	if err := checkKeySizeRange(ciphertext, minSize, maxSize); err != nil {
		return 0, err
	}

	best := KeySizeScore{Size: minSize, Distance: keySizeDistance(ciphertext, minSize)}

	for size := minSize + 1; size <= maxSize; size++ {
		if distance := keySizeDistance(ciphertext, size); distance < best.Distance {
			best = KeySizeScore{Size: size, Distance: distance}
		}
	}

	return best.Size, nil
}

// RankKeySizes returns the distance of every key size in [minSize, maxSize],
// most likely first.
func RankKeySizes(ciphertext []byte, minSize, maxSize int) ([]KeySizeScore, error) {
	if err := checkKeySizeRange(ciphertext, minSize, maxSize); err != nil {
		return nil, err
	}

	scores := make([]KeySizeScore, 0, maxSize-minSize+1)

	for size := minSize; size <= maxSize; size++ {
		scores = append(scores, KeySizeScore{Size: size, Distance: keySizeDistance(ciphertext, size)})
	}

	slices.SortStableFunc(scores, func(a, b KeySizeScore) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		default:
			return 0
		}
	})

	return scores, nil
}

func checkKeySizeRange(ciphertext []byte, minSize, maxSize int) error {
	if minSize < 1 || minSize > maxSize {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidKeySizeRange, minSize, maxSize)
	}

	if len(ciphertext) < sampleChunks*maxSize {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrCiphertextTooShort, sampleChunks*maxSize, len(ciphertext))
	}

	return nil
}

// keySizeDistance averages the pairwise Hamming distance of the first four
// size-byte chunks, each divided by size.
func keySizeDistance(ciphertext []byte, size int) float64 {
	chunks := make([][]byte, sampleChunks)
	for i := range chunks {
		chunks[i] = ciphertext[i*size : (i+1)*size]
	}

	var (
		total float64
		pairs int
	)

	for i := range chunks {
		for j := i + 1; j < len(chunks); j++ {
			total += float64(hamming(chunks[i], chunks[j])) / float64(size)
			pairs++
		}
	}

	return total / float64(pairs)
}
