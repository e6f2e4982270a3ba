package cryptanalysis

import "unicode/utf8"

// maxKey bounds the single-byte key search to the ASCII range.
const maxKey = 0x7f

// Candidate is the outcome of trying one single-byte key against a ciphertext.
type Candidate struct {
	// Rating is the Score of Plaintext; higher is better.
	Rating float64
	// Key is the byte the ciphertext was XORed with.
	Key byte
	// Plaintext is the decrypted ciphertext.
	Plaintext []byte
}

// BreakSingleByte finds the ASCII key that turns ciphertext into the most plausible text.
//
// Keys whose output is not valid UTF-8 are skipped. Among equally rated keys the
// numerically highest wins. The boolean is false when no key produced valid UTF-8.
func BreakSingleByte(t Table, ciphertext []byte) (Candidate, bool) {
	var (
		best  Candidate
		found bool
	)

	for key := 0; key <= maxKey; key++ {
		plaintext := XORByte(ciphertext, byte(key))
		if !utf8.Valid(plaintext) {
			continue
		}

		rating := Score(t, plaintext)

		if !found || rating >= best.Rating {
			best = Candidate{Rating: rating, Key: byte(key), Plaintext: plaintext}
			found = true
		}
	}

	return best, found
}

// Detection locates the single-byte XOR encrypted line in a corpus.
type Detection struct {
	// Index of the line in the corpus.
	Index int
	Candidate
}

// DetectSingleByte breaks every line and returns the one with the highest rating.
// The first line wins ties. The boolean is false when no line could be broken.
func DetectSingleByte(t Table, lines [][]byte) (Detection, bool) {
	var (
		best  Detection
		found bool
	)

	for i, line := range lines {
		candidate, ok := BreakSingleByte(t, line)
		if !ok {
			continue
		}

		if !found || candidate.Rating > best.Rating {
			best = Detection{Index: i, Candidate: candidate}
			found = true
		}
	}

	return best, found
}
