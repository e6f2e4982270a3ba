package cryptanalysis

import (
	"bytes"
	"math"
	"unicode"
)

// Score rates how closely text follows the distribution in t; higher is more plausible.
//
// Surrounding whitespace is trimmed and characters are counted case-insensitively.
// Each character c present in both text and table adds sqrt(t[c] * count[c] / n),
// where n is the trimmed length in bytes. Text is expected to be valid UTF-8.
func Score(t Table, text []byte) float64 {
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) == 0 {
		return 0
	}

	counts := make(map[rune]int)
	order := make([]rune, 0, t.Len())

	for _, r := range string(trimmed) {
		r = unicode.ToUpper(r)

		if _, ok := t.Frequency(r); !ok {
			continue
		}

		if counts[r] == 0 {
			order = append(order, r)
		}

		counts[r]++
	}

	n := float64(len(trimmed))

	var rating float64

	// Fixed accumulation order keeps ratings bit-identical across runs.
	for _, r := range order {
		f, _ := t.Frequency(r)
		rating += math.Sqrt(f * float64(counts[r]) / n)
	}

	return rating
}
