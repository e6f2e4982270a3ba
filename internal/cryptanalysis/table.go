package cryptanalysis

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
)

// Table maps uppercase characters to their expected frequency (in percent) in plaintext.
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	freqs map[rune]float64
}

// NewTable builds a Table from the given frequencies. Keys are folded to uppercase.
func NewTable(freqs map[rune]float64) Table {
	table := Table{freqs: make(map[rune]float64, len(freqs))}

	for r, f := range freqs {
		table.freqs[unicode.ToUpper(r)] = f
	}

	return table
}

// Frequency returns the expected frequency of r, and whether r is part of the table.
func (t Table) Frequency(r rune) (float64, bool) {
	f, ok := t.freqs[r]

	return f, ok
}

// Len returns the number of characters in the table.
func (t Table) Len() int {
	return len(t.freqs)
}

//nolint:gochecknoglobals // read-only after initialization
var english = NewTable(map[rune]float64{
	' ': 13.00,
	'E': 12.02, 'T': 9.10, 'A': 8.12, 'O': 7.68, 'I': 7.31, 'N': 6.95,
	'S': 6.28, 'R': 6.02, 'H': 5.92, 'D': 4.32, 'L': 3.98, 'U': 2.88,
	'C': 2.71, 'M': 2.61, 'F': 2.30, 'Y': 2.11, 'W': 2.09, 'G': 2.03,
	'P': 1.82, 'B': 1.49, 'V': 1.11, 'K': 0.69, 'X': 0.17, 'Q': 0.11,
	'J': 0.10, 'Z': 0.07,
})

// English returns the letter and space frequencies of English text.
func English() Table {
	return english
}

// LoadTable reads a JSONC object mapping single characters to frequencies, e.g.
//
//	{
//	  // most common
//	  " ": 13.0,
//	  "E": 12.02,
//	}
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		return Table{}, fmt.Errorf("reading table file %q: %w", path, err)
	}

	var raw map[string]float64
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &raw); err != nil {
		return Table{}, fmt.Errorf("parsing table file %q: %w", path, err)
	}

	freqs := make(map[rune]float64, len(raw))

	for key, f := range raw {
		if utf8.RuneCountInString(key) != 1 {
			return Table{}, fmt.Errorf("%w: key %q is not a single character", ErrInvalidTable, key)
		}

		if f < 0 {
			return Table{}, fmt.Errorf("%w: negative frequency for %q", ErrInvalidTable, key)
		}

		r, _ := utf8.DecodeRuneInString(key)
		freqs[r] = f
	}

	if len(freqs) == 0 {
		return Table{}, fmt.Errorf("%w: %q has no entries", ErrInvalidTable, path)
	}

	return NewTable(freqs), nil
}
