package cryptanalysis_test

import (
	"errors"
	"testing"

	"github.com/idelchi/gobreak/internal/cryptanalysis"
)

type hammingCase struct {
	A           string `yaml:"a"`
	B           string `yaml:"b"`
	Distance    int    `yaml:"distance"`
	Description string `yaml:"description"`
}

func TestHammingDistance(t *testing.T) {
	t.Parallel()

	var cases []hammingCase

	loadGolden(t, "hamming", &cases)

	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			t.Parallel()

			got, err := cryptanalysis.HammingDistance([]byte(tc.A), []byte(tc.B))
			if err != nil {
				t.Fatalf("HammingDistance(%q, %q) error: %v", tc.A, tc.B, err)
			}

			if got != tc.Distance {
				t.Errorf("HammingDistance(%q, %q) = %d, want %d", tc.A, tc.B, got, tc.Distance)
			}

			reverse, _ := cryptanalysis.HammingDistance([]byte(tc.B), []byte(tc.A))
			if reverse != got {
				t.Errorf("HammingDistance is not symmetric: %d != %d", reverse, got)
			}

			if (got == 0) != (tc.A == tc.B) {
				t.Errorf("HammingDistance(%q, %q) = %d, zero must mean equal", tc.A, tc.B, got)
			}
		})
	}
}

func TestHammingDistanceLengthMismatch(t *testing.T) {
	t.Parallel()

	if _, err := cryptanalysis.HammingDistance([]byte("ab"), []byte("abc")); !errors.Is(err, cryptanalysis.ErrLengthMismatch) {
		t.Errorf("error = %v, want %v", err, cryptanalysis.ErrLengthMismatch)
	}
}
