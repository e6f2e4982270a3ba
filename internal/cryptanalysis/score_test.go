package cryptanalysis_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/idelchi/gobreak/internal/cryptanalysis"
)

func TestScore(t *testing.T) {
	t.Parallel()

	english := cryptanalysis.English()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{name: "empty", text: "", want: 0},
		{name: "only whitespace", text: " \t\n ", want: 0},
		{name: "unknown characters", text: "!?#", want: 0},
		{name: "single letter", text: "E", want: math.Sqrt(12.02)},
		{name: "trimmed", text: "  e\n", want: math.Sqrt(12.02)},
		{name: "mixed", text: "ee!!", want: math.Sqrt(12.02 * 2 / 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cryptanalysis.Score(english, []byte(tt.text)); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestScoreIgnoresCase(t *testing.T) {
	t.Parallel()

	english := cryptanalysis.English()

	lower := cryptanalysis.Score(english, []byte("the quick brown fox"))
	upper := cryptanalysis.Score(english, []byte("THE QUICK BROWN FOX"))

	if lower != upper {
		t.Errorf("Score differs by case: %v != %v", lower, upper)
	}
}

func TestScorePrefersEnglish(t *testing.T) {
	t.Parallel()

	english := cryptanalysis.English()

	plain := cryptanalysis.Score(english, []byte("Now that the party is jumping"))
	noise := cryptanalysis.Score(english, []byte("x{zq~jvv#kq|j#jp#qwxj|&"))

	if plain <= noise {
		t.Errorf("Score(english) = %v, want more than Score(noise) = %v", plain, noise)
	}
}

func TestLoadTable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	valid := filepath.Join(dir, "table.jsonc")
	content := `{
		// vowels only
		"a": 50.0,
		"E": 50.0, // trailing comma is fine
	}`

	if err := os.WriteFile(valid, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := cryptanalysis.LoadTable(valid)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}

	if f, ok := table.Frequency('A'); !ok || f != 50 {
		t.Errorf("Frequency('A') = %v, %v, want 50, true", f, ok)
	}

	if _, ok := table.Frequency('T'); ok {
		t.Error("Frequency('T') found, want missing")
	}

	for name, body := range map[string]string{
		"multi.jsonc":    `{"ab": 1}`,
		"negative.jsonc": `{"a": -1}`,
		"empty.jsonc":    `{}`,
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}

		if _, err := cryptanalysis.LoadTable(path); !errors.Is(err, cryptanalysis.ErrInvalidTable) {
			t.Errorf("LoadTable(%s) error = %v, want %v", name, err, cryptanalysis.ErrInvalidTable)
		}
	}

	if _, err := cryptanalysis.LoadTable(filepath.Join(dir, "missing.jsonc")); err == nil {
		t.Error("LoadTable(missing) succeeded, want error")
	}
}
