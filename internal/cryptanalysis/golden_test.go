package cryptanalysis_test

import (
	"os"
	"testing"

	"github.com/goccy/go-yaml"
)

// loadGolden unmarshals testdata/<name>.yml into out.
func loadGolden(t *testing.T, name string, out any) {
	t.Helper()

	data, err := os.ReadFile("testdata/" + name + ".yml")
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
}
