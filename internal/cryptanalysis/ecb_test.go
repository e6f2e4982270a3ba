package cryptanalysis_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/gobreak/internal/codec"
	"github.com/idelchi/gobreak/internal/cryptanalysis"
	"github.com/idelchi/gobreak/internal/encryption"
)

func TestScoreECB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		want    int
		wantErr error
	}{
		{name: "one block", input: make([]byte, 16), want: 0},
		{name: "identical blocks", input: bytes.Repeat([]byte("0123456789abcdef"), 4), want: 0},
		// One pair differing in all 128 bits, divided by two blocks.
		{name: "opposite blocks", input: append(make([]byte, 16), bytes.Repeat([]byte{0xff}, 16)...), want: 64},
		// Partial trailing block is compared over its own 4 bytes: 32 bits / 2 blocks.
		{name: "partial block", input: append(make([]byte, 16), 0xff, 0xff, 0xff, 0xff), want: 16},
		{name: "too short", input: make([]byte, 15), wantErr: cryptanalysis.ErrNoFullBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cryptanalysis.ScoreECB(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ScoreECB error = %v, want %v", err, tt.wantErr)
			}

			if err == nil && got != tt.want {
				t.Errorf("ScoreECB = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDetectECB(t *testing.T) {
	t.Parallel()

	block, err := encryption.NewCipher([]byte("YELLOW SUBMARINE"))
	if err != nil {
		t.Fatal(err)
	}

	plaintext := bytes.Repeat([]byte("We all live in a yellow submarine"), 5)

	lines := make([]string, 0, 5)

	for i := range 4 {
		// Each CBC line differs so none of them repeats a block.
		ciphertext, err := encryption.EncryptCBC(block, append([]byte{byte(i)}, plaintext...))
		if err != nil {
			t.Fatal(err)
		}

		lines = append(lines, codec.EncodeHex(ciphertext))
	}

	ecb, err := encryption.EncryptECB(block, bytes.Repeat([]byte("YELLOW SUBMARINE"), 10))
	if err != nil {
		t.Fatal(err)
	}

	lines = append(lines[:2], append([]string{codec.EncodeHex(ecb)}, lines[2:]...)...)

	got, err := cryptanalysis.DetectECBHex(lines)
	if err != nil {
		t.Fatalf("DetectECBHex error: %v", err)
	}

	if got != lines[2] {
		t.Errorf("DetectECBHex picked %q, want the ECB line", got)
	}
}

func TestDetectECBFirstMinimumWins(t *testing.T) {
	t.Parallel()

	same := make([]byte, 32)

	got, err := cryptanalysis.DetectECB([][]byte{append(make([]byte, 16), bytes.Repeat([]byte{1}, 16)...), same, same})
	if err != nil {
		t.Fatalf("DetectECB error: %v", err)
	}

	if got != 1 {
		t.Errorf("DetectECB = %d, want 1", got)
	}
}

func TestDetectECBErrors(t *testing.T) {
	t.Parallel()

	if _, err := cryptanalysis.DetectECB(nil); !errors.Is(err, cryptanalysis.ErrNoCandidates) {
		t.Errorf("DetectECB(nil) error = %v, want %v", err, cryptanalysis.ErrNoCandidates)
	}

	if _, err := cryptanalysis.DetectECB([][]byte{make([]byte, 32), make([]byte, 3)}); !errors.Is(err, cryptanalysis.ErrNoFullBlock) {
		t.Errorf("DetectECB(short) error = %v, want %v", err, cryptanalysis.ErrNoFullBlock)
	}

	if _, err := cryptanalysis.DetectECBHex([]string{"not hex"}); err == nil {
		t.Error("DetectECBHex accepted invalid hex")
	}
}
