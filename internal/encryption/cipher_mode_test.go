package encryption_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/idelchi/gobreak/internal/encryption"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]encryption.Mode{"cbc": encryption.ModeCBC, "ECB": encryption.ModeECB} {
		got, err := encryption.ParseMode(name)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", name, err)
		}

		if got != want || got.String() != want.String() {
			t.Errorf("ParseMode(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := encryption.ParseMode("ctr"); !errors.Is(err, encryption.ErrUnknownMode) {
		t.Errorf("ParseMode(ctr) error = %v, want %v", err, encryption.ErrUnknownMode)
	}
}

func TestModeRoundTrip(t *testing.T) {
	t.Parallel()

	block := newCipher(t)
	plaintext := []byte("mode round trip")

	for _, mode := range []encryption.Mode{encryption.ModeCBC, encryption.ModeECB} {
		for _, strict := range []bool{false, true} {
			ciphertext, err := mode.Encrypt(block, plaintext)
			if err != nil {
				t.Fatalf("%s: Encrypt error: %v", mode, err)
			}

			decrypted, err := mode.Decrypt(block, ciphertext, strict)
			if err != nil {
				t.Fatalf("%s: Decrypt error: %v", mode, err)
			}

			if !bytes.Equal(decrypted, plaintext) {
				t.Errorf("%s (strict %v): round trip = %q", mode, strict, decrypted)
			}
		}
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	first, err := encryption.GenerateKey(rand.NewChaCha8([32]byte{1}), encryption.KeySize)
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	second, err := encryption.GenerateKey(rand.NewChaCha8([32]byte{1}), encryption.KeySize)
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}

	if len(first) != encryption.KeySize || !bytes.Equal(first, second) {
		t.Errorf("GenerateKey with equal seeds = %x and %x", first, second)
	}

	other, _ := encryption.GenerateKey(rand.NewChaCha8([32]byte{2}), encryption.KeySize)
	if bytes.Equal(first, other) {
		t.Error("GenerateKey with different seeds returned equal keys")
	}

	if _, err := encryption.GenerateKey(rand.NewChaCha8([32]byte{}), 0); !errors.Is(err, encryption.ErrInvalidKeySize) {
		t.Errorf("GenerateKey(0) error = %v, want %v", err, encryption.ErrInvalidKeySize)
	}
}

func TestDeriveKey(t *testing.T) {
	t.Parallel()

	a, err := encryption.DeriveKey("correct horse", encryption.KeySize)
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	b, _ := encryption.DeriveKey("correct horse", encryption.KeySize)
	c, _ := encryption.DeriveKey("battery staple", encryption.KeySize)

	if len(a) != encryption.KeySize || !bytes.Equal(a, b) {
		t.Errorf("DeriveKey is not deterministic: %x, %x", a, b)
	}

	if bytes.Equal(a, c) {
		t.Error("DeriveKey returned equal keys for different passphrases")
	}
}
