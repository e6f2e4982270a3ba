package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/idelchi/gobreak/internal/commands"
	"github.com/idelchi/gobreak/internal/config"
)

const (
	hexInput    = "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d"
	base64Input = "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// The root command binds flags on the global viper instance.
	viper.Reset()

	var out bytes.Buffer

	root := commands.NewRootCommand(&config.Config{}, "test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func writeInput(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "input.hex")
	if err := os.WriteFile(path, []byte(hexInput+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestConvertFlags(t *testing.T) {
	out, err := execute(t, "convert", "--from", "hex", "--to", "base64", writeInput(t))
	if err != nil {
		t.Fatalf("convert error: %v", err)
	}

	if out != base64Input+"\n" {
		t.Errorf("convert output = %q, want %q", out, base64Input+"\n")
	}
}

func TestConvertEnvironment(t *testing.T) {
	t.Setenv("GOBREAK_TO", "hex")

	out, err := execute(t, "convert", writeInput(t))
	if err != nil {
		t.Fatalf("convert error: %v", err)
	}

	if out != hexInput+"\n" {
		t.Errorf("convert output = %q, want %q", out, hexInput+"\n")
	}
}

func TestInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown encoding", args: []string{"single", "--encoding", "rot13"}, want: "--encoding"},
		{name: "missing key", args: []string{"encrypt"}, want: config.ErrMissingKey.Error()},
		{
			name: "exclusive keys",
			args: []string{"encrypt", "--key", "00112233445566778899aabbccddeeff", "--passphrase", "x"},
			want: "--key",
		},
		{name: "inverted range", args: []string{"keysize", "--min-key-size", "8", "--max-key-size", "4"}, want: "--max-key-size"},
		{name: "non-aes key size", args: []string{"keygen", "--size", "7"}, want: "--size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatalf("%v succeeded, want a validation error", tt.args)
			}

			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("%v error = %q, want it to mention %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestKeygenSize(t *testing.T) {
	out, err := execute(t, "keygen", "--size", "32")
	if err != nil {
		t.Fatalf("keygen error: %v", err)
	}

	if got := len(strings.TrimSpace(out)); got != 64 {
		t.Errorf("keygen printed %d hex digits, want 64", got)
	}
}
