// Command gobreak scores and breaks classical XOR ciphers, fingerprints ECB
// ciphertext, and encrypts or decrypts with AES in ECB or CBC mode.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/idelchi/gobreak/internal/commands"
	"github.com/idelchi/gobreak/internal/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial & generated by unknown"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the command line and returns the process exit code.
// The root command silences errors, so they are printed here.
func run(args []string, stderr io.Writer) int {
	root := commands.NewRootCommand(&config.Config{}, version)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	return 0
}
