package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewRootCommand creates the root command with common configuration.
// Common flags are persistent so every subcommand binds them.
// Flags can also be set through environment variables prefixed with GOBREAK_.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	root := cobraext.NewDefaultRootCommand(version)

	root.Use = "gobreak [flags] command [flags]"
	root.Short = "Classical cipher toolkit"
	root.Long = `Score and break single-byte and repeating-key XOR ciphertexts, detect ECB encrypted
lines, and encrypt or decrypt with AES in ECB or CBC mode.
Inputs are files given as arguments, or standard input when none (or "-") is given.`

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print statistics to standard error")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().StringP("encoding", "e", "hex", "Encoding of ciphertext input and output (hex, base64, raw)")

	root.AddCommand(
		NewScoreCommand(cfg),
		NewSingleCommand(cfg),
		NewDetectSingleCommand(cfg),
		NewKeySizeCommand(cfg),
		NewRepeatingCommand(cfg),
		NewDetectECBCommand(cfg),
		NewEncryptCommand(cfg),
		NewDecryptCommand(cfg),
		NewKeygenCommand(cfg),
		NewConvertCommand(cfg),
	)

	return root
}
