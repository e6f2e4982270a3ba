package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gobreak/internal/cryptanalysis"
	"github.com/idelchi/gobreak/internal/fileutil"
	"github.com/idelchi/gobreak/internal/logic"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// preRun returns a PreRunE handler that resolves positional args into cfg.Files
// and validates the configuration. Standard input is read when no args are given.
func preRun(cfg *config.Config) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			cfg.Files = []string{fileutil.Stdin}
		} else {
			cfg.Files = args
		}

		return cobraext.Validate(cfg, cfg)
	}
}

// run adapts a logic runner to a cobra RunE handler writing to the command's streams.
func run(cfg *config.Config, runner func(*config.Config, logic.Streams) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runner(cfg, logic.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()})
	}
}

func addTableFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("table", "t", "", "Path to a JSONC letter frequency table, defaults to English")
}

func addKeySizeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("min-key-size", cryptanalysis.DefaultMinKeySize, "Smallest key size to try")
	cmd.Flags().Int("max-key-size", cryptanalysis.DefaultMaxKeySize, "Largest key size to try")
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mode", "m", "cbc", "Block cipher mode (ecb, cbc)")
	cmd.Flags().StringP("key", "k", "", "AES key (16, 24 or 32 bytes, hex-encoded)")
	cmd.Flags().StringP("key-file", "f", "", "Path to the file with the hex-encoded AES key")
	cmd.Flags().StringP("passphrase", "p", "", "Passphrase to derive an AES-128 key from")
	cmd.Flags().String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	cmd.Flags().String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
}
