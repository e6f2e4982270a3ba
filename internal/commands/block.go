package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gobreak/internal/encryption"
	"github.com/idelchi/gobreak/internal/logic"
)

// NewDetectECBCommand creates a new cobra command for the detect-ecb subcommand.
func NewDetectECBCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "detect-ecb [flags] [files...]",
		Short:   "Find the ECB encrypted line of a corpus",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunDetectECB),
	}
}

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] [files...]",
		Aliases: []string{"enc"},
		Short:   "Encrypt files with AES",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunCipher),
	}

	addKeyFlags(cmd)

	return cmd
}

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] [files...]",
		Aliases: []string{"dec"},
		Short:   "Decrypt files with AES",
		Args:    cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := preRun(cfg)(cmd, args); err != nil {
				return err
			}

			cfg.Decrypt = true

			return nil
		},
		RunE: run(cfg, logic.RunCipher),
	}

	addKeyFlags(cmd)

	cmd.Flags().Bool("strict", false, "Reject malformed padding instead of stripping it blindly")

	return cmd
}

// NewKeygenCommand creates a new cobra command for the keygen subcommand.
func NewKeygenCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keygen [flags]",
		Aliases: []string{"gen"},
		Short:   "Generate a random AES key",
		Args:    cobra.NoArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunKeygen),
	}

	cmd.Flags().Int("size", encryption.KeySize, "Key size in bytes (16, 24 or 32 for AES)")

	return cmd
}

// NewConvertCommand creates a new cobra command for the convert subcommand.
func NewConvertCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [flags] [files...]",
		Short:   "Convert between hex, base64 and raw bytes",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunConvert),
	}

	cmd.Flags().String("from", "hex", "Input encoding (hex, base64, raw)")
	cmd.Flags().String("to", "base64", "Output encoding (hex, base64, raw)")

	return cmd
}
