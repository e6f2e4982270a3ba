package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gobreak/internal/logic"
)

// NewScoreCommand creates a new cobra command for the score subcommand.
func NewScoreCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "score [flags] [files...]",
		Short:   "Rate how English-like plain text is",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunScore),
	}

	addTableFlag(cmd)

	return cmd
}

// NewSingleCommand creates a new cobra command for the single subcommand.
func NewSingleCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "single [flags] [files...]",
		Aliases: []string{"sb"},
		Short:   "Break single-byte XOR ciphertext",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunSingle),
	}

	addTableFlag(cmd)

	return cmd
}

// NewDetectSingleCommand creates a new cobra command for the detect-single subcommand.
func NewDetectSingleCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "detect-single [flags] [files...]",
		Short:   "Find the single-byte XOR encrypted line of a corpus",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunDetectSingle),
	}

	addTableFlag(cmd)

	return cmd
}

// NewKeySizeCommand creates a new cobra command for the keysize subcommand.
func NewKeySizeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keysize [flags] [files...]",
		Short:   "Rank likely repeating-key XOR key sizes",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunKeySize),
	}

	addKeySizeFlags(cmd)

	cmd.Flags().IntP("top", "n", 5, "Number of key sizes to print, 0 for all")

	return cmd
}

// NewRepeatingCommand creates a new cobra command for the repeating subcommand.
func NewRepeatingCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repeating [flags] [files...]",
		Aliases: []string{"rk"},
		Short:   "Recover the key of repeating-key XOR ciphertext",
		Args:    cobra.ArbitraryArgs,
		PreRunE: preRun(cfg),
		RunE:    run(cfg, logic.RunRepeating),
	}

	addTableFlag(cmd)
	addKeySizeFlags(cmd)

	cmd.Flags().BoolP("plaintext", "P", false, "Print the decrypted plain text")

	return cmd
}
