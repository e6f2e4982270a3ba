// Package config holds the runtime configuration of gobreak.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

var (
	// ErrUsage wraps every configuration error.
	ErrUsage = errors.New("usage error")

	// ErrMissingKey is returned when a cipher command has no key source.
	ErrMissingKey = errors.New("one of --key, --key-file or --passphrase is required")
)

// Config represents the configuration of every gobreak command.
// Fields are filled from flags and GOBREAK_* environment variables.
type Config struct {
	// Common flags
	Show     bool
	Quiet    bool
	Stats    bool
	Parallel int    `label:"--parallel" validate:"min=1"`
	Encoding string `label:"--encoding" validate:"oneof=hex base64 raw"`

	// Analysis flags
	Table      string `label:"--table"`
	MinKeySize int    `label:"--min-key-size" mapstructure:"min-key-size" validate:"omitempty,min=1"`
	MaxKeySize int    `label:"--max-key-size" mapstructure:"max-key-size" validate:"gtefield=MinKeySize"`
	Top        int    `label:"--top"          validate:"min=0"`
	Plaintext  bool

	// Cipher flags
	Mode          string `label:"--mode"       validate:"omitempty,oneof=ecb cbc"`
	Key           string `label:"--key"        mask:"filled" validate:"omitempty,hexadecimal,exclusive=KeyFile Passphrase"`
	KeyFile       string `label:"--key-file"   mapstructure:"key-file" validate:"omitempty,exclusive=Passphrase"`
	Passphrase    string `label:"--passphrase" mask:"filled"`
	Strict        bool
	EncryptSuffix string `label:"--encrypt-ext" mapstructure:"encrypt-ext"`
	DecryptSuffix string `label:"--decrypt-ext" mapstructure:"decrypt-ext"`

	// Conversion and key generation flags
	From string `label:"--from" validate:"omitempty,oneof=hex base64 raw"`
	To   string `label:"--to"   validate:"omitempty,oneof=hex base64 raw"`
	Size int    `label:"--size" validate:"omitempty,oneof=16 24 32"`

	// Set by the command, not by flags
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Files []string `mapstructure:"-"`
}

// Display reports whether the configuration should be printed instead of running the command.
func (c *Config) Display() bool {
	return c.Show
}

// Validate validates the configuration against the struct tags.
func (c *Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return err
	}

	errs := validator.Validate(config)

	switch {
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	case len(errs) > 1:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}

	if c.Mode != "" && c.Key == "" && c.KeyFile == "" && c.Passphrase == "" {
		return fmt.Errorf("%w: %w", ErrUsage, ErrMissingKey)
	}

	return nil
}

// KeySource reports which key flag was set, for messages.
func (c *Config) KeySource() string {
	switch {
	case c.Key != "":
		return "key"
	case c.KeyFile != "":
		return "key file"
	case c.Passphrase != "":
		return "passphrase"
	default:
		return "none"
	}
}
