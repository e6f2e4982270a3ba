// Package commands provides the command-line interface for the gobreak tool.
//
// It implements commands for:
//   - scoring and breaking XOR ciphertexts
//   - estimating repeating-key sizes
//   - detecting ECB encrypted lines
//   - AES encryption and decryption in ECB or CBC mode
//   - key generation and encoding conversion
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
