package encryption

import (
	"crypto/cipher"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gobreak/internal/codec"
	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gobreak/internal/fileutil"
	"github.com/idelchi/gogen/pkg/key"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// block is the AES cipher built from the configured key
	block cipher.Block

	// mode selects ECB or CBC chaining
	mode Mode

	// format is the text form of ciphertext on disk
	format codec.Format
}

// NewProcessor creates a new Processor with the given configuration.
// The key comes from --key (hex), --key-file (hex) or --passphrase (derived).
func NewProcessor(cfg *config.Config) (*Processor, error) {
	mode, err := ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	format, err := codec.ParseFormat(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	encryptionKey, err := loadKey(cfg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.KeySource(), err)
	}

	block, err := NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}

	return &Processor{
		cfg:    cfg,
		block:  block,
		mode:   mode,
		format: format,
	}, nil
}

func loadKey(cfg *config.Config) ([]byte, error) {
	switch {
	case cfg.Key != "":
		return key.FromHex(trimHexPrefix(cfg.Key))
	case cfg.KeyFile != "":
		data, err := os.ReadFile(filepath.Clean(cfg.KeyFile))
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		return key.FromHex(trimHexPrefix(strings.TrimSpace(string(data))))
	case cfg.Passphrase != "":
		return DeriveKey(cfg.Passphrase, KeySize)
	default:
		return nil, config.ErrMissingKey
	}
}

// trimHexPrefix drops the optional 0x prefix that key validation accepts.
func trimHexPrefix(text string) string {
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return text[2:]
	}

	return text
}

// Encrypt encrypts plaintext and encodes the ciphertext in the configured format.
func (p *Processor) Encrypt(plaintext []byte) ([]byte, error) {
	ciphertext, err := p.mode.Encrypt(p.block, plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypting: %w", err)
	}

	encoded, err := p.format.Encode(ciphertext)
	if err != nil {
		return nil, err
	}

	if p.format != codec.Raw {
		encoded = append(encoded, '\n')
	}

	return encoded, nil
}

// Decrypt decodes ciphertext from the configured format and decrypts it.
func (p *Processor) Decrypt(encoded []byte) ([]byte, error) {
	ciphertext, err := p.format.Decode(encoded)
	if err != nil {
		return nil, err
	}

	plaintext, err := p.mode.Decrypt(p.block, ciphertext, p.cfg.Strict)
	if err != nil {
		return nil, fmt.Errorf("decrypting: %w", err)
	}

	return plaintext, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// Results are returned in the order of cfg.Files; the error is the first failure.
func (p *Processor) ProcessFiles() ([]Result, error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	results := make([]Result, len(p.cfg.Files))

	for i, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := p.outputPath(file)
			if outPath == filepath.Clean(file) {
				err := fmt.Errorf("%w: %q", ErrSameOutput, file)
				results[i] = Result{Input: file, Err: err}

				return err
			}

			inSize, outSize, err := p.processFile(file, outPath)
			if err != nil {
				results[i] = Result{Input: file, Err: err}

				return err
			}

			results[i] = Result{Input: file, Output: outPath, InputSize: inSize, OutputSize: outSize}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, fmt.Errorf("processing files: %w", err)
	}

	return results, nil
}

// processFile encrypts or decrypts a single file and writes the output atomically.
func (p *Processor) processFile(filename, outPath string) (int64, int64, error) {
	input, err := os.ReadFile(filepath.Clean(filename))
	if err != nil {
		return 0, 0, fmt.Errorf("reading input file: %w", err)
	}

	var output []byte

	if p.cfg.Decrypt {
		output, err = p.Decrypt(input)
	} else {
		output, err = p.Encrypt(input)
	}

	if err != nil {
		return 0, 0, fmt.Errorf("processing %q: %w", filename, err)
	}

	const ownerReadWrite = 0o600

	size, err := fileutil.WriteAtomic(outPath, output, ownerReadWrite)
	if err != nil {
		return 0, 0, fmt.Errorf("writing output: %w", err)
	}

	return int64(len(input)), size, nil
}

// outputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func (p *Processor) outputPath(filename string) string {
	ext := p.cfg.EncryptSuffix

	if p.cfg.Decrypt {
		filename = strings.TrimSuffix(filename, p.cfg.EncryptSuffix)
		ext = p.cfg.DecryptSuffix
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}
