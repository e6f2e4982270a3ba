package logic

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/gobreak/internal/codec"
	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gobreak/internal/encryption"
	"github.com/idelchi/gobreak/internal/fileutil"
)

// RunCipher encrypts or decrypts the configured inputs.
// Standard input is written to standard output; files are written next to their input.
func RunCipher(cfg *config.Config, streams Streams) error {
	start := time.Now()

	proc, err := encryption.NewProcessor(cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	if len(cfg.Files) == 1 && cfg.Files[0] == fileutil.Stdin {
		return pipe(proc, cfg, streams)
	}

	results, err := proc.ProcessFiles()

	var (
		processed, errored int
		totalSize          int64
	)

	for _, res := range results {
		if res.Failed() {
			errored++

			fmt.Fprintf(streams.Err, "Error processing %q: %v\n", res.Input, res.Err)

			continue
		}

		processed++

		totalSize += res.InputSize

		if !cfg.Quiet {
			//nolint:gosec // sizes are never negative
			fmt.Fprintf(streams.Out, "Processed %q -> %q (%s)\n", res.Input, res.Output, humanize.IBytes(uint64(res.OutputSize)))
		}
	}

	if cfg.Stats {
		printStats(streams.Err, len(cfg.Files), processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running cipher: %w", err)
	}

	return nil
}

func pipe(proc *encryption.Processor, cfg *config.Config, streams Streams) error {
	input, err := fileutil.ReadInput(fileutil.Stdin)
	if err != nil {
		return err
	}

	var output []byte

	if cfg.Decrypt {
		output, err = proc.Decrypt(input)
	} else {
		output, err = proc.Encrypt(input)
	}

	if err != nil {
		return err
	}

	if _, err := streams.Out.Write(output); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// RunKeygen prints a fresh random key of cfg.Size bytes, hex-encoded.
func RunKeygen(cfg *config.Config, streams Streams) error {
	key, err := encryption.GenerateKey(rand.Reader, cfg.Size)
	if err != nil {
		return err
	}

	fmt.Fprintln(streams.Out, codec.EncodeHex(key))

	return nil
}

// RunConvert re-encodes every input from cfg.From to cfg.To.
func RunConvert(cfg *config.Config, streams Streams) error {
	from, err := codec.ParseFormat(cfg.From)
	if err != nil {
		return err
	}

	to, err := codec.ParseFormat(cfg.To)
	if err != nil {
		return err
	}

	return analyse(cfg, streams, func(data []byte) (string, error) {
		decoded, err := from.Decode(data)
		if err != nil {
			return "", err
		}

		encoded, err := to.Encode(decoded)
		if err != nil {
			return "", err
		}

		if to != codec.Raw {
			encoded = append(encoded, '\n')
		}

		return string(encoded), nil
	})
}
