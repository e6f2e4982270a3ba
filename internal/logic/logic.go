// Package logic implements the command behavior: reading inputs, running the
// analysis or cipher operations and printing their reports.
package logic

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/gobreak/internal/codec"
	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gobreak/internal/cryptanalysis"
	"github.com/idelchi/gobreak/internal/fileutil"
)

// Streams are the writers reports and diagnostics go to.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// report is the outcome of analysing one input.
type report struct {
	input string
	text  string
	size  int64
	err   error
}

// analyse runs fn over every input concurrently and prints the reports in input order.
// A file that fails is reported on Err and does not stop the others.
//
//nolint:cyclop // printer loop mirrors the per-file pipeline
func analyse(cfg *config.Config, streams Streams, fn func(data []byte) (string, error)) error {
	start := time.Now()

	reports := make([]report, len(cfg.Files))

	group := errgroup.Group{}
	group.SetLimit(cfg.Parallel)

	for i, file := range cfg.Files {
		group.Go(func() error {
			data, err := fileutil.ReadInput(file)
			if err != nil {
				reports[i] = report{input: file, err: err}

				return err
			}

			text, err := fn(data)
			reports[i] = report{input: file, text: text, size: int64(len(data)), err: err}

			return err
		})
	}

	err := group.Wait()

	var (
		processed, errored int
		totalSize          int64
	)

	for _, rep := range reports {
		if rep.err != nil {
			errored++

			fmt.Fprintf(streams.Err, "Error processing %q: %v\n", rep.input, rep.err)

			continue
		}

		processed++

		totalSize += rep.size

		if len(cfg.Files) > 1 && !cfg.Quiet {
			fmt.Fprintf(streams.Out, "==> %s <==\n", rep.input)
		}

		fmt.Fprint(streams.Out, rep.text)
	}

	if cfg.Stats {
		printStats(streams.Err, len(cfg.Files), processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("analysing files: %w", err)
	}

	return nil
}

// table returns the configured frequency table.
func table(cfg *config.Config) (cryptanalysis.Table, error) {
	if cfg.Table == "" {
		return cryptanalysis.English(), nil
	}

	t, err := cryptanalysis.LoadTable(cfg.Table)
	if err != nil {
		return cryptanalysis.Table{}, fmt.Errorf("loading frequency table: %w", err)
	}

	return t, nil
}

// decoder returns a function decoding input in the configured encoding.
func decoder(cfg *config.Config) (func([]byte) ([]byte, error), error) {
	format, err := codec.ParseFormat(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	return format.Decode, nil
}

// printable renders bytes for terminal output.
func printable(data []byte) string {
	return fmt.Sprintf("%q", data)
}

func printStats(w io.Writer, scanned, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Inputs:    %d\n", scanned)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of input sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
