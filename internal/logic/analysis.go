package logic

import (
	"fmt"
	"strings"

	"github.com/idelchi/gobreak/internal/codec"
	"github.com/idelchi/gobreak/internal/config"
	"github.com/idelchi/gobreak/internal/cryptanalysis"
	"github.com/idelchi/gobreak/internal/fileutil"
)

// RunScore prints the English rating of every input, taken as plain text.
func RunScore(cfg *config.Config, streams Streams) error {
	t, err := table(cfg)
	if err != nil {
		return err
	}

	return analyse(cfg, streams, func(data []byte) (string, error) {
		return fmt.Sprintf("%.4f\n", cryptanalysis.Score(t, data)), nil
	})
}

// RunSingle breaks every input as single-byte XOR ciphertext.
func RunSingle(cfg *config.Config, streams Streams) error {
	t, err := table(cfg)
	if err != nil {
		return err
	}

	decode, err := decoder(cfg)
	if err != nil {
		return err
	}

	return analyse(cfg, streams, func(data []byte) (string, error) {
		ciphertext, err := decode(data)
		if err != nil {
			return "", err
		}

		candidate, ok := cryptanalysis.BreakSingleByte(t, ciphertext)
		if !ok {
			return "no candidate\n", nil
		}

		return formatCandidate(candidate), nil
	})
}

// RunDetectSingle finds the single-byte XOR encrypted line of every corpus.
func RunDetectSingle(cfg *config.Config, streams Streams) error {
	t, err := table(cfg)
	if err != nil {
		return err
	}

	decode, err := decoder(cfg)
	if err != nil {
		return err
	}

	return analyse(cfg, streams, func(data []byte) (string, error) {
		lines := fileutil.SplitLines(data)
		ciphertexts := make([][]byte, len(lines))

		for i, line := range lines {
			ciphertext, err := decode(line)
			if err != nil {
				return "", fmt.Errorf("line %d: %w", i+1, err)
			}

			ciphertexts[i] = ciphertext
		}

		detection, ok := cryptanalysis.DetectSingleByte(t, ciphertexts)
		if !ok {
			return "no candidate\n", nil
		}

		return fmt.Sprintf("line:      %d\n", detection.Index+1) + formatCandidate(detection.Candidate), nil
	})
}

// RunKeySize ranks the likely repeating-key sizes of every input.
func RunKeySize(cfg *config.Config, streams Streams) error {
	decode, err := decoder(cfg)
	if err != nil {
		return err
	}

	return analyse(cfg, streams, func(data []byte) (string, error) {
		ciphertext, err := decode(data)
		if err != nil {
			return "", err
		}

		scores, err := cryptanalysis.RankKeySizes(ciphertext, cfg.MinKeySize, cfg.MaxKeySize)
		if err != nil {
			return "", err
		}

		if cfg.Top > 0 && cfg.Top < len(scores) {
			scores = scores[:cfg.Top]
		}

		var out strings.Builder

		for _, score := range scores {
			fmt.Fprintf(&out, "%3d  %.4f\n", score.Size, score.Distance)
		}

		return out.String(), nil
	})
}

// RunRepeating recovers the repeating XOR key of every input.
func RunRepeating(cfg *config.Config, streams Streams) error {
	t, err := table(cfg)
	if err != nil {
		return err
	}

	decode, err := decoder(cfg)
	if err != nil {
		return err
	}

	return analyse(cfg, streams, func(data []byte) (string, error) {
		ciphertext, err := decode(data)
		if err != nil {
			return "", err
		}

		recovery, err := cryptanalysis.BreakRepeatingKey(t, ciphertext, cfg.MinKeySize, cfg.MaxKeySize)
		if err != nil {
			return "", err
		}

		var out strings.Builder

		fmt.Fprintf(&out, "key size:  %d\n", recovery.KeySize)
		fmt.Fprintf(&out, "key:       %s (hex %s)\n", printable(recovery.Key), codec.EncodeHex(recovery.Key))

		if !recovery.Complete() {
			// Plaintext is not shown: the key no longer lines up with the ciphertext.
			fmt.Fprintf(&out, "unresolved columns: %v\n", recovery.Unresolved)

			return out.String(), nil
		}

		if cfg.Plaintext {
			plaintext, err := cryptanalysis.XORRepeating(ciphertext, recovery.Key)
			if err != nil {
				return "", err
			}

			fmt.Fprintf(&out, "plaintext:\n%s\n", plaintext)
		}

		return out.String(), nil
	})
}

// RunDetectECB finds the ECB encrypted line of every corpus.
func RunDetectECB(cfg *config.Config, streams Streams) error {
	decode, err := decoder(cfg)
	if err != nil {
		return err
	}

	return analyse(cfg, streams, func(data []byte) (string, error) {
		lines := fileutil.SplitLines(data)
		ciphertexts := make([][]byte, len(lines))

		for i, line := range lines {
			ciphertext, err := decode(line)
			if err != nil {
				return "", fmt.Errorf("line %d: %w", i+1, err)
			}

			ciphertexts[i] = ciphertext
		}

		index, err := cryptanalysis.DetectECB(ciphertexts)
		if err != nil {
			return "", err
		}

		score, err := cryptanalysis.ScoreECB(ciphertexts[index])
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("line:      %d\nscore:     %d\n%s\n", index+1, score, lines[index]), nil
	})
}

func formatCandidate(candidate cryptanalysis.Candidate) string {
	return fmt.Sprintf("key:       %#02x %s\nrating:    %.4f\nplaintext: %s\n",
		candidate.Key, printable([]byte{candidate.Key}), candidate.Rating, printable(candidate.Plaintext))
}
