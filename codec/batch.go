package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// BatchOptions configure TranslateBatch.
type BatchOptions struct {
	From, To Codec
	Verify   bool
	// InputBase is passed to ParseSeed for every line.
	InputBase int
	// BinaryOutput writes seeds in binary, padded to the width of To.
	BinaryOutput bool
	Logger       zerolog.Logger
}

// LineError describes an input line that could not be translated.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// TranslateBatch translates one seed per line from r, writing one seed per
// line to w. Blank lines and lines starting with '#' are skipped. A line that
// fails to parse or translate is logged, left out of the output and reported
// in the returned slice; the rest of the batch carries on. The error is only
// set for read or write failures.
func TranslateBatch(r io.Reader, w io.Writer, opts BatchOptions) ([]LineError, error) {
	if opts.From == nil || opts.To == nil {
		return nil, fmt.Errorf("batch translation needs both a source and a target layout")
	}
	var lineErrs []LineError
	bw := bufio.NewWriter(w)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		translated, err := translateLine(text, opts)
		if err != nil {
			opts.Logger.Warn().Err(err).Int("line", lineno).Str("seed", text).
				Msg("skipping-seed")
			lineErrs = append(lineErrs, LineError{Line: lineno, Text: text, Err: err})
			continue
		}
		if _, err := bw.WriteString(FormatSeed(translated, opts.To.Width(), opts.BinaryOutput) + "\n"); err != nil {
			return lineErrs, err
		}
	}
	if err := scanner.Err(); err != nil {
		return lineErrs, err
	}
	opts.Logger.Debug().Int("lines", lineno).Int("errors", len(lineErrs)).
		Str("from", opts.From.Name()).Str("to", opts.To.Name()).Msg("batch-translated")
	return lineErrs, bw.Flush()
}

func translateLine(text string, opts BatchOptions) (uint64, error) {
	seed, err := ParseSeed(text, opts.InputBase)
	if err != nil {
		return 0, err
	}
	return Translate(seed, opts.From, opts.To, opts.Verify)
}
