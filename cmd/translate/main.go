package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/royalur/codec"
	"github.com/domino14/royalur/config"
)

var inputBases = map[string]int{
	"decimal": 10,
	"binary":  2,
	"auto":    0,
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: translate [flags] <in-file> <out-file>\n"+
		"Use - for standard input or output. Lines that cannot be translated\n"+
		"are logged and left out of the output.\n\n%s", config.Usage("translate"))
}

func setupLogger(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
}

func run(cfg *config.Config) (err error) {
	args := cfg.Args()
	if len(args) != 2 {
		usage()
		return fmt.Errorf("expected an input and an output file, got %d arguments", len(args))
	}
	from, to, err := codec.ParseDirection(cfg.GetString(config.ConfigDirection))
	if err != nil {
		return err
	}
	base, ok := inputBases[cfg.GetString(config.ConfigInputFormat)]
	if !ok {
		return fmt.Errorf("unknown input format %q", cfg.GetString(config.ConfigInputFormat))
	}

	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	var out io.Writer = os.Stdout
	if args[1] != "-" {
		f, createErr := os.Create(args[1])
		if createErr != nil {
			return createErr
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}
	bw := bufio.NewWriter(out)

	lineErrs, err := codec.TranslateBatch(in, bw, codec.BatchOptions{
		From:         from,
		To:           to,
		Verify:       cfg.GetBool(config.ConfigVerify),
		InputBase:    base,
		BinaryOutput: cfg.GetBool(config.ConfigBinaryOutput),
		Logger:       log.Logger,
	})
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if len(lineErrs) > 0 {
		log.Warn().Int("skipped", len(lineErrs)).Msg("some seeds could not be translated")
	}
	log.Debug().Str("from", from.Name()).Str("to", to.Name()).Msg("translation-done")
	return nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load("translate", os.Args[1:]); err != nil {
		usage()
		os.Exit(2)
	}
	setupLogger(cfg.GetBool(config.ConfigDebug))
	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("translate failed")
		os.Exit(1)
	}
}
