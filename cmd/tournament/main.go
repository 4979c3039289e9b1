package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/automatic"
	"github.com/domino14/royalur/codec"
	"github.com/domino14/royalur/config"
	"github.com/domino14/royalur/player"
)

const histogramBins = 20

func usage() {
	fmt.Fprintf(os.Stderr, "usage: tournament [flags] <player> <player> ...\n"+
		"       tournament analyze <turn-log.csv>\n\nplayers: %s\n\n%s",
		strings.Join(player.Names(), ", "), config.Usage("tournament"))
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

// gameSeeds loads per-game generator seeds from path, or creates and saves
// them if the file does not exist yet.
func gameSeeds(path string, n int) ([][32]byte, error) {
	seeds, err := automatic.LoadSeeds(path)
	if err == nil {
		log.Info().Str("file", path).Int("seeds", len(seeds)).Msg("loaded-game-seeds")
		return seeds, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if seeds, err = automatic.GenerateSeeds(n); err != nil {
		return nil, err
	}
	if err = automatic.SaveSeeds(seeds, path); err != nil {
		return nil, err
	}
	log.Info().Str("file", path).Int("seeds", n).Msg("saved-game-seeds")
	return seeds, nil
}

func run(cfg *config.Config) error {
	args := cfg.Args()
	if len(args) == 2 && args[0] == "analyze" {
		out, err := automatic.AnalyzeLogFile(args[1])
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}
	if len(args) == 0 {
		usage()
		return errors.New("no players given")
	}

	base := 10
	if cfg.GetBool(config.ConfigBinarySeed) {
		base = 2
	}
	boardSeed, err := codec.ParseSeed(cfg.GetString(config.ConfigBoardSeed), base)
	if err != nil {
		return fmt.Errorf("board seed: %w", err)
	}

	opts := automatic.Options{
		Players:   args,
		NumGames:  cfg.GetInt(config.ConfigNumGames),
		SelfPlay:  cfg.GetBool(config.ConfigSelfPlay),
		BoardSeed: boardSeed,
		TurnLimit: cfg.GetInt(config.ConfigTurnLimit),
		Logger:    log.Logger,
	}
	if s := cfg.GetString(config.ConfigRandomSeed); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return fmt.Errorf("random seed: %w", err)
		}
		seed := automatic.SeedFromInt(n)
		opts.RNG = frand.NewCustom(seed[:], 1024, 12)
	}
	if path := cfg.GetString(config.ConfigSeedFile); path != "" {
		numGames := len(automatic.Pairings(lo.Uniq(args), opts.SelfPlay)) * opts.NumGames
		if opts.GameSeeds, err = gameSeeds(path, numGames); err != nil {
			return err
		}
	}
	if path := cfg.GetString(config.ConfigTurnLog); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts.TurnLog = f
	}

	t, err := automatic.NewTournament(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sig:
			log.Info().Msg("got quit signal...")
			cancel()
		case <-ctx.Done():
		}
	}()

	start := time.Now()
	results, err := t.Run(ctx)
	if results == nil {
		return err
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Int("games", results.GamesFinished()).
		Str("gamesPlayed", automatic.GamesPlayed.String()).
		Dur("elapsed", time.Since(start)).Msg("done")

	if err := results.WriteTable(os.Stdout); err != nil {
		return err
	}
	if err := results.WriteSummary(os.Stdout); err != nil {
		return err
	}
	if cfg.GetBool(config.ConfigHistogram) {
		if err := results.WriteHistogram(os.Stdout, histogramBins, 50); err != nil {
			return err
		}
	}
	if path := cfg.GetString(config.ConfigResultsYAML); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := results.WriteYAML(f); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	cfg := &config.Config{}
	if err := cfg.Load("tournament", os.Args[1:]); err != nil {
		usage()
		os.Exit(2)
	}
	setupLogger(cfg.GetBool(config.ConfigDebug))

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("tournament failed")
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
