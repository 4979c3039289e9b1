// Package config reads settings shared by the royalur commands from flags
// and ROYALUR_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug        = "debug"
	ConfigBoardSeed    = "board-seed"
	ConfigBinarySeed   = "binary-seed"
	ConfigNumGames     = "num-games"
	ConfigRandomSeed   = "random-seed"
	ConfigSeedFile     = "seed-file"
	ConfigSelfPlay     = "self-play"
	ConfigTurnLog      = "turn-log"
	ConfigResultsYAML  = "results-yaml"
	ConfigHistogram    = "histogram"
	ConfigTurnLimit    = "turn-limit"
	ConfigInputFormat  = "input-format"
	ConfigBinaryOutput = "binary-output"
	ConfigVerify       = "verify"
	ConfigDirection    = "direction"
	ConfigCPUProfile   = "cpu-profile"
)

const envPrefix = "ROYALUR"

type Config struct {
	*viper.Viper
	args []string
}

// DefaultConfig returns a config holding only the defaults.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigBoardSeed, "122138132480")
	c.SetDefault(ConfigBinarySeed, false)
	c.SetDefault(ConfigNumGames, 1000)
	c.SetDefault(ConfigRandomSeed, "")
	c.SetDefault(ConfigSeedFile, "")
	c.SetDefault(ConfigSelfPlay, false)
	c.SetDefault(ConfigTurnLog, "")
	c.SetDefault(ConfigResultsYAML, "")
	c.SetDefault(ConfigHistogram, false)
	c.SetDefault(ConfigTurnLimit, 0)
	c.SetDefault(ConfigInputFormat, "decimal")
	c.SetDefault(ConfigBinaryOutput, false)
	c.SetDefault(ConfigVerify, true)
	c.SetDefault(ConfigDirection, "canonical-to-alternate")
	c.SetDefault(ConfigCPUProfile, "")
}

func flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "log at debug level")
	fs.StringP(ConfigBoardSeed, "s", "122138132480", "canonical seed of the starting board")
	fs.BoolP(ConfigBinarySeed, "b", false, "read the board seed as binary")
	fs.IntP(ConfigNumGames, "n", 1000, "games to play between each pair of players")
	fs.StringP(ConfigRandomSeed, "r", "", "seed the random number generator, for reproducible runs")
	fs.String(ConfigSeedFile, "", "file of per-game generator seeds")
	fs.BoolP(ConfigSelfPlay, "p", false, "also play each player against itself")
	fs.String(ConfigTurnLog, "", "write a CSV log of every turn to this file")
	fs.String(ConfigResultsYAML, "", "export tournament results to this YAML file")
	fs.Bool(ConfigHistogram, false, "print a histogram of game lengths")
	fs.Int(ConfigTurnLimit, 0, "abandon games after this many turns (0 for no limit)")
	fs.String(ConfigInputFormat, "decimal", "seed input format: decimal, binary or auto")
	fs.Bool(ConfigBinaryOutput, false, "write translated seeds in binary")
	fs.Bool(ConfigVerify, true, "check piece counts when decoding seeds")
	fs.String(ConfigDirection, "canonical-to-alternate", "translation direction, e.g. alternate-to-canonical")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	return fs
}

// Load parses command-line arguments. Environment variables such as
// ROYALUR_NUM_GAMES override the defaults, and flags override both.
func (c *Config) Load(name string, args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
		c.setDefaults()
	}
	fs := flagSet(name)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()
	return nil
}

// Args are the positional arguments left after flags.
func (c *Config) Args() []string {
	return c.args
}

// Usage describes every flag.
func Usage(name string) string {
	return flagSet(name).FlagUsages()
}
