// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

const (
	algoWyRand  = "wyrand"
	algoChaCha8 = "chacha8"

	defaultAlgo       = algoWyRand
	defaultType       = "u64"
	defaultCount      = 1
	defaultLogLevel   = "info"
	defaultLogSizeKiB = 10 * 1024
	defaultMaxLogs    = 3
	logFilename       = "turborand.log"
)

// outputTypes lists the accepted values of --type.
var outputTypes = []string{"u64", "u32", "f64", "bool", "bytes", "alnum",
	"range", "shuffle", "sample", "weighted"}

// config defines the configuration options for turborand.
type config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to an INI configuration file"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	SampleConf  bool   `long:"sampleconfig" description:"Print a commented example config file and exit"`

	Algo       string `short:"a" long:"algo" description:"Generator algorithm {wyrand, chacha8}"`
	Shared     bool   `long:"shared" description:"Use the generator variant that is safe for concurrent use"`
	Seed       string `short:"s" long:"seed" description:"Seed: an unsigned integer for wyrand or 80 hex characters for chacha8"`
	SeedPhrase string `long:"seedphrase" description:"Derive the seed from this phrase"`

	Count int      `short:"n" long:"count" description:"Number of values to generate; for bytes and alnum the output length"`
	Type  string   `short:"t" long:"type" description:"Output {u64, u32, f64, bool, bytes, alnum, range, shuffle, sample, weighted}"`
	Low   int64    `long:"low" description:"Inclusive lower bound for --type=range"`
	High  int64    `long:"high" description:"Inclusive upper bound for --type=range"`
	Items []string `short:"i" long:"item" description:"Item for shuffle, sample and weighted; weighted items take the form name=weight; may be specified multiple times"`
	Raw   bool     `long:"raw" description:"Write --type=bytes output as raw bytes instead of hex"`

	LoadState string `long:"loadstate" description:"Resume the generator from a state file"`
	SaveState string `long:"savestate" description:"Write the generator state to a file when done"`

	LogDir     string `long:"logdir" description:"Directory to log output; logs only to stderr when empty"`
	CPUProfile string `long:"cpuprofile" description:"Write CPU profile to the specified file"`
	MemProfile string `long:"memprofile" description:"Write mem profile to the specified file"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
}

// errShowVersion, errShowSample and errListSubsystems tell the caller that the request was
// informational and has been answered.
var (
	errShowVersion    = errors.New("version requested")
	errShowSample     = errors.New("sample config requested")
	errListSubsystems = errors.New("subsystem list requested")
)

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Algo:       defaultAlgo,
		Type:       defaultType,
		Count:      defaultCount,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file or the version flag was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.PassDoubleDash)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			return nil, err
		}
	}
	if preCfg.ShowVersion {
		return nil, errShowVersion
	}
	if preCfg.SampleConf {
		return nil, errShowSample
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if preCfg.ConfigFile != "" {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file %s: %w",
				preCfg.ConfigFile, err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remaining) > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s",
			strings.Join(remaining, " "))
	}

	if cfg.DebugLevel == "show" {
		return &cfg, errListSubsystems
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateConfig checks option combinations that go-flags cannot express.
func validateConfig(cfg *config) error {
	cfg.Algo = strings.ToLower(cfg.Algo)
	if cfg.Algo != algoWyRand && cfg.Algo != algoChaCha8 {
		return fmt.Errorf("unknown algorithm %q", cfg.Algo)
	}

	known := false
	for _, t := range outputTypes {
		known = known || cfg.Type == t
	}
	if !known {
		return fmt.Errorf("unknown output type %q", cfg.Type)
	}

	if cfg.Count < 0 {
		return fmt.Errorf("count must not be negative: %d", cfg.Count)
	}
	if cfg.Seed != "" && cfg.SeedPhrase != "" {
		return errors.New("--seed and --seedphrase are mutually exclusive")
	}
	if cfg.LoadState != "" && (cfg.Seed != "" || cfg.SeedPhrase != "") {
		return errors.New("--loadstate replaces the seed and may not be " +
			"combined with --seed or --seedphrase")
	}
	if cfg.Raw && cfg.Type != "bytes" {
		return errors.New("--raw only applies to --type=bytes")
	}
	switch cfg.Type {
	case "shuffle", "sample", "weighted":
		if len(cfg.Items) == 0 {
			return fmt.Errorf("--type=%s requires at least one --item",
				cfg.Type)
		}
	}

	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}
	if cfg.LogDir != "" {
		cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	}
	if cfg.LoadState != "" {
		cfg.LoadState = cleanAndExpandPath(cfg.LoadState)
	}
	if cfg.SaveState != "" {
		cfg.SaveState = cleanAndExpandPath(cfg.SaveState)
	}
	if cfg.CPUProfile != "" {
		cfg.CPUProfile = cleanAndExpandPath(cfg.CPUProfile)
	}
	if cfg.MemProfile != "" {
		cfg.MemProfile = cleanAndExpandPath(cfg.MemProfile)
	}
	return nil
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path and cleans the result.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home + path[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
