// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The Hyperchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/hyperchainnet/hyperchaind/burnchain"
	"github.com/hyperchainnet/hyperchaind/infrastructure/logger"
	"github.com/hyperchainnet/hyperchaind/version"
)

const (
	defaultConfigFilename = "hyperchaind.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "hyperchaind.log"
	defaultErrLogFilename = "hyperchaind_err.log"
	defaultLogLevel       = "info"
	defaultBurnchainName  = "bitcoin"
)

var (
	// DefaultHomeDir is the default home directory for hyperchaind.
	DefaultHomeDir = btcutil.AppDataDir("hyperchaind", false)

	defaultConfigFile = filepath.Join(DefaultHomeDir, defaultConfigFilename)
)

// Flags defines the configuration options for hyperchaind.
//
// See LoadConfig for details on the configuration load process.
type Flags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	WorkingDir  string `short:"b" long:"workingdir" description:"Directory to store burnchain and sortition state"`
	LogDir      string `long:"logdir" description:"Directory to log output"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	Burnchain   string `long:"burnchain" description:"Underlying chain to observe for sortitions"`
	NetworkFlags
}

// Config holds the parsed configuration together with the burnchain bundle
// built from it.
type Config struct {
	*Flags

	// Burnchain is the session bundle for the selected chain and network.
	Burnchain *burnchain.Burnchain
}

// DefaultFlags returns the default configuration flags for hyperchaind.
func DefaultFlags() *Flags {
	return &Flags{
		ConfigFile: defaultConfigFile,
		WorkingDir: DefaultHomeDir,
		DebugLevel: defaultLogLevel,
		Burnchain:  defaultBurnchainName,
	}
}

// LoadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
func LoadConfig() (*Config, error) {
	cfgFlags := DefaultFlags()
	parser := flags.NewParser(cfgFlags, flags.HelpFlag)
	_, err := parser.Parse()

	// Show the version and exit if the version flag was specified.
	if cfgFlags.ShowVersion {
		appName := filepath.Base(os.Args[0])
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		return nil, err
	}

	// Load additional config from file.
	if cfgFlags.ConfigFile != defaultConfigFile || fileExists(cfgFlags.ConfigFile) {
		err = flags.NewIniParser(parser).ParseFile(cfgFlags.ConfigFile)
		if err != nil {
			if _, ok := err.(*os.PathError); !ok ||
				cfgFlags.ConfigFile != defaultConfigFile {
				return nil, errors.Wrapf(err, "failed to parse config file %s",
					cfgFlags.ConfigFile)
			}
		}
		// Command line options take precedence over the config file.
		_, err = parser.Parse()
		if err != nil {
			return nil, err
		}
	}

	err = cfgFlags.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	cfg := &Config{Flags: cfgFlags}

	// Append the network type to the working directory so it is network
	// specific, and create it if needed.
	cfg.WorkingDir = filepath.Join(cleanAndExpandPath(cfg.WorkingDir), cfg.NetworkName())
	err = os.MkdirAll(cfg.WorkingDir, 0700)
	if err != nil {
		return nil, &burnchain.FSError{Err: err}
	}

	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.WorkingDir, defaultLogDirname)
	}
	logger.InitLog(
		filepath.Join(cfg.LogDir, defaultLogFilename),
		filepath.Join(cfg.LogDir, defaultErrLogFilename),
	)
	err = logger.ParseAndSetDebugLevels(cfg.DebugLevel)
	if err != nil {
		return nil, err
	}

	cfg.Burnchain, err = burnchain.NewBurnchain(cfg.WorkingDir, cfg.Flags.Burnchain,
		cfg.NetworkName())
	if err != nil {
		return nil, err
	}

	log.Infof("Observing %s %s from height %d", cfg.Burnchain.ChainName,
		cfg.Burnchain.NetworkName, cfg.Burnchain.FirstBlockHeight)
	return cfg, nil
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if len(path) >= 2 && path[:2] == "~/" {
		homeDir := filepath.Dir(DefaultHomeDir)
		path = filepath.Join(homeDir, path[2:])
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
