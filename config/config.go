// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2021 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/coriumchain/coriumd/corelog"
)

const (
	defaultConfigFilename = "coriumd.yaml"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultNet            = "mainnet"

	defaultBlockMinWeight = 0
	defaultBlockMaxWeight = 3000000
	defaultBlockMinTxFee  = 1000

	blockMaxWeightMin = 4000
	blockMaxWeightMax = 4000000 - 4000
)

var defaultHomeDir = filepath.Join(os.Getenv("HOME"), ".coriumd")

// BlockAssemblerConfig carries the block-template assembler's
// externally-tunable knobs. Field names and defaults follow the Qtum/Bitcoin
// Core `-blockmax*`/`-staking`/`-disablecontractstaking` command-line flags
// this assembler's package-selection algorithm descends from.
type BlockAssemblerConfig struct {
	// BlockMinWeight is validated and clamped to BlockMaxWeight; no other
	// code reads it, and it does not force padding.
	BlockMinWeight uint32 `yaml:"block_min_weight" toml:"block_min_weight" long:"blockminweight" description:"Minimum block weight to be used when creating a block template"`

	// BlockMaxWeight overrides the DGP-governed block weight budget,
	// still clamped to [4000, dgpMaxBlockWeight-4000].
	BlockMaxWeight uint32 `yaml:"block_max_weight" toml:"block_max_weight" long:"blockmaxweight" description:"Maximum block weight to be used when creating a block template"`

	// BlockMinTxFee overrides blockMinFeeRate, in satoshi per kilobyte:
	// package selection stops at the first package whose fee rate falls
	// below it.
	BlockMinTxFee int64 `yaml:"block_min_tx_fee" toml:"block_min_tx_fee" long:"blockmintxfee" description:"Minimum fee rate, in satoshi/kB, to include a transaction in a block template"`

	// BlockVersion overrides the header version field. Zero means derive
	// it from the active deployment state; a non-zero value is applied on
	// every network, not only on a regression-test network.
	BlockVersion int32 `yaml:"block_version" toml:"block_version" long:"blockversion" description:"Block version number to use (pass-through, applied on every network)"`

	// DisableContractStaking, when set, refuses every contract-invoking
	// transaction during C5's contract sub-assembly pass.
	DisableContractStaking bool `yaml:"disable_contract_staking" toml:"disable_contract_staking" long:"disablecontractstaking" description:"Refuse to include contract-executing transactions in block templates"`

	// PrintPriority logs a per-inclusion fee/txid diagnostic line while
	// the greedy selector runs.
	PrintPriority bool `yaml:"print_priority" toml:"print_priority" long:"printpriority" description:"Log fee/priority information for each transaction as it's considered for inclusion"`

	// Staking enables proof-of-stake block templates; when false,
	// CanStake always reports ineligible and the driver may only request
	// PoW templates.
	Staking bool `yaml:"staking" toml:"staking" long:"staking" description:"Enable the staking code to attempt proof-of-stake block creation"`
}

func (BlockAssemblerConfig) Default() BlockAssemblerConfig {
	return BlockAssemblerConfig{
		BlockMinWeight:         defaultBlockMinWeight,
		BlockMaxWeight:         defaultBlockMaxWeight,
		BlockMinTxFee:          defaultBlockMinTxFee,
		BlockVersion:           0,
		DisableContractStaking: false,
		PrintPriority:          false,
		Staking:                false,
	}
}

// Config is the top-level daemon configuration.
type Config struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir     string `short:"b" long:"datadir" description:"Directory to store data"`
	Net         string `long:"net" description:"Network to run on: mainnet, testnet, simnet"`
	LogLevel    string `long:"loglevel" description:"Logging level: trace, debug, info, warn, error, fatal"`

	Logging        corelog.Config       `yaml:"logging" toml:"logging"`
	BlockAssembler BlockAssemblerConfig `yaml:"block_assembler" toml:"block_assembler"`
}

func defaultConfig() *Config {
	return &Config{
		DataDir:        defaultHomeDir,
		Net:            defaultNet,
		LogLevel:       defaultLogLevel,
		Logging:        corelog.Config{}.Default(),
		BlockAssembler: BlockAssemblerConfig{}.Default(),
	}
}

// LoadConfig initializes and parses the daemon configuration.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings.
//  2. Load the configuration file, if present, overwriting defaults with
//     any options it specifies.
//  3. Parse command line flags, overwriting/adding any specified options.
//
// Command line options always take precedence over the configuration file.
func LoadConfig() (*Config, []string, error) {
	cfg := defaultConfig()

	preCfg := *cfg
	preParser := flags.NewParser(&preCfg, flags.Default&^flags.PrintErrors&^flags.HelpFlag)
	_, err := preParser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	if preCfg.DataDir != "" {
		cfg.DataDir = preCfg.DataDir
	}
	if preCfg.ConfigFile != "" {
		cfg.ConfigFile = preCfg.ConfigFile
	} else {
		cfg.ConfigFile = filepath.Join(cfg.DataDir, defaultConfigFilename)
	}

	if fileExists(cfg.ConfigFile) {
		if err := readYAMLConfig(cfg.ConfigFile, cfg); err != nil {
			return nil, nil, errors.Wrap(err, "failed to read config file")
		}
	}

	parser := flags.NewParser(cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}

	if err := validateBlockAssemblerConfig(&cfg.BlockAssembler); err != nil {
		return nil, nil, err
	}

	return cfg, remainingArgs, nil
}

func readYAMLConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return yaml.NewDecoder(f).Decode(cfg)
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

// validateBlockAssemblerConfig clamps and sanity-checks the
// block-assembler's configuration the way BlockMaxWeight has always been
// clamped: errors for out-of-range explicit values, silent min() clamps for
// the softer bounds.
func validateBlockAssemblerConfig(cfg *BlockAssemblerConfig) error {
	if cfg.BlockMaxWeight < blockMaxWeightMin || cfg.BlockMaxWeight > blockMaxWeightMax {
		return fmt.Errorf("blockmaxweight must be in range [%d, %d], got %d",
			blockMaxWeightMin, blockMaxWeightMax, cfg.BlockMaxWeight)
	}

	if cfg.BlockMinWeight > cfg.BlockMaxWeight {
		cfg.BlockMinWeight = cfg.BlockMaxWeight
	}

	if cfg.BlockMinTxFee < 0 {
		return fmt.Errorf("blockmintxfee must not be negative, got %d", cfg.BlockMinTxFee)
	}

	return nil
}
