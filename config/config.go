package config

import (
	"path/filepath"
)

var (
	// CommonConfig means config object
	CommonConfig *Config
)

// Config holds the converter settings loaded from flags and the optional
// config.toml.
type Config struct {
	// RootDir is the directory relative paths below resolve against.
	RootDir string `mapstructure:"home"`

	// ChainID selects the network parameters: mainnet, testnet, preprod
	// or preview.
	ChainID string `mapstructure:"chain_id"`

	// LogDir, when set, redirects logs into date-rotated files under the
	// directory. Empty keeps logging on stderr.
	LogDir string `mapstructure:"log_dir"`

	// Blueprint is the default Plutus blueprint file read by the
	// blueprint command.
	Blueprint string `mapstructure:"blueprint"`
}

// Default configurable parameters.
func DefaultConfig() *Config {
	return &Config{
		RootDir:   ".",
		ChainID:   "testnet",
		Blueprint: "plutus.json",
	}
}

// Set the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.RootDir = root
	return cfg
}

// LogPath returns the resolved log directory.
func (cfg *Config) LogPath() string {
	return rootify(cfg.LogDir, cfg.RootDir)
}

// BlueprintFile returns the resolved blueprint path.
func (cfg *Config) BlueprintFile() string {
	return rootify(cfg.Blueprint, cfg.RootDir)
}

// ConfigFile returns the resolved config.toml path.
func (cfg *Config) ConfigFile() string {
	return rootify("config.toml", cfg.RootDir)
}

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
