package config

import (
	"os"
	"path"
)

/****** these are for production settings ***********/

// EnsureRoot creates the root directory and writes a default config file for
// the network if one is missing.
func EnsureRoot(rootDir string, network string) error {
	if err := os.MkdirAll(rootDir, 0700); err != nil {
		return err
	}

	configFilePath := path.Join(rootDir, "config.toml")

	// Write default config file if missing.
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return os.WriteFile(configFilePath, []byte(selectNetwork(network)), 0644)
	}
	return nil
}

var defaultConfigTmpl = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml
blueprint = "plutus.json"
log_dir = ""
`

var mainNetConfigTmpl = `chain_id = "mainnet"
`

var testNetConfigTmpl = `chain_id = "testnet"
`

var preProdNetConfigTmpl = `chain_id = "preprod"
`

var previewNetConfigTmpl = `chain_id = "preview"
`

// Select network template to merge a new string.
func selectNetwork(network string) string {
	switch network {
	case "mainnet":
		return defaultConfigTmpl + mainNetConfigTmpl
	case "preprod":
		return defaultConfigTmpl + preProdNetConfigTmpl
	case "preview":
		return defaultConfigTmpl + previewNetConfigTmpl
	default:
		return defaultConfigTmpl + testNetConfigTmpl
	}
}
