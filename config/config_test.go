package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	// set up some defaults
	cfg := DefaultConfig()
	assert.Equal("testnet", cfg.ChainID)
	assert.Equal("plutus.json", cfg.Blueprint)

	// check the root dir stuff...
	cfg.SetRoot("/foo")
	cfg.Blueprint = "bar/plutus.json"
	cfg.LogDir = "log"

	assert.Equal("/foo/bar/plutus.json", cfg.BlueprintFile())
	assert.Equal("/foo/log", cfg.LogPath())
	assert.Equal("/foo/config.toml", cfg.ConfigFile())

	// absolute paths win over the root dir
	cfg.LogDir = "/var/log/addrconv"
	assert.Equal("/var/log/addrconv", cfg.LogPath())
}
