package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRoot(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	// setup temp dir for test
	tmpDir, err := ioutil.TempDir("", "config-test")
	require.Nil(err)
	defer os.RemoveAll(tmpDir)

	// create root dir
	require.Nil(EnsureRoot(tmpDir, "mainnet"))

	// make sure config is set properly
	data, err := ioutil.ReadFile(filepath.Join(tmpDir, "config.toml"))
	require.Nil(err)
	assert.Equal([]byte(selectNetwork("mainnet")), data)

	// an existing config file is left alone
	require.Nil(ioutil.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("chain_id = \"preview\"\n"), 0644))
	require.Nil(EnsureRoot(tmpDir, "mainnet"))
	data, err = ioutil.ReadFile(filepath.Join(tmpDir, "config.toml"))
	require.Nil(err)
	assert.Equal("chain_id = \"preview\"\n", string(data))
}

func TestNetworkTemplatesParse(t *testing.T) {
	assert := assert.New(t)

	wantChainID := map[string]string{
		"mainnet": "mainnet",
		"testnet": "testnet",
		"preprod": "preprod",
		"preview": "preview",
		"solonet": "testnet", // unknown networks get the testnet template
	}

	for network, want := range wantChainID {
		var conf struct {
			ChainID   string `toml:"chain_id"`
			Blueprint string `toml:"blueprint"`
			LogDir    string `toml:"log_dir"`
		}
		_, err := toml.Decode(selectNetwork(network), &conf)
		assert.Nil(err, network)
		assert.Equal(want, conf.ChainID, network)
		assert.Equal("plutus.json", conf.Blueprint, network)
	}
}
