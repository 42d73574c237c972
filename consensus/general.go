package consensus

import (
	"fmt"
	"strings"
)

// consensus variables
const (
	// PaymentCredentialHashSize is the size of a payment credential hash,
	// the blake2b-224 digest of either a verification key or a compiled
	// validator script.
	PaymentCredentialHashSize = 28

	// Address type nibbles for Shelley enterprise addresses (CIP-19). The
	// payment credential is the only part; no staking credential is
	// encoded.
	addrTypeKeyEnterprise    byte = 0x06
	addrTypeScriptEnterprise byte = 0x07
)

// Params store the config for different network
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Bech32HRP is the human-readable part of Bech32 encoded payment
	// addresses on the network.
	Bech32HRP string

	// AddressNetworkID is the network nibble carried in the low half of
	// every address header byte: 1 for mainnet, 0 for all test networks.
	AddressNetworkID byte
}

// ActiveNetParams is ...
var ActiveNetParams = TestNetParams

// NetParams is the correspondence between chain_id and Params
var NetParams = map[string]Params{
	"mainnet": MainNetParams,
	"testnet": TestNetParams,
	"preprod": PreProdNetParams,
	"preview": PreviewNetParams,
}

// MainNetParams is the config for production
var MainNetParams = Params{
	Name:             "main",
	Bech32HRP:        "addr",
	AddressNetworkID: 1,
}

// TestNetParams is the config for the legacy public test network
var TestNetParams = Params{
	Name:             "test",
	Bech32HRP:        "addr_test",
	AddressNetworkID: 0,
}

// PreProdNetParams is the config for the pre-production test network
var PreProdNetParams = Params{
	Name:             "preprod",
	Bech32HRP:        "addr_test",
	AddressNetworkID: 0,
}

// PreviewNetParams is the config for the preview test network
var PreviewNetParams = Params{
	Name:             "preview",
	Bech32HRP:        "addr_test",
	AddressNetworkID: 0,
}

// ScriptAddressHeader returns the header byte prepended to a script payment
// credential: the enterprise script type nibble in the high half and the
// network id in the low half (0x71 mainnet, 0x70 testnet).
func ScriptAddressHeader(networkID byte) byte {
	return addrTypeScriptEnterprise<<4 | networkID
}

// KeyAddressHeader returns the header byte prepended to a key payment
// credential (0x61 mainnet, 0x60 testnet).
func KeyAddressHeader(networkID byte) byte {
	return addrTypeKeyEnterprise<<4 | networkID
}

// IsBech32AddressPrefix returns whether the prefix is a known prefix for
// payment addresses on any default or registered network. This is used when
// classifying an address string.
func IsBech32AddressPrefix(prefix string, params *Params) bool {
	prefix = strings.ToLower(prefix)
	return prefix == params.Bech32HRP+"1"
}

// InitActiveNetParams load the config by chain ID
func InitActiveNetParams(chainID string) error {
	var exist bool
	if ActiveNetParams, exist = NetParams[chainID]; !exist {
		return fmt.Errorf("chain_id[%v] don't exist", chainID)
	}
	return nil
}
