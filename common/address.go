package common

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/cardanokit/cardanokit/common/bech32"
	"github.com/cardanokit/cardanokit/consensus"
)

var (
	// ErrUnsupportedCredentialHashLen describes an error where a payment
	// credential hash has a length other than the blake2b-224 digest size
	// every Shelley payment credential carries.
	ErrUnsupportedCredentialHashLen = errors.New("unsupported payment credential hash length")
)

// Address is an interface type for any type of payment destination an
// on-chain output may be locked by. This includes enterprise addresses for
// key payment credentials and for script payment credentials. Address is
// designed to be generic enough that other kinds of addresses may be added
// in the future without changing the encoding API.
type Address interface {
	// String returns the string encoding of the payment destination.
	//
	// Please note that String differs subtly from EncodeAddress: String
	// will return the value as a string without any conversion, while
	// EncodeAddress may perform internal re-encoding before returning the
	// payment address string.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value. See the comment on String for
	// how this method differs from String.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the payment credential hash
	// carried by the address.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed network.
	IsForNet(*consensus.Params) bool
}

// encodeEnterpriseAddress creates a bech32 encoded address string
// representation from an address header byte and a payment credential hash.
func encodeEnterpriseAddress(hrp string, header byte, paymentHash []byte) (string, error) {
	// The header byte selects the network and the credential type; the
	// payload is the header followed by the raw credential hash.
	payload := make([]byte, len(paymentHash)+1)
	payload[0] = header
	copy(payload[1:], paymentHash)

	// Group the payload bytes into 5 bit groups, as this is what is used
	// to encode each character in the address string.
	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}

	bech, err := bech32.Bech32Encode(hrp, converted)
	if err != nil {
		return "", err
	}

	// Check validity by decoding the created address.
	decHeader, decHash, err := decodeEnterpriseAddress(bech)
	if err != nil {
		return "", fmt.Errorf("invalid enterprise address: %v", err)
	}

	if decHeader != header || !bytes.Equal(decHash, paymentHash) {
		return "", fmt.Errorf("invalid enterprise address")
	}

	return bech, nil
}

// decodeEnterpriseAddress parses a bech32 encoded enterprise address string
// and returns the header byte and payment credential hash representation.
func decodeEnterpriseAddress(address string) (byte, []byte, error) {
	// Decode the bech32 encoded address.
	_, data, err := bech32.Bech32Decode(address)
	if err != nil {
		return 0, nil, err
	}

	// The characters of the address are grouped into words of 5 bits. In
	// order to restore the original payload bytes, we'll need to regroup
	// into 8 bit words.
	regrouped, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return 0, nil, err
	}

	// The regrouped data must be a header byte followed by a full
	// credential hash.
	if len(regrouped) != consensus.PaymentCredentialHashSize+1 {
		return 0, nil, fmt.Errorf("invalid data length: %v", len(regrouped))
	}

	return regrouped[0], regrouped[1:], nil
}

// AddressScriptHash is an enterprise address whose payment credential is the
// blake2b-224 hash of a validator script. See CIP-19 for further details
// regarding the Shelley address format:
// https://cips.cardano.org/cip/CIP-19
type AddressScriptHash struct {
	hrp         string
	networkID   byte
	paymentHash [consensus.PaymentCredentialHashSize]byte
}

// NewAddressScriptHash returns a new AddressScriptHash.
func NewAddressScriptHash(scriptHash []byte, param *consensus.Params) (*AddressScriptHash, error) {
	return newAddressScriptHash(param.Bech32HRP, param.AddressNetworkID, scriptHash)
}

// newAddressScriptHash is an internal helper function to create an
// AddressScriptHash with a known human-readable part and network id, rather
// than looking them up through its parameters.
func newAddressScriptHash(hrp string, networkID byte, scriptHash []byte) (*AddressScriptHash, error) {
	if len(scriptHash) != consensus.PaymentCredentialHashSize {
		return nil, ErrUnsupportedCredentialHashLen
	}

	addr := &AddressScriptHash{
		hrp:       strings.ToLower(hrp),
		networkID: networkID,
	}

	copy(addr.paymentHash[:], scriptHash)

	return addr, nil
}

// EncodeAddress returns the bech32 string encoding of an AddressScriptHash.
// Part of the Address interface.
func (a *AddressScriptHash) EncodeAddress() string {
	str, err := encodeEnterpriseAddress(a.hrp, consensus.ScriptAddressHeader(a.networkID), a.paymentHash[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the script hash for this address.
// Part of the Address interface.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.paymentHash[:]
}

// IsForNet returns whether or not the AddressScriptHash is associated with
// the passed network.
// Part of the Address interface.
func (a *AddressScriptHash) IsForNet(param *consensus.Params) bool {
	return a.hrp == param.Bech32HRP && a.networkID == param.AddressNetworkID
}

// String returns a human-readable string for the AddressScriptHash. This is
// equivalent to calling EncodeAddress, but is provided so the type can be
// used as a fmt.Stringer.
// Part of the Address interface.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded
// AddressScriptHash.
func (a *AddressScriptHash) Hrp() string {
	return a.hrp
}

// PaymentHash returns the script hash of the AddressScriptHash as a byte
// array.
func (a *AddressScriptHash) PaymentHash() *[consensus.PaymentCredentialHashSize]byte {
	return &a.paymentHash
}

// AddressKeyHash is an enterprise address whose payment credential is the
// blake2b-224 hash of a payment verification key. See CIP-19 for further
// details regarding the Shelley address format:
// https://cips.cardano.org/cip/CIP-19
type AddressKeyHash struct {
	hrp         string
	networkID   byte
	paymentHash [consensus.PaymentCredentialHashSize]byte
}

// NewAddressKeyHash returns a new AddressKeyHash.
func NewAddressKeyHash(keyHash []byte, param *consensus.Params) (*AddressKeyHash, error) {
	return newAddressKeyHash(param.Bech32HRP, param.AddressNetworkID, keyHash)
}

// newAddressKeyHash is an internal helper function to create an
// AddressKeyHash with a known human-readable part and network id, rather
// than looking them up through its parameters.
func newAddressKeyHash(hrp string, networkID byte, keyHash []byte) (*AddressKeyHash, error) {
	if len(keyHash) != consensus.PaymentCredentialHashSize {
		return nil, ErrUnsupportedCredentialHashLen
	}

	addr := &AddressKeyHash{
		hrp:       strings.ToLower(hrp),
		networkID: networkID,
	}

	copy(addr.paymentHash[:], keyHash)

	return addr, nil
}

// EncodeAddress returns the bech32 string encoding of an AddressKeyHash.
// Part of the Address interface.
func (a *AddressKeyHash) EncodeAddress() string {
	str, err := encodeEnterpriseAddress(a.hrp, consensus.KeyAddressHeader(a.networkID), a.paymentHash[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the key hash for this address.
// Part of the Address interface.
func (a *AddressKeyHash) ScriptAddress() []byte {
	return a.paymentHash[:]
}

// IsForNet returns whether or not the AddressKeyHash is associated with the
// passed network.
// Part of the Address interface.
func (a *AddressKeyHash) IsForNet(param *consensus.Params) bool {
	return a.hrp == param.Bech32HRP && a.networkID == param.AddressNetworkID
}

// String returns a human-readable string for the AddressKeyHash. This is
// equivalent to calling EncodeAddress, but is provided so the type can be
// used as a fmt.Stringer.
// Part of the Address interface.
func (a *AddressKeyHash) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded AddressKeyHash.
func (a *AddressKeyHash) Hrp() string {
	return a.hrp
}

// PaymentHash returns the key hash of the AddressKeyHash as a byte array.
func (a *AddressKeyHash) PaymentHash() *[consensus.PaymentCredentialHashSize]byte {
	return &a.paymentHash
}

// ScriptHashToAddress converts a hex encoded validator script hash,
// optionally prefixed with "0x", into the enterprise address string for the
// named network. Any network other than "mainnet" selects the test network,
// matching the historical converter behavior; callers that need strict chain
// id handling should resolve a *consensus.Params through consensus.NetParams
// and use NewAddressScriptHash instead.
func ScriptHashToAddress(scriptHash, network string) (string, error) {
	hashBytes, err := decodeCredentialHex(scriptHash)
	if err != nil {
		return "", err
	}
	if len(hashBytes) != consensus.PaymentCredentialHashSize {
		return "", ErrUnsupportedCredentialHashLen
	}

	params := paramsForNetwork(network)
	return encodeEnterpriseAddress(params.Bech32HRP, consensus.ScriptAddressHeader(params.AddressNetworkID), hashBytes)
}

// KeyHashToAddress converts a hex encoded payment key hash, optionally
// prefixed with "0x", into the enterprise address string for the named
// network. The network selection follows the same rules as
// ScriptHashToAddress.
func KeyHashToAddress(keyHash, network string) (string, error) {
	hashBytes, err := decodeCredentialHex(keyHash)
	if err != nil {
		return "", err
	}
	if len(hashBytes) != consensus.PaymentCredentialHashSize {
		return "", ErrUnsupportedCredentialHashLen
	}

	params := paramsForNetwork(network)
	return encodeEnterpriseAddress(params.Bech32HRP, consensus.KeyAddressHeader(params.AddressNetworkID), hashBytes)
}

func paramsForNetwork(network string) *consensus.Params {
	if network == "mainnet" {
		return &consensus.MainNetParams
	}
	return &consensus.TestNetParams
}

func decodeCredentialHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	hashBytes, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid payment credential hash %q: %v", s, err)
	}
	return hashBytes, nil
}
