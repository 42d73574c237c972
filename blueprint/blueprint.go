// Package blueprint reads Plutus contract blueprints (CIP-57), the
// plutus.json files emitted by on-chain toolchains, and exposes the compiled
// validator script hashes they carry.
package blueprint

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Blueprint is the decoded form of a Plutus contract blueprint.
type Blueprint struct {
	Preamble   Preamble     `json:"preamble"`
	Validators []*Validator `json:"validators"`
}

// Preamble carries the blueprint metadata.
type Preamble struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Version       string `json:"version"`
	PlutusVersion string `json:"plutusVersion"`
}

// Validator is one blueprint validator entry. Blueprints list an entry per
// purpose (spend, mint, else ...), so the same compiled hash usually appears
// more than once.
type Validator struct {
	Title string `json:"title"`
	Hash  string `json:"hash"`
}

// ScriptHash pairs a validator name with its compiled script hash.
type ScriptHash struct {
	Name string
	Hash string
}

// LoadFile reads and decodes the blueprint at path.
func LoadFile(path string) (*Blueprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	blueprint := &Blueprint{}
	if err := json.NewDecoder(file).Decode(blueprint); err != nil {
		return nil, fmt.Errorf("decode blueprint %s: %v", path, err)
	}
	return blueprint, nil
}

// ScriptHashes returns one entry per distinct compiled hash in blueprint
// order, named after the leading title segment, so the per-purpose entries
// of a validator collapse into one.
func (b *Blueprint) ScriptHashes() ([]ScriptHash, error) {
	seen := map[string]bool{}
	ret := []ScriptHash{}
	for i, v := range b.Validators {
		if v.Hash == "" {
			return nil, fmt.Errorf("validator[%d] %q has no hash", i, v.Title)
		}
		if seen[v.Hash] {
			continue
		}
		seen[v.Hash] = true
		ret = append(ret, ScriptHash{Name: validatorName(v.Title), Hash: v.Hash})
	}
	return ret, nil
}

// validatorName strips the purpose suffixes from a blueprint title:
// "escrow.escrow.spend" becomes "escrow".
func validatorName(title string) string {
	if idx := strings.IndexByte(title, '.'); idx > 0 {
		return title[:idx]
	}
	return title
}

// EnvKey derives the environment file variable name for a validator address
// line, e.g. "escrow" becomes "ESCROW_SCRIPT_ADDRESS".
func EnvKey(name string) string {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, strings.ToUpper(name))
	return key + "_SCRIPT_ADDRESS"
}
