package blueprint

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBlueprint = `{
  "preamble": {
    "title": "example/escrow",
    "description": "Aiken contracts",
    "version": "0.1.0",
    "plutusVersion": "v2"
  },
  "validators": [
    {
      "title": "escrow.escrow.spend",
      "hash": "795b08f17216887d0fdd83dec60790a79fba0998ac9d76eb2c7ed80a"
    },
    {
      "title": "escrow.escrow.else",
      "hash": "795b08f17216887d0fdd83dec60790a79fba0998ac9d76eb2c7ed80a"
    },
    {
      "title": "pool.pool.spend",
      "hash": "734799794c30fc4fe3431c3ccf811d15b6fed58d397d2cf1cde33a43"
    }
  ]
}`

func writeBlueprint(t *testing.T, content string) string {
	tmpDir, err := ioutil.TempDir("", "blueprint-test")
	require.Nil(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	path := filepath.Join(tmpDir, "plutus.json")
	require.Nil(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	bp, err := LoadFile(writeBlueprint(t, testBlueprint))
	require.Nil(err)

	assert.Equal("example/escrow", bp.Preamble.Title)
	assert.Equal("v2", bp.Preamble.PlutusVersion)
	assert.Len(bp.Validators, 3)
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile("does-not-exist/plutus.json"); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := LoadFile(writeBlueprint(t, "{not json")); err == nil {
		t.Error("malformed blueprint accepted")
	}
}

func TestScriptHashes(t *testing.T) {
	assert, require := assert.New(t), require.New(t)

	bp, err := LoadFile(writeBlueprint(t, testBlueprint))
	require.Nil(err)

	hashes, err := bp.ScriptHashes()
	require.Nil(err)

	// The two escrow purposes share one compiled hash.
	require.Len(hashes, 2)
	assert.Equal("escrow", hashes[0].Name)
	assert.Equal("795b08f17216887d0fdd83dec60790a79fba0998ac9d76eb2c7ed80a", hashes[0].Hash)
	assert.Equal("pool", hashes[1].Name)
	assert.Equal("734799794c30fc4fe3431c3ccf811d15b6fed58d397d2cf1cde33a43", hashes[1].Hash)
}

func TestScriptHashesMissingHash(t *testing.T) {
	bp := &Blueprint{Validators: []*Validator{{Title: "broken.spend"}}}
	if _, err := bp.ScriptHashes(); err == nil {
		t.Error("validator without hash accepted")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "escrow", want: "ESCROW_SCRIPT_ADDRESS"},
		{name: "pool", want: "POOL_SCRIPT_ADDRESS"},
		{name: "order-book", want: "ORDER_BOOK_SCRIPT_ADDRESS"},
		{name: "v2 pool", want: "V2_POOL_SCRIPT_ADDRESS"},
	}

	for _, test := range tests {
		if got := EnvKey(test.name); got != test.want {
			t.Errorf("EnvKey(%q): got %s, want %s", test.name, got, test.want)
		}
	}
}
