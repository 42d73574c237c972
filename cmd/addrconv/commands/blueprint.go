package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/cardanokit/cardanokit/blueprint"
	"github.com/cardanokit/cardanokit/common"
	"github.com/cardanokit/cardanokit/util"
)

var blueprintCmd = &cobra.Command{
	Use:   "blueprint [plutus.json]",
	Short: "Print addresses for every validator in a Plutus blueprint",
	Long: `Print addresses for every validator in a Plutus blueprint.

For each distinct compiled validator the command prints the script hash and
its testnet and mainnet addresses, followed by KEY=value lines for the
configured network, suitable for appending to an environment file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := config.BlueprintFile()
		if len(args) == 1 {
			path = args[0]
		}

		bp, err := blueprint.LoadFile(path)
		if err != nil {
			jww.ERROR.Println("blueprint:", err)
			os.Exit(util.ErrLocalParse)
		}

		hashes, err := bp.ScriptHashes()
		if err != nil {
			jww.ERROR.Println("blueprint:", err)
			os.Exit(util.ErrLocalParse)
		}

		for _, sh := range hashes {
			testnetAddr, err := common.ScriptHashToAddress(sh.Hash, "testnet")
			if err != nil {
				jww.ERROR.Printf("blueprint: validator %s: %v\n", sh.Name, err)
				os.Exit(util.ErrLocalExe)
			}
			mainnetAddr, err := common.ScriptHashToAddress(sh.Hash, "mainnet")
			if err != nil {
				jww.ERROR.Printf("blueprint: validator %s: %v\n", sh.Name, err)
				os.Exit(util.ErrLocalExe)
			}

			jww.FEEDBACK.Printf("=== %s VALIDATOR ===\n", strings.ToUpper(sh.Name))
			jww.FEEDBACK.Printf("Hash: %s\n", sh.Hash)
			jww.FEEDBACK.Printf("Testnet Address: %s\n", testnetAddr)
			jww.FEEDBACK.Printf("Mainnet Address: %s\n", mainnetAddr)
			jww.FEEDBACK.Println()
		}

		jww.FEEDBACK.Println("=== For .env file ===")
		for _, sh := range hashes {
			addr, err := common.ScriptHashToAddress(sh.Hash, config.ChainID)
			if err != nil {
				jww.ERROR.Printf("blueprint: validator %s: %v\n", sh.Name, err)
				os.Exit(util.ErrLocalExe)
			}
			jww.FEEDBACK.Printf("%s=%s\n", blueprint.EnvKey(sh.Name), addr)
		}
	},
}
