package commands

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/cardanokit/cardanokit/common"
	"github.com/cardanokit/cardanokit/consensus"
	"github.com/cardanokit/cardanokit/util"
)

var credentialType string

func init() {
	convertCmd.Flags().StringVar(&credentialType, "credential", "script", "Payment credential type: script or key")
}

var convertCmd = &cobra.Command{
	Use:   "convert <hash>",
	Short: "Convert a payment credential hash to a Bech32 address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := consensus.InitActiveNetParams(config.ChainID); err != nil {
			jww.ERROR.Println("convert:", err)
			os.Exit(util.ErrLocalExe)
		}

		hashBytes, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
		if err != nil {
			jww.ERROR.Println("convert:", err)
			os.Exit(util.ErrLocalParse)
		}

		var addr common.Address
		switch credentialType {
		case "script":
			addr, err = common.NewAddressScriptHash(hashBytes, &consensus.ActiveNetParams)
		case "key":
			addr, err = common.NewAddressKeyHash(hashBytes, &consensus.ActiveNetParams)
		default:
			jww.ERROR.Printf("convert: unknown credential type %q\n", credentialType)
			os.Exit(util.ErrLocalExe)
		}
		if err != nil {
			jww.ERROR.Println("convert:", err)
			os.Exit(util.ErrLocalExe)
		}

		jww.FEEDBACK.Println(addr.EncodeAddress())
	},
}
