package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/cardanokit/cardanokit/config"
	"github.com/cardanokit/cardanokit/log"
	"github.com/cardanokit/cardanokit/util"
)

const logModule = "addrconv"

var (
	config     = cfg.DefaultConfig()
	configFile string
)

// AddrconvCmd is addrconv's root command.
// Every other command attached to AddrconvCmd is a child command to it.
var AddrconvCmd = &cobra.Command{
	Use:   "addrconv",
	Short: "Addrconv converts Cardano payment credential hashes into Bech32 addresses.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			viper.SetConfigFile(configFile)
			if err := viper.ReadInConfig(); err != nil {
				return err
			}
		}
		if err := viper.Unmarshal(config); err != nil {
			return err
		}
		cfg.CommonConfig = config

		if config.LogDir != "" {
			return log.InitLogFile(config)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
}

func init() {
	AddrconvCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a TOML config file")
	AddrconvCmd.PersistentFlags().String("home", config.RootDir, "Root directory for config and blueprint files")
	AddrconvCmd.PersistentFlags().String("chain_id", config.ChainID, "Select network type: mainnet, testnet, preprod or preview")
	AddrconvCmd.PersistentFlags().String("log_dir", config.LogDir, "Write date-rotated logs under this directory instead of stderr")
	viper.BindPFlags(AddrconvCmd.PersistentFlags())
}

// Execute adds all child commands to the root command AddrconvCmd and sets
// flags appropriately.
func Execute() {
	AddCommands()

	if _, err := AddrconvCmd.ExecuteC(); err != nil {
		os.Exit(util.ErrLocalExe)
	}
}

// AddCommands adds child commands to the root command AddrconvCmd.
func AddCommands() {
	AddrconvCmd.AddCommand(convertCmd)
	AddrconvCmd.AddCommand(blueprintCmd)
	AddrconvCmd.AddCommand(initFilesCmd)
	AddrconvCmd.AddCommand(versionCmd)
}
