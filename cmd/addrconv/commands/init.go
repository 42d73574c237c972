package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/cardanokit/cardanokit/config"
)

var initFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config directory",
	Run:   initFiles,
}

func initFiles(cmd *cobra.Command, args []string) {
	if err := cfg.EnsureRoot(config.RootDir, config.ChainID); err != nil {
		log.WithFields(log.Fields{"module": logModule, "error": err}).Fatal("Failed to initialize config")
	}

	log.WithFields(log.Fields{"module": logModule, "config": config.ConfigFile()}).Info("Initialized addrconv")
}
