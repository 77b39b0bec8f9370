package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/plugingen/config"
	"github.com/teranos/plugingen/errors"
	"github.com/teranos/plugingen/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage plugingen configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default plugingen.toml in the working directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "plugingen.toml"
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("%s already exists", path)
		}
		if err := config.Write(config.Default(), path); err != nil {
			return err
		}
		logger.Logger.Infow("wrote default config", "path", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
