package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnolang/razorconv/converter"
)

// initCmd: razorconv init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := initConfigurationFile(cfgFile)
		if err != nil {
			return fmt.Errorf("initializing config file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
		return nil
	},
}

func initConfigurationFile(configurationPath string) (string, error) {
	if configurationPath == "" {
		configurationPath = converter.DefaultConfigPath
	}
	if err := converter.WriteConfig(configurationPath, converter.DefaultConfig()); err != nil {
		return "", err
	}
	return configurationPath, nil
}
