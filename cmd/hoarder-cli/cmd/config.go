package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hoarder/internal/adapters/editor"
	"hoarder/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [path|init|edit]",
	Short: "Manage the configuration file",
	Long: `Manage the configuration file.

Examples:
  hoarder-cli config path
  hoarder-cli config init
  hoarder-cli config edit`,
}

// configFile is the file the other config commands act on
func configFile() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(configFile())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile()
		created, err := config.WriteDefault(path)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("Wrote %s\n", path)
		} else {
			fmt.Printf("%s already exists\n", path)
		}
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in $EDITOR, creating it if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile()
		if _, err := config.WriteDefault(path); err != nil {
			return err
		}
		return editor.NewOpener().OpenFile(path)
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}
