package cli

import (
	"errors"
	"fmt"

	"github.com/pankajredekar/shoeinv/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath    string
	inventoryPath string
	noColor       bool
)

var rootCmd = &cobra.Command{
	Use:           "shoeinv",
	Short:         "Shoe inventory manager",
	Long:          "shoeinv keeps a shoe inventory in a comma-delimited text file. Run without a subcommand for the interactive menu.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the config file")
	rootCmd.PersistentFlags().StringVar(&inventoryPath, "file", "", "inventory file (overrides inventory_file from config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	var re reportedError
	if err != nil && !errors.As(err, &re) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}
