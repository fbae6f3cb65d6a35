package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pankajredekar/shoeinv/internal/inventory"
	"github.com/pankajredekar/shoeinv/internal/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a shoe inventory",
	Long:  "Creates a shoeinv.yml configuration file and an empty inventory file next to it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := utils.NewPrinter(cmd.OutOrStdout(), !noColor)

		if utils.FileExists(configPath) {
			p.Warning("%s already exists", configPath)
			return nil
		}

		// --file is taken relative to the working directory, as in every other command
		configDir := filepath.Dir(configPath)
		inventoryFile := inventoryPath
		if inventoryFile == "" {
			inventoryFile = filepath.Join(configDir, "inventory.txt")
		}
		configured, err := configRelative(configDir, inventoryFile)
		if err != nil {
			p.Error("Failed to resolve inventory file: %v", err)
			return reported(err)
		}

		config := map[string]interface{}{
			"inventory_file": configured,
			"log_level":      "warn",
			"log_file":       "stderr",
			"color":          true,
		}

		data, err := yaml.Marshal(config)
		if err != nil {
			p.Error("Failed to generate config: %v", err)
			return reported(err)
		}

		// Create inventory file holding only the header, before the config points at it
		created := false
		if !utils.FileExists(inventoryFile) {
			if err := os.MkdirAll(filepath.Dir(inventoryFile), 0755); err != nil {
				p.Error("Failed to create inventory directory: %v", err)
				return reported(err)
			}
			if err := os.WriteFile(inventoryFile, []byte(fmt.Sprintln(inventory.Header)), 0644); err != nil {
				p.Error("Failed to create inventory file: %v", err)
				return reported(err)
			}
			created = true
		}

		if err := writeConfig(configPath, data); err != nil {
			if created {
				_ = os.Remove(inventoryFile)
			}
			p.Error("Failed to write config file: %v", err)
			return reported(err)
		}

		p.Success("Initialized shoe inventory")
		p.Info("Created %s", configPath)
		if created {
			p.Info("Created %s", inventoryFile)
		}
		return nil
	},
}

// configRelative expresses path relative to configDir so LoadConfig resolves it back to the same file
func configRelative(configDir, path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	if rel, err := filepath.Rel(configDir, path); err == nil {
		return rel, nil
	}
	return filepath.Abs(path)
}

func writeConfig(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func init() {
	rootCmd.AddCommand(initCmd)
}
