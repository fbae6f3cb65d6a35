package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all shoes",
	Long:  "Loads the inventory file and prints every record in file order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.load(); err != nil {
			return err
		}

		shoes := a.store.All()
		if len(shoes) == 0 {
			a.p.Info("No shoes in the list yet.")
			return nil
		}
		for _, shoe := range shoes {
			a.p.Plain("%s", shoe)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
