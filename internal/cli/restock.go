package cli

import (
	"errors"

	"github.com/pankajredekar/shoeinv/internal/inventory"
	"github.com/spf13/cobra"
)

var restockCmd = &cobra.Command{
	Use:   "restock <quantity>",
	Short: "Restock the lowest quantity shoe",
	Long:  "Adds the given quantity to whichever shoe currently has the fewest units and saves the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.load(); err != nil {
			return err
		}

		shoe, err := a.store.RestockLowest(args[0])
		switch {
		case errors.Is(err, inventory.ErrEmpty):
			a.p.Info("No shoes loaded yet.")
			return nil
		case errors.Is(err, inventory.ErrInvalidInput):
			a.p.Error("Please enter a valid number.")
			return reported(err)
		case err != nil:
			a.p.Error("Failed to save inventory: %v", err)
			return reported(err)
		}

		a.p.Success("Restocked %s", shoe)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restockCmd)
}
