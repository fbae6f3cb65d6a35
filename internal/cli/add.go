package cli

import (
	"github.com/pankajredekar/shoeinv/internal/inventory"
	"github.com/spf13/cobra"
)

var addFlags struct {
	country  string
	code     string
	product  string
	cost     string
	quantity string
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a shoe and save the inventory",
	Long:  "Loads the inventory file, appends a new shoe and rewrites the file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		shoe, err := inventory.NewShoe(addFlags.country, addFlags.code, addFlags.product, addFlags.cost, addFlags.quantity)
		if err != nil {
			a.p.Error("Could not add shoe: %v", err)
			return reported(err)
		}

		if err := a.load(); err != nil {
			return err
		}
		a.store.Append(shoe)
		if err := a.store.Save(a.store.Path()); err != nil {
			a.p.Error("Failed to save inventory: %v", err)
			return reported(err)
		}

		a.p.Success("Added %s", shoe)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addFlags.country, "country", "", "country of manufacture")
	addCmd.Flags().StringVar(&addFlags.code, "code", "", "product code")
	addCmd.Flags().StringVar(&addFlags.product, "product", "", "product name")
	addCmd.Flags().StringVar(&addFlags.cost, "cost", "", "unit cost")
	addCmd.Flags().StringVar(&addFlags.quantity, "quantity", "", "units on hand")
	for _, name := range []string{"code", "cost", "quantity"} {
		_ = addCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(addCmd)
}
