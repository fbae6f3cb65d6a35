package cli

import (
	"github.com/pankajredekar/shoeinv/internal/shell"
	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:   "value",
	Short: "Show the stock value of each shoe",
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

		values := a.store.TotalValuePerItem()
		if len(values) == 0 {
			a.p.Info("No shoes loaded yet.")
			return nil
		}
		for _, v := range values {
			a.p.Plain("%s", shell.FormatValue(v))
		}
		return nil
	},
}

var highestCmd = &cobra.Command{
	Use:   "highest",
	Short: "Show the shoe with the highest quantity",
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

		shoe, ok := a.store.HighestQuantity()
		if !ok {
			a.p.Info("No shoes loaded yet.")
			return nil
		}
		a.p.Plain("%s", shoe)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(highestCmd)
}
