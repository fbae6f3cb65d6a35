package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <code>",
	Short: "Find a shoe by code",
	Long:  "Prints the first shoe whose code matches, ignoring case. Exits non-zero when nothing matches.",
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

		shoe, ok := a.store.FindByCode(args[0])
		if !ok {
			a.p.Warning("Shoe not found.")
			return reported(fmt.Errorf("no shoe with code %q", args[0]))
		}
		a.p.Plain("%s", shoe)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
