package cli

import (
	"github.com/pankajredekar/shoeinv/internal/logger"
	"github.com/pankajredekar/shoeinv/internal/shell"
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu",
	Long:  "Starts the numbered inventory menu. Nothing is loaded until option 1 is chosen.",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sh := shell.New(a.store, cmd.InOrStdin(), a.p, logger.Named(a.log, "shell"))
	return sh.Run()
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
