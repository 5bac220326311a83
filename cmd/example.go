package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fcgo/cashflow-projector/internal/config"
	"github.com/fcgo/cashflow-projector/internal/output"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example configuration file",
	Long:  "Write a ready-to-run example configuration (default cashflow.yaml) that can be edited and projected.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := "cashflow.yaml"
		if len(args) == 1 {
			filename = args[0]
		}
		if _, err := os.Stat(filename); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", filename)
		}
		cfg := config.NewInputParser().CreateExampleConfiguration()
		if err := output.SaveConfiguration(cfg, filename); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Example configuration written to %s\n", filename)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
