package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fcgo/cashflow-projector/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a configuration file without running the projection",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(flagConfig)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s is valid: %d-year horizon, %d account(s)\n",
			flagConfig, cfg.Settings.HorizonYears, len(cfg.Accounts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
