package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fcgo/cashflow-projector/internal/calculation"
	"github.com/fcgo/cashflow-projector/internal/config"
	"github.com/fcgo/cashflow-projector/internal/logging"
	"github.com/fcgo/cashflow-projector/internal/output"
)

var (
	flagConfig  string
	flagFormat  string
	flagOutput  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Household cashflow projection CLI",
	Long:  "Project a two-income household's year-by-year cashflow, taxes, and investment growth from a config file.",
	RunE:  runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "cashflow.yaml", "Configuration file (YAML or TOML)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to this file instead of stdout/default naming")
}

// runProject loads the config, runs the engine, and renders the projection.
func runProject(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(flagConfig)
	if err != nil {
		return err
	}

	engine := calculation.NewProjectionEngine()
	engine.Debug = flagVerbose
	engine.SetLogger(logging.NewConsoleLogger(flagVerbose))

	projection, err := engine.Project(&cfg.Settings, cfg.Accounts)
	if err != nil {
		return err
	}

	name := output.NormalizeFormatName(flagFormat)
	formatter := output.GetFormatterByName(name)
	if formatter == nil {
		return output.UnsupportedFormatError(flagFormat)
	}

	data, err := formatter.Format(projection)
	if err != nil {
		return err
	}
	if flagOutput != "" {
		return os.WriteFile(flagOutput, data, 0644)
	}
	// Console formats print to stdout; file formats get a timestamped name.
	if name == "console" || name == "console-lite" {
		_, err = os.Stdout.Write(data)
		return err
	}
	filename, err := output.WriteFormatted(formatter, projection, extensionFor(name))
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", filename)
	return nil
}

func extensionFor(name string) string {
	switch name {
	case "csv", "detailed-csv":
		return "csv"
	case "json":
		return "json"
	case "html":
		return "html"
	default:
		return "txt"
	}
}
