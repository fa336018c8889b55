package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/config"
	"github.com/rshade/carbontrace/internal/dataset"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Validates the effective configuration (user file, project overlay, --config,
environment and flags). This includes:
- output format and precision
- logging level and format
- classification thresholds (ordered and positive)
- offset pricing
- the data file, when data.path is set`,
		Example: `  # Validate current configuration
  carbontrace config validate

  # Validate and show detailed information
  carbontrace config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := appFrom(cmd).Config

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	products := 0
	if cfg.Data.Path != "" {
		cat, err := dataset.LoadFile(cmd.Context(), cfg.Data.Path)
		if err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
		products = len(cat.Products())
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg, products)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, products int) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Thresholds: low below %g, medium below %g of the largest stage\n", cfg.Classification.Low, cfg.Classification.Medium)
	if cfg.Data.Path == "" {
		cmd.Println("  Data: built-in product profiles")
	} else {
		cmd.Printf("  Data: %s (%d products)\n", cfg.Data.Path, products)
	}
}
