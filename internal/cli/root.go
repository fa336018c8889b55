package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/config"
	"github.com/rshade/carbontrace/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationSkipValidation marks command groups that must run even when the
// configuration is invalid.
const annotationSkipValidation = "carbontrace/skip-config-validation"

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	debug      bool
	configPath string
	data       string
	output     string
	projectDir string
}

// NewRootCmd creates the root Cobra command for the carbontrace CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithClock(ver, clockwork.NewRealClock())
}

// NewRootCmdWithClock creates the root command with an explicit clock so
// tests can pin export dates, goal deadlines and receipts.
func NewRootCmdWithClock(ver string, clock clockwork.Clock) *cobra.Command {
	var (
		flags     globalFlags
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:           "carbontrace",
		Short:         "Supply-chain carbon emission analysis",
		Long:          "CarbonTrace: analyze, compare and report supply-chain carbon emissions per product",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, projectDir, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result

			app := &App{Config: cfg, Clock: clock, ProjectDir: projectDir}
			cmd.SetContext(withApp(cmd.Context(), app))
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.configPath, "config", "", "additional config file merged over the user and project config")
	pf.StringVar(&flags.data, "data", "", "emission data file (.yaml, .json or .csv) instead of the built-in products")
	pf.StringVarP(&flags.output, "output", "o", "", "output format: table, json, ndjson (default from config)")
	pf.StringVar(&flags.projectDir, "project-dir", "", "project directory containing .carbontrace/ (default: auto-detect)")

	cmd.AddCommand(
		NewStagesCmd(), NewMetricsCmd(), NewCompareCmd(), NewAlertsCmd(),
		newExportCmd(), newGoalsCmd(), newOffsetsCmd(),
		NewDashboardCmd(), NewServeCmd(), NewVersionCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Show the stage breakdown of a product
  carbontrace stages coffee

  # Sort stages by emissions, largest first
  carbontrace stages mango --sort emissions:desc

  # Compare every product
  carbontrace compare

  # Fail a pipeline when any stage is critical
  carbontrace alerts cocoa --fail-on-critical

  # Export an executive report and render it in the terminal
  carbontrace export report --type executive --product coffee --render

  # Analyze your own data
  carbontrace stages --data emissions.csv

  # Open the interactive dashboard
  carbontrace dashboard`

// loadConfig resolves the effective configuration: user file, project
// overlay, --config file, environment, then flags.
func loadConfig(cmd *cobra.Command, flags globalFlags) (*config.Config, string, error) {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	projectDir := config.ResolveProjectDir(ctx, flags.projectDir, cwd)
	cfg := config.NewWithProjectDir(ctx, projectDir)
	if loadErr := cfg.LoadError(); loadErr != nil {
		cmd.PrintErrf("Warning: ignoring config file: %v\n", loadErr)
	}

	if flags.configPath != "" {
		if err = cfg.LoadFile(flags.configPath); err != nil {
			return nil, "", fmt.Errorf("loading --config: %w", err)
		}
		cfg.ApplyEnv()
	}
	if flags.output != "" {
		cfg.Output.DefaultFormat = strings.ToLower(flags.output)
	}
	if flags.data != "" {
		cfg.Data.Path = flags.data
	}

	if !skipsConfigValidation(cmd) {
		if err = cfg.Validate(); err != nil {
			return nil, "", err
		}
	}
	return cfg, projectDir, nil
}

func skipsConfigValidation(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationSkipValidation] == "true" {
			return true
		}
	}
	return false
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration management commands",
		Annotations: map[string]string{annotationSkipValidation: "true"},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
