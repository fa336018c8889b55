package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/logging"
	"github.com/rshade/carbontrace/internal/tui"
)

// DefaultCriticalExitCode is the exit code of `alerts --fail-on-critical`.
const DefaultCriticalExitCode = 2

// alertsOutput is the JSON document of `alerts`.
type alertsOutput struct {
	Product string `json:"product"`
	emissions.AlertReport
}

// NewAlertsCmd creates the alerts command.
func NewAlertsCmd() *cobra.Command {
	var (
		failOnCritical bool
		exitCode       int
	)

	cmd := &cobra.Command{
		Use:   "alerts [product]",
		Short: "Flag stages that emit well above the product average",
		Long: `Grades every stage against the average stage of the product: above 1.5x the
average is critical, above the average is moderate, anything else is low.

With --fail-on-critical the command exits with --exit-code when any stage is
critical, for use in CI pipelines.`,
		Example: `  carbontrace alerts coffee
  carbontrace alerts --fail-on-critical --exit-code 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlerts(cmd, args, failOnCritical, exitCode)
		},
	}

	cmd.Flags().BoolVar(&failOnCritical, "fail-on-critical", false, "exit non-zero when any stage is critical")
	cmd.Flags().IntVar(&exitCode, "exit-code", DefaultCriticalExitCode, "exit code used by --fail-on-critical (1-255)")

	return cmd
}

func runAlerts(cmd *cobra.Command, args []string, failOnCritical bool, exitCode int) error {
	ctx := cmd.Context()
	app := appFrom(cmd)

	if exitCode < 1 || exitCode > 255 {
		return fmt.Errorf("exit-code must be between 1 and 255, got %d", exitCode)
	}
	format, err := app.Format()
	if err != nil {
		return err
	}
	product, err := app.Product(ctx, args)
	if err != nil {
		return err
	}
	report, err := emissions.EvaluateAlerts(product.Stages)
	if err != nil {
		return fmt.Errorf("product %s: %w", product.ID, err)
	}

	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		err = renderJSON(w, alertsOutput{Product: product.ID, AlertReport: report})
	case OutputNDJSON:
		err = renderNDJSON(w, report.Alerts)
	default:
		err = renderAlertsTable(cmd, product.Label(), report)
	}
	if err != nil {
		return err
	}

	if failOnCritical && report.HasCritical() {
		log := logging.FromContext(ctx)
		log.Warn().Ctx(ctx).
			Str("product", product.ID).
			Strs("critical_stages", report.CriticalStages).
			Msg("critical emission stages found")
		return &ExitError{
			Code: exitCode,
			Reason: fmt.Sprintf("%d critical stage(s) in %s: %s",
				report.Critical, product.ID, strings.Join(report.CriticalStages, ", ")),
		}
	}
	return nil
}

func renderAlertsTable(cmd *cobra.Command, label string, report emissions.AlertReport) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s - average %s per stage\n\n", tui.HeaderStyle.Render(label),
		greenops.FormatEmissionTooltip(report.Average))

	tw := newTable(w, "STAGE", "EMISSIONS", "VS AVERAGE", "LEVEL")
	for _, a := range report.Alerts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			a.Stage,
			greenops.FormatEmissionTooltip(a.Emissions),
			greenops.FormatSignedPercent(-emissions.ReductionPercent(report.Average, a.Emissions)),
			tui.AlertStyle(a.Level).Render(strings.ToUpper(string(a.Level))),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d critical, %d moderate, %d low\n", report.Critical, report.Moderate, report.Low)
	if report.HasCritical() {
		fmt.Fprintf(w, "%s\n", tui.CriticalStyle.Render("Critical: "+strings.Join(report.CriticalStages, ", ")))
	}
	return nil
}
