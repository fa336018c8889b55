package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/classify"
	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/tui"
)

// metricsOutput is the JSON document of `metrics`.
type metricsOutput struct {
	Product             string                      `json:"product"`
	Metrics             emissions.Metrics           `json:"metrics"`
	HighestStage        emissions.Record            `json:"highestStage"`
	SustainabilityScore int                         `json:"sustainabilityScore"`
	ScoreTier           classify.Tier               `json:"scoreTier"`
	Equivalency         *greenops.EquivalencyOutput `json:"equivalency,omitempty"`
}

// NewMetricsCmd creates the metrics command.
func NewMetricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics [product]",
		Short: "Show total, highest, lowest and average emissions of a product",
		Long: `Summarizes a product's emission profile. The sustainability score compares the
product total with the highest-emitting product of the catalog (100 = no
emissions, 0 = the worst product).`,
		Example: `  carbontrace metrics coffee
  carbontrace metrics avocado -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runMetrics,
	}
}

func runMetrics(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	app := appFrom(cmd)

	format, err := app.Format()
	if err != nil {
		return err
	}
	cat, err := app.Catalog(ctx)
	if err != nil {
		return err
	}
	product, err := app.Product(ctx, args)
	if err != nil {
		return err
	}

	metrics, err := emissions.CalculateMetrics(product.Stages)
	if err != nil {
		return fmt.Errorf("product %s: %w", product.ID, err)
	}
	highest, err := emissions.HighestStage(product.Stages)
	if err != nil {
		return err
	}
	score := emissions.SustainabilityScore(metrics.Total, emissions.MaxTotal(cat.Comparison()))

	out := metricsOutput{
		Product:             product.ID,
		Metrics:             metrics,
		HighestStage:        highest,
		SustainabilityScore: score,
		ScoreTier:           classify.ScoreTier(score),
	}
	if eq, eqErr := greenops.Calculate(ctx, greenops.CarbonInput{Value: metrics.Total, Unit: "kg"}); eqErr == nil &&
		!eq.IsEmpty {
		out.Equivalency = &eq
	}

	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return renderJSON(w, out)
	case OutputNDJSON:
		return renderNDJSON(w, []metricsOutput{out})
	}

	fmt.Fprintln(w, tui.HeaderStyle.Render(product.Label()))
	tw := newTable(w, "METRIC", "VALUE")
	fmt.Fprintf(tw, "Total\t%s\n", greenops.FormatEmissionTooltip(metrics.Total))
	fmt.Fprintf(tw, "Total (tonnes)\t%s\n", greenops.FormatTonnes(metrics.Total))
	fmt.Fprintf(tw, "Highest\t%s (%s)\n", greenops.FormatEmissionTooltip(metrics.Max), highest.Stage)
	fmt.Fprintf(tw, "Lowest\t%s\n", greenops.FormatEmissionTooltip(metrics.Min))
	fmt.Fprintf(tw, "Average\t%s\n", greenops.FormatEmissionTooltip(metrics.Average))
	fmt.Fprintf(tw, "Stages\t%d\n", len(product.Stages))
	fmt.Fprintf(tw, "Sustainability score\t%s\n",
		tui.TierStyle(out.ScoreTier).Render(fmt.Sprintf("%d/100", score)))
	if err = tw.Flush(); err != nil {
		return err
	}
	if out.Equivalency != nil {
		fmt.Fprintf(w, "\n%s\n", tui.InfoStyle.Render(out.Equivalency.DisplayText))
	}
	return nil
}
