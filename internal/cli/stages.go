package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/cli/pagination"
	"github.com/rshade/carbontrace/internal/dataset"
	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/logging"
	"github.com/rshade/carbontrace/internal/tui"
)

// stageListFlags holds the flags of `stages`.
type stageListFlags struct {
	sort     string
	limit    int
	offset   int
	addStage bool
	stages   []string
	filters  []string
	chart    bool
}

// stagesOutput is the JSON document of `stages`.
type stagesOutput struct {
	Product    string                     `json:"product"`
	Metrics    emissions.Metrics          `json:"metrics"`
	Stages     []emissions.StageBreakdown `json:"stages"`
	Pagination *pagination.Meta           `json:"pagination,omitempty"`
}

// NewStagesCmd creates the stages command.
func NewStagesCmd() *cobra.Command {
	var flags stageListFlags

	cmd := &cobra.Command{
		Use:   "stages [product]",
		Short: "Show the per-stage emission breakdown of a product",
		Long: `Lists every supply-chain stage of a product with its emissions, share of the
total, ratio to the largest stage, impact tier and severity.

Custom stages can be appended for this invocation with --stage or, in a
terminal, interactively with --add-stage.`,
		Example: `  # Coffee stages
  carbontrace stages coffee

  # Only high-impact stages
  carbontrace stages coffee --filter tier=high

  # Largest two stages as JSON
  carbontrace stages mango --sort emissions:desc --limit 2 -o json

  # Add a stage without prompting (amounts accept g, kg, t and lb)
  carbontrace stages cocoa --stage "Roasting=0.4t=Recover kiln heat"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStages(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort by field[:asc|desc] (stage, emissions, ratio, share, tier)")
	cmd.Flags().IntVar(&flags.limit, "limit", pagination.DefaultLimit, "maximum number of stages to show (0 = all)")
	cmd.Flags().IntVar(&flags.offset, "offset", pagination.DefaultOffset, "number of stages to skip")
	cmd.Flags().BoolVar(&flags.addStage, "add-stage", false, "interactively add a custom stage before listing")
	cmd.Flags().StringArrayVar(&flags.stages, "stage", nil, "add a stage as Stage=Amount[=Recommendation] (repeatable)")
	cmd.Flags().StringArrayVar(&flags.filters, "filter", nil, "keep stages matching key=value (stage, tier, severity; repeatable)")
	cmd.Flags().BoolVar(&flags.chart, "chart", true, "draw a bar chart below the table")

	return cmd
}

func runStages(cmd *cobra.Command, args []string, flags stageListFlags) error {
	ctx := cmd.Context()
	app := appFrom(cmd)

	format, err := app.Format()
	if err != nil {
		return err
	}
	params, err := listParams(flags.sort, flags.limit, flags.offset)
	if err != nil {
		return err
	}
	sorter := pagination.NewStageSorter()
	if err = sorter.CheckField(params.SortField); err != nil {
		return err
	}

	product, err := app.Product(ctx, args)
	if err != nil {
		return err
	}
	product, err = addCustomStages(ctx, app, product, flags)
	if err != nil {
		return err
	}
	if len(product.Stages) == 0 {
		return fmt.Errorf("product %s has no stages: %w", product.ID, emissions.ErrEmptyRecords)
	}

	metrics, err := emissions.CalculateMetrics(product.Stages)
	if err != nil {
		return err
	}
	rows, err := ApplyFilters(ctx, emissions.Breakdown(product.Stages, app.Config.Classification), flags.filters)
	if err != nil {
		return err
	}
	if params.SortField != "" {
		rows = sorter.Sort(rows, params.SortField, params.SortOrder)
	}
	shown := pagination.Apply(params, rows)
	meta := pagination.NewMeta(params, len(shown), len(rows))

	log := logging.FromContext(ctx)
	log.Debug().Ctx(ctx).
		Str("operation", "stages").
		Str("product", product.ID).
		Int("stage_count", len(rows)).
		Msg("stage breakdown computed")

	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		out := stagesOutput{Product: product.ID, Metrics: metrics, Stages: shown}
		if params.IsEnabled() {
			out.Pagination = &meta
		}
		return renderJSON(w, out)
	case OutputNDJSON:
		return renderNDJSON(w, shown)
	default:
		return renderStagesTable(w, product, metrics, shown, meta, flags.chart)
	}
}

// listParams builds validated pagination parameters from flag values.
func listParams(sortExpr string, limit, offset int) (pagination.Params, error) {
	field, order, err := pagination.ParseSort(sortExpr)
	if err != nil {
		return pagination.Params{}, err
	}
	params := pagination.Params{Limit: limit, Offset: offset, SortField: field, SortOrder: order}
	if err = params.Validate(); err != nil {
		return pagination.Params{}, err
	}
	return params, nil
}

// addCustomStages appends --stage and --add-stage records to product and
// installs the updated catalog for the rest of the invocation.
func addCustomStages(
	ctx context.Context,
	app *App,
	product dataset.Product,
	flags stageListFlags,
) (dataset.Product, error) {
	records := make([]emissions.Record, 0, len(flags.stages)+1)
	for _, spec := range flags.stages {
		rec, err := ParseStageSpec(spec)
		if err != nil {
			return product, err
		}
		records = append(records, rec)
	}
	if flags.addStage {
		rec, err := PromptStage()
		if err != nil {
			return product, fmt.Errorf("adding stage: %w", err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return product, nil
	}

	cat, err := app.Catalog(ctx)
	if err != nil {
		return product, err
	}
	for _, rec := range records {
		if cat, err = cat.WithStage(product.ID, rec); err != nil {
			return product, err
		}
		log := logging.FromContext(ctx)
		log.Info().Ctx(ctx).
			Str("product", product.ID).
			Str("stage", rec.Stage).
			Float64("emissions", rec.Emissions).
			Msg("custom stage added")
	}
	app.SetCatalog(cat)
	return cat.Lookup(product.ID)
}

func renderStagesTable(
	w io.Writer,
	product dataset.Product,
	metrics emissions.Metrics,
	rows []emissions.StageBreakdown,
	meta pagination.Meta,
	chart bool,
) error {
	fmt.Fprintf(w, "%s - %s total\n\n", tui.HeaderStyle.Render(product.Label()),
		greenops.FormatEmissionTooltip(metrics.Total))

	tw := newTable(w, "STAGE", "EMISSIONS", "SHARE", "OF MAX", "SEVERITY", "IMPACT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Stage,
			r.Tooltip,
			formatPercent(r.Share),
			formatPercent(r.Ratio*100), //nolint:mnd // Ratio to percent.
			r.Severity,
			tui.TierStyle(r.Tier).Render(r.Tier.Label()),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if footer := meta.Footer("stages"); footer != "" {
		fmt.Fprintln(w, tui.SubtleStyle.Render(footer))
	}

	fmt.Fprintf(w, "\nAverage per stage: %s\n", greenops.FormatEmissionTooltip(metrics.Average))
	if chart && len(rows) > 0 {
		fmt.Fprintf(w, "\n%s\n", tui.RenderStageChart(rows, chartWidth()))
	}
	return nil
}

// chartWidth sizes CLI bar charts to the terminal.
func chartWidth() int {
	const (
		fallbackWidth = 80
		reserved      = 40
		minBar        = 10
		maxBar        = 40
	)
	return min(max(tui.TerminalWidth(fallbackWidth)-reserved, minBar), maxBar)
}
