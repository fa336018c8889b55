package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/cli/pagination"
	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/tui"
)

// NewCompareCmd creates the compare command.
func NewCompareCmd() *cobra.Command {
	var (
		sortExpr string
		limit    int
		chart    bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank every product by total emissions",
		Long: `Ranks the products of the catalog from lowest to highest total emissions with
their sustainability score and impact level.`,
		Example: `  carbontrace compare
  carbontrace compare --sort score:desc -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, sortExpr, limit, chart)
		},
	}

	cmd.Flags().StringVar(&sortExpr, "sort", "", "sort by field[:asc|desc] (product, total, rank, score)")
	cmd.Flags().IntVar(&limit, "limit", pagination.DefaultLimit, "maximum number of products to show (0 = all)")
	cmd.Flags().BoolVar(&chart, "chart", true, "draw a bar chart below the table")

	return cmd
}

func runCompare(cmd *cobra.Command, sortExpr string, limit int, chart bool) error {
	ctx := cmd.Context()
	app := appFrom(cmd)

	format, err := app.Format()
	if err != nil {
		return err
	}
	params, err := listParams(sortExpr, limit, 0)
	if err != nil {
		return err
	}
	sorter := pagination.NewComparisonSorter()
	if err = sorter.CheckField(params.SortField); err != nil {
		return err
	}
	cat, err := app.Catalog(ctx)
	if err != nil {
		return err
	}

	ranked := emissions.Rank(cat.Comparison())
	if params.SortField != "" {
		ranked = sorter.Sort(ranked, params.SortField, params.SortOrder)
	}
	shown := pagination.Apply(params, ranked)

	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return renderJSON(w, shown)
	case OutputNDJSON:
		return renderNDJSON(w, shown)
	}

	tw := newTable(w, "RANK", "PRODUCT", "TOTAL", "SCORE", "IMPACT")
	for _, r := range shown {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n",
			r.Rank,
			r.Product,
			greenops.FormatEmissionTooltip(r.TotalEmissions),
			r.SustainabilityScore,
			tui.RankingStyle(r.Position).Render(r.ImpactLevel),
		)
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	if footer := pagination.NewMeta(params, len(shown), len(ranked)).Footer("products"); footer != "" {
		fmt.Fprintln(w, tui.SubtleStyle.Render(footer))
	}
	if chart && len(shown) > 0 {
		fmt.Fprintf(w, "\n%s\n", tui.RenderComparisonChart(shown, chartWidth()))
	}
	return nil
}
