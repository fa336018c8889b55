package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/export"
	"github.com/rshade/carbontrace/internal/logging"
	"github.com/rshade/carbontrace/internal/tui"
)

const exportFilePermissions = 0o644

// exportFlags are shared by the export subcommands.
type exportFlags struct {
	product string
	dir     string
	stdout  bool
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.product, "product", "p", "", "product to export (default: data.default_product)")
	cmd.Flags().StringVar(&f.dir, "dir", "", "output directory (default: data.export_dir or the current directory)")
	cmd.Flags().BoolVar(&f.stdout, "stdout", false, "write to stdout instead of a file")
}

// newExportCmd creates the export command group.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "export", Short: "Export emission data as CSV or text reports"}
	cmd.AddCommand(NewExportCSVCmd(), NewExportReportCmd())
	return cmd
}

// NewExportCSVCmd creates the export csv command.
func NewExportCSVCmd() *cobra.Command {
	var (
		flags exportFlags
		kind  string
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export a product's stages or the product comparison as CSV",
		Example: `  # coffee_emissions_<date>.csv in the current directory
  carbontrace export csv --product coffee

  # product_comparison_<date>.csv in ./exports
  carbontrace export csv --kind comparison --dir exports`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExportCSV(cmd, export.Kind(kind), flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", string(export.KindEmissions), "what to export: emissions or comparison")

	return cmd
}

func runExportCSV(cmd *cobra.Command, kind export.Kind, flags exportFlags) error {
	ctx := cmd.Context()
	app := appFrom(cmd)

	var (
		buf     bytes.Buffer
		product string
	)
	switch kind {
	case export.KindEmissions:
		p, err := app.Product(ctx, productArgs(flags.product))
		if err != nil {
			return err
		}
		product = p.ID
		if err = export.WriteRecordsCSV(&buf, p.Stages); err != nil {
			return err
		}
	case export.KindComparison:
		cat, err := app.Catalog(ctx)
		if err != nil {
			return err
		}
		if err = export.WriteComparisonCSV(&buf, cat.Comparison()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported export kind %q (use emissions or comparison)", kind)
	}

	return writeExport(cmd, flags, export.Filename(kind, product, app.Clock), buf.Bytes())
}

// NewExportReportCmd creates the export report command.
func NewExportReportCmd() *cobra.Command {
	var (
		flags      exportFlags
		reportType string
		render     bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a plain-text emission report",
		Long: `Generates one of the report types: summary, executive, technical,
compliance or investor. Without --type a terminal prompts for it; otherwise
the summary report is produced.

--render prints the report as styled markdown instead of writing a file.`,
		Example: `  carbontrace export report --type executive --product mango
  carbontrace export report --type investor --render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExportReport(cmd, reportType, render, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&reportType, "type", "t", "", "report type: summary, executive, technical, compliance, investor")
	cmd.Flags().BoolVar(&render, "render", false, "render the report in the terminal as markdown")

	return cmd
}

func runExportReport(cmd *cobra.Command, typeFlag string, render bool, flags exportFlags) error {
	ctx := cmd.Context()
	app := appFrom(cmd)

	t, err := resolveReportType(typeFlag)
	if err != nil {
		return err
	}
	cat, err := app.Catalog(ctx)
	if err != nil {
		return err
	}
	p, err := app.Product(ctx, productArgs(flags.product))
	if err != nil {
		return err
	}

	report, err := export.Generate(ctx, t, export.ReportInput{
		Product:     p.Name,
		Records:     p.Stages,
		Comparison:  cat.Comparison(),
		GeneratedAt: app.Clock.Now(),
	})
	if err != nil {
		return err
	}

	if render {
		out, renderErr := export.RenderMarkdown(export.ToMarkdown(report), tui.TerminalWidth(export.DefaultRenderWidth))
		if renderErr != nil {
			return renderErr
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	return writeExport(cmd, flags, export.ReportFilename(t, p.ID, app.Clock), []byte(report))
}

// resolveReportType parses --type, prompting in a terminal when it is empty.
func resolveReportType(typeFlag string) (export.ReportType, error) {
	if typeFlag != "" {
		return export.ParseReportType(typeFlag)
	}
	if !tui.IsTTY() {
		return export.ReportSummary, nil
	}
	return SelectReportType()
}

func productArgs(product string) []string {
	if product == "" {
		return nil
	}
	return []string{product}
}

// writeExport writes data to name under the export directory, or to stdout.
func writeExport(cmd *cobra.Command, flags exportFlags, name string, data []byte) error {
	if flags.stdout {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	app := appFrom(cmd)
	dir := flags.dir
	if dir == "" {
		dir = app.Config.Data.ExportDir
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, exportFilePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	log.Info().Ctx(ctx).Str("operation", "export").Str("path", path).Int("bytes", len(data)).Msg("export written")

	cmd.Printf("Exported %s\n", path)
	return nil
}
