package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/goals"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/tui"
)

const progressBarWidth = 20

// newGoalsCmd creates the goals command group. Goals live for one
// invocation; every command starts from the seeded goals.
func newGoalsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "goals", Short: "Sustainability goals, templates and reduction planning"}
	cmd.AddCommand(NewGoalsListCmd(), NewGoalsAddCmd(), NewGoalsTemplatesCmd(),
		NewGoalsApplyCmd(), NewGoalsReductionCmd())
	return cmd
}

// NewGoalsListCmd creates the goals list command.
func NewGoalsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sustainability goals and their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := appFrom(cmd)
			return renderGoals(cmd, goals.NewTracker(app.Clock).Goals())
		},
	}
}

// NewGoalsAddCmd creates the goals add command.
func NewGoalsAddCmd() *cobra.Command {
	var (
		title    string
		target   float64
		deadline string
		current  float64
	)

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a goal and show it alongside the existing goals",
		Example: `  carbontrace goals add --title "Electrify the fleet" --target 40 --deadline 2026-12-31 --current 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tracker := goals.NewTracker(appFrom(cmd).Clock)
			g, err := tracker.Add(title, target, deadline)
			if err != nil {
				return err
			}
			if current > 0 {
				if _, err = tracker.UpdateProgress(g.ID, current); err != nil {
					return err
				}
			}
			return renderGoals(cmd, tracker.Goals())
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "goal title")
	cmd.Flags().Float64Var(&target, "target", 0, "target reduction in percent")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline as YYYY-MM-DD")
	cmd.Flags().Float64Var(&current, "current", 0, "progress so far in percent (capped at the target)")

	return cmd
}

func renderGoals(cmd *cobra.Command, list []goals.Goal) error {
	app := appFrom(cmd)
	format, err := app.Format()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return renderJSON(w, list)
	case OutputNDJSON:
		return renderNDJSON(w, list)
	}

	tw := newTable(w, "TITLE", "PROGRESS", "CURRENT", "TARGET", "DEADLINE", "STATUS")
	for _, g := range list {
		status := "in progress"
		if g.Completed() {
			status = tui.OKStyle.Render("completed")
		}
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\t%s\n",
			g.Title,
			tui.RenderBar(g.Current, g.Target, progressBarWidth, tui.ColorLow),
			greenops.FormatShare(g.Progress()),
			greenops.FormatShare(g.Current),
			greenops.FormatShare(g.Target),
			g.Deadline.Format(goals.DeadlineLayout),
			status,
		)
	}
	return tw.Flush()
}

// NewGoalsTemplatesCmd creates the goals templates command.
func NewGoalsTemplatesCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List ready-made goal templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := appFrom(cmd).Format()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			templates := goals.Templates()
			switch format {
			case OutputJSON:
				return renderJSON(w, templates)
			case OutputNDJSON:
				return renderNDJSON(w, templates)
			}
			return renderTemplates(w, templates, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show benefits and requirements")
	return cmd
}

func renderTemplates(w io.Writer, templates []goals.Template, verbose bool) error {
	tw := newTable(w, "ID", "TITLE", "TARGET", "TIMEFRAME", "DIFFICULTY", "CATEGORY")
	for _, tpl := range templates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d months\t%s\t%s\n",
			tpl.ID,
			tpl.Title,
			greenops.FormatShare(tpl.TargetReduction),
			tpl.TimeframeMonths,
			lipgloss.NewStyle().Foreground(lipgloss.Color(tpl.Difficulty.TermColor())).Render(string(tpl.Difficulty)),
			tpl.Category,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !verbose {
		return nil
	}
	for _, tpl := range templates {
		fmt.Fprintf(w, "\n%s\n%s\n", tui.HeaderStyle.Render(tpl.Title), tpl.Description)
		fmt.Fprintf(w, "  Benefits:     %s\n", strings.Join(tpl.Benefits, "; "))
		fmt.Fprintf(w, "  Requirements: %s\n", strings.Join(tpl.Requirements, "; "))
	}
	return nil
}

// NewGoalsApplyCmd creates the goals apply command.
func NewGoalsApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "apply <template-id>",
		Short:   "Create a goal from a template, due after the template timeframe",
		Example: `  carbontrace goals apply sbti-target`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl, err := goals.TemplateByID(args[0])
			if err != nil {
				return err
			}
			tracker := goals.NewTracker(appFrom(cmd).Clock)
			g, err := tracker.ApplyTemplate(tpl)
			if err != nil {
				return err
			}
			cmd.Printf("Goal %q created, due %s\n\n", g.Title, g.Deadline.Format(goals.DeadlineLayout))
			return renderGoals(cmd, tracker.Goals())
		},
	}
}

// NewGoalsReductionCmd creates the goals reduction command.
func NewGoalsReductionCmd() *cobra.Command {
	var (
		product string
		current string
		target  float64
		months  int
	)

	cmd := &cobra.Command{
		Use:   "reduction",
		Short: "Plan an emission reduction over a timeframe",
		Long: `Projects a percentage cut of current emissions over a number of months. The
current emissions default to the selected product's total.`,
		Example: `  carbontrace goals reduction --product coffee --target 30 --months 12
  carbontrace goals reduction --current 2.5t --target 50 --months 24`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGoalsReduction(cmd, product, current, target, months)
		},
	}

	cmd.Flags().StringVarP(&product, "product", "p", "", "product whose total is the baseline")
	cmd.Flags().StringVar(&current, "current", "", "baseline emissions (overrides --product), e.g. 1200 or 2.5t")
	cmd.Flags().Float64Var(&target, "target", 30, "target reduction in percent (1-100)") //nolint:mnd // Default target.
	cmd.Flags().IntVar(&months, "months", 12, "timeframe in months (1-60)")              //nolint:mnd // Default timeframe.

	return cmd
}

func runGoalsReduction(cmd *cobra.Command, product, current string, target float64, months int) error {
	ctx := cmd.Context()
	app := appFrom(cmd)

	format, err := app.Format()
	if err != nil {
		return err
	}

	var baseline float64
	if current != "" {
		if baseline, err = greenops.ParseQuantity(current); err != nil {
			return fmt.Errorf("invalid --current %q: %w", current, err)
		}
	} else {
		p, lookupErr := app.Product(ctx, productArgs(product))
		if lookupErr != nil {
			return lookupErr
		}
		baseline = emissions.Total(p.Stages)
	}

	plan, err := goals.Reduction(baseline, target, months)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return renderJSON(w, plan)
	case OutputNDJSON:
		return renderNDJSON(w, []goals.ReductionPlan{plan})
	}

	tw := newTable(w, "PLAN", "VALUE")
	fmt.Fprintf(tw, "Current emissions\t%s\n", greenops.FormatEmissionTooltip(plan.CurrentEmissions))
	fmt.Fprintf(tw, "Target emissions\t%s\n", greenops.FormatEmissionTooltip(plan.TargetEmissions))
	fmt.Fprintf(tw, "Total reduction\t%s (%s)\n",
		greenops.FormatEmissionTooltip(plan.TotalReduction), greenops.FormatShare(plan.TargetPercent))
	fmt.Fprintf(tw, "Monthly reduction\t%s over %d months\n",
		greenops.FormatEmissionTooltip(plan.MonthlyReduction), plan.TimeframeMonths)
	fmt.Fprintf(tw, "Equivalent\t%d car-months off the road\n", plan.CarMonths)
	fmt.Fprintf(tw, "Ambition\t%s %s of a %.0f%% benchmark\n",
		tui.RenderBar(plan.ProgressPercent, 100, progressBarWidth, tui.ColorLow), //nolint:mnd // Percent scale.
		greenops.FormatShare(plan.ProgressPercent), goals.BenchmarkReductionPercent)
	return tw.Flush()
}
