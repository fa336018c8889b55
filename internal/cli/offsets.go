package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/logging"
	"github.com/rshade/carbontrace/internal/offsets"
	"github.com/rshade/carbontrace/internal/tui"
)

// ErrPurchaseCancelled is returned when the buyer declines the checkout.
var ErrPurchaseCancelled = errors.New("purchase cancelled")

func newOffsetsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "offsets", Short: "Offset cost calculator and project marketplace"}
	cmd.AddCommand(NewOffsetsCalculateCmd(), NewOffsetsProjectsCmd(), NewOffsetsBuyCmd())
	return cmd
}

type calculateFlags struct {
	mode        string
	product     string
	customKg    string
	carMiles    float64
	flightHours float64
	monthlyKWh  float64
}

// NewOffsetsCalculateCmd creates the offsets calculate command.
func NewOffsetsCalculateCmd() *cobra.Command {
	var f calculateFlags

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate the cost of offsetting emissions",
		Long: `Estimates the offset cost and the number of trees that would absorb the same
emissions. Modes:
  custom     an explicit amount (--kg) or a product's total (--product)
  transport  annual car miles and flight hours
  home       monthly electricity use, annualised`,
		Example: `  carbontrace offsets calculate --kg 2.5t
  carbontrace offsets calculate --product coffee
  carbontrace offsets calculate --mode transport --car-miles 12000 --flight-hours 10
  carbontrace offsets calculate --mode home --kwh 900`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOffsetsCalculate(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.mode, "mode", string(offsets.ModeCustom), "calculation mode: custom, transport or home")
	cmd.Flags().StringVarP(&f.product, "product", "p", "", "use a product's total in custom mode")
	cmd.Flags().StringVar(&f.customKg, "kg", "", "emissions to offset in custom mode, e.g. 1200 or 2.5t")
	cmd.Flags().Float64Var(&f.carMiles, "car-miles", 0, "annual car miles (transport mode)")
	cmd.Flags().Float64Var(&f.flightHours, "flight-hours", 0, "annual flight hours (transport mode)")
	cmd.Flags().Float64Var(&f.monthlyKWh, "kwh", 0, "monthly electricity use in kWh (home mode)")

	return cmd
}

func runOffsetsCalculate(cmd *cobra.Command, f calculateFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	app := appFrom(cmd)

	format, err := app.Format()
	if err != nil {
		return err
	}

	mode, err := offsets.ParseMode(f.mode)
	if err != nil {
		return err
	}

	in := offsets.Input{
		Mode:        mode,
		CarMiles:    f.carMiles,
		FlightHours: f.flightHours,
		MonthlyKWh:  f.monthlyKWh,
	}
	if mode == offsets.ModeCustom {
		switch {
		case f.customKg != "":
			if in.CustomKg, err = greenops.ParseQuantity(f.customKg); err != nil {
				return fmt.Errorf("invalid --kg %q: %w", f.customKg, err)
			}
		default:
			p, lookupErr := app.Product(ctx, productArgs(f.product))
			if lookupErr != nil {
				return lookupErr
			}
			in.CustomKg = emissions.Total(p.Stages)
		}
	}

	calc := offsets.NewCalculator(app.Config.Offsets.PricePerKg, app.Config.Offsets.KgPerTree)
	res, err := calc.Calculate(in)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("mode", string(mode)).
		Float64("total_kg", res.TotalKg).
		Msg("offset estimate computed")

	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return renderJSON(w, res)
	case OutputNDJSON:
		return renderNDJSON(w, []offsets.Result{res})
	}

	tw := newTable(w, "ESTIMATE", "VALUE")
	fmt.Fprintf(tw, "Emissions\t%s (%s)\n", greenops.FormatEmissionTooltip(res.TotalKg), greenops.FormatTonnes(res.TotalKg))
	fmt.Fprintf(tw, "Offset cost\t%s\n", greenops.FormatCurrency(res.Cost))
	fmt.Fprintf(tw, "Trees\t%s\n", greenops.FormatNumber(res.Trees))
	return tw.Flush()
}

// NewOffsetsProjectsCmd creates the offsets projects command.
func NewOffsetsProjectsCmd() *cobra.Command {
	var projectType string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List verified offset projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := appFrom(cmd).Format()
			if err != nil {
				return err
			}
			projects := filterProjects(offsets.Projects(), projectType)

			w := cmd.OutOrStdout()
			switch format {
			case OutputJSON:
				return renderJSON(w, projects)
			case OutputNDJSON:
				return renderNDJSON(w, projects)
			}

			tw := newTable(w, "ID", "PROJECT", "TYPE", "LOCATION", "PRICE/T", "RATING", "VERIFIED")
			for _, p := range projects {
				verified := ""
				if p.Verified {
					verified = tui.OKStyle.Render("yes")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.1f\t%s\n",
					p.ID, p.Name, p.Type, p.Location, greenops.FormatCurrency(p.PricePerTon), p.Rating, verified)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&projectType, "type", "", "only projects whose type contains this text")
	return cmd
}

func filterProjects(projects []offsets.Project, projectType string) []offsets.Project {
	if projectType == "" {
		return projects
	}
	needle := strings.ToLower(projectType)
	var out []offsets.Project
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Type), needle) {
			out = append(out, p)
		}
	}
	return out
}

// NewOffsetsBuyCmd creates the offsets buy command.
func NewOffsetsBuyCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "buy <project-id=tons>...",
		Short: "Buy offsets from one or more projects",
		Long: `Adds each project-id=tons pair to a cart and checks out. Repeating a project
adds to its line. Without --yes the purchase must be confirmed on a terminal.`,
		Example: `  carbontrace offsets buy 1=2 3=0.5
  carbontrace offsets buy 2=10 --yes --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOffsetsBuy(cmd, args, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func runOffsetsBuy(cmd *cobra.Command, args []string, yes bool) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	app := appFrom(cmd)

	format, err := app.Format()
	if err != nil {
		return err
	}

	cart := offsets.NewCart()
	for _, arg := range args {
		p, tons, parseErr := parseCartArg(arg)
		if parseErr != nil {
			return parseErr
		}
		if err = cart.Add(p, tons); err != nil {
			return fmt.Errorf("adding %s: %w", p.Name, err)
		}
	}

	if !yes {
		msg := fmt.Sprintf("Buy %s of offsets for %s?",
			greenops.FormatTonnes(cart.TotalTons()*greenops.TonsToKg), greenops.FormatCurrency(cart.TotalCost()))
		if !Confirm(msg) {
			return ErrPurchaseCancelled
		}
	}

	receipt, err := cart.Checkout(app.Clock)
	if err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Str("component", "cli").
		Str("receipt_id", receipt.ID).
		Float64("tons", receipt.TotalTons).
		Msg("offsets purchased")

	w := cmd.OutOrStdout()
	switch format {
	case OutputJSON:
		return renderJSON(w, receipt)
	case OutputNDJSON:
		return renderNDJSON(w, receipt.Items)
	}

	cmd.Printf("Receipt %s (%s)\n\n", receipt.ID, receipt.PurchasedAt.UTC().Format("2006-01-02 15:04 MST"))
	tw := newTable(w, "PROJECT", "TONS", "COST")
	for _, item := range receipt.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Project.Name,
			greenops.FormatFloat(item.Tons, 2), greenops.FormatCurrency(item.Cost())) //nolint:mnd // Two decimals.
	}
	fmt.Fprintf(tw, "TOTAL\t%s\t%s\n",
		greenops.FormatFloat(receipt.TotalTons, 2), greenops.FormatCurrency(receipt.TotalCost)) //nolint:mnd // Two decimals.
	return tw.Flush()
}

// parseCartArg parses "project-id=tons".
func parseCartArg(arg string) (offsets.Project, float64, error) {
	id, amount, ok := strings.Cut(arg, "=")
	if !ok {
		return offsets.Project{}, 0, fmt.Errorf("invalid cart entry %q: expected project-id=tons", arg)
	}
	p, err := offsets.ProjectByID(strings.TrimSpace(id))
	if err != nil {
		return offsets.Project{}, 0, err
	}
	tons, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return offsets.Project{}, 0, fmt.Errorf("invalid tons in %q: %w", arg, err)
	}
	return p, tons, nil
}
