package cli

import (
	"github.com/spf13/cobra"

	"review-advisor/models"
	"review-advisor/services"
)

func newAdviseCmd(opts *rootOptions) *cobra.Command {
	var (
		budget float64
		brand  string
	)

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Shortlist and rank models for a budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			q := models.BudgetQuery{Scope: e.advisor.Scope(e.snap, brand)}
			if budget > 0 {
				q.Budget = &budget
			}
			report := e.advisor.Advise(e.snap, q)

			if e.report != nil {
				if err := e.report.WriteAdvisor(report); err != nil {
					return err
				}
			}
			if e.jsonOut {
				return e.printJSON(report)
			}
			services.PrintAdvisor(e.out, report)
			return nil
		},
	}

	cmd.Flags().Float64Var(&budget, "budget", 0, "target spend in USD (0 disables budget filtering)")
	cmd.Flags().StringVar(&brand, "brand", "", "restrict to one brand (default: all)")
	return cmd
}

func newBuyerCmd(opts *rootOptions) *cobra.Command {
	var brand string

	cmd := &cobra.Command{
		Use:   "buyer",
		Short: "Buyer recommendation cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			scope := e.advisor.Scope(e.snap, brand)
			report := e.advisor.BuyerView(e.snap, scope)
			if err := e.exportCards("buyer", report.Cards); err != nil {
				return err
			}
			if e.jsonOut {
				return e.printJSON(report)
			}
			services.PrintBuyer(e.out, "Buyer recommendations ("+scope.String()+")", report)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "restrict to one brand (default: all)")
	return cmd
}

func newSupplierCmd(opts *rootOptions) *cobra.Command {
	var brand string

	cmd := &cobra.Command{
		Use:   "supplier",
		Short: "Supplier recommendation cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			scope := e.advisor.Scope(e.snap, brand)
			report := e.advisor.SupplierView(e.snap, scope)
			if err := e.exportCards("supplier", report.Cards); err != nil {
				return err
			}
			if e.jsonOut {
				return e.printJSON(report)
			}
			services.PrintSupplier(e.out, "Supplier recommendations ("+supplierHeading(e.snap, scope)+")", report)
			return nil
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "restrict to one brand (default: portfolio view)")
	return cmd
}

func newPortfolioCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Supplier cards for every brand with a supplier summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			byBrand := e.advisor.PortfolioView(e.snap, e.cfg.MaxConcurrency)
			if e.jsonOut {
				return e.printJSON(byBrand)
			}
			for _, brand := range services.SupplierBrands(e.snap) {
				if err := e.emitCards("supplier", "Supplier recommendations ("+brand+")", byBrand[brand]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFiltersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List brands, models and features available for filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, done, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer done()

			filters := services.FilterOptions(e.snap)
			if e.jsonOut {
				return e.printJSON(filters)
			}
			services.PrintFilters(e.out, filters)
			return nil
		},
	}
}

// supplierHeading names the view SupplierCards actually produced: a brand
// without its own supplier summary gets the portfolio view.
func supplierHeading(snap *models.Snapshot, scope models.Scope) string {
	if !scope.All() {
		for _, brand := range services.SupplierBrands(snap) {
			if scope.Matches(brand) {
				return brand
			}
		}
	}
	return "portfolio"
}

func (e *env) exportCards(audience string, cards []models.RecommendationCard) error {
	if e.report == nil {
		return nil
	}
	return e.report.WriteCards(e.runID, audience, cards)
}

func (e *env) emitCards(audience, heading string, cards []models.RecommendationCard) error {
	if err := e.exportCards(audience, cards); err != nil {
		return err
	}
	if e.jsonOut {
		return e.printJSON(cards)
	}
	services.PrintCards(e.out, heading, cards)
	return nil
}
