package services

import (
	"fmt"
	"io"
	"strings"

	"review-advisor/models"
)

const width = 64

// PrintAdvisor renders an advisor report as a terminal summary.
func PrintAdvisor(w io.Writer, r *models.AdvisorReport) {
	sep := strings.Repeat("═", width)
	thin := strings.Repeat("─", width)

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(w, "\033[1;35m  MODEL ADVISOR (%s)\033[0m\n", r.Scope)
	fmt.Fprintf(w, "\033[1;35m%s\033[0m\n\n", sep)

	if r.Budget != nil {
		fmt.Fprintf(w, "  Budget : \033[1m$%.2f\033[0m", *r.Budget)
		if r.BudgetLocal != nil {
			fmt.Fprintf(w, " (₹%.2f)", *r.BudgetLocal)
		}
		fmt.Fprintf(w, "  tolerance ±$%.2f\n\n", BudgetTolerance(*r.Budget))
	}

	fmt.Fprintf(w, "  Catalog: %d models from %d brands, %s to %s\n",
		r.Summary.ModelCount, r.Summary.BrandCount, formatPrice(r.Summary.MinPriceUSD), formatPrice(r.Summary.MaxPriceUSD))
	for _, g := range r.Brands {
		names := make([]string, 0, len(g.Models))
		for _, m := range g.Models {
			names = append(names, m.Model)
		}
		fmt.Fprintf(w, "    %-12s %s\n", g.Brand, truncate(strings.Join(names, ", "), width-14))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Recommended\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.Recommended) == 0 {
		fmt.Fprintf(w, "  No priced and rated models in this view\n")
	}
	for i, c := range r.Recommended {
		printCandidate(w, i+1, c)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Candidate Pool (%d)\033[0m\n", len(r.CandidatePool))
	fmt.Fprintf(w, "  %s\n", thin)
	for i, c := range r.CandidatePool {
		printCandidate(w, i+1, c)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\033[1;33m  Feature Satisfaction\033[0m\n")
	fmt.Fprintf(w, "  %s\n", thin)
	if len(r.FeatureSummary) == 0 {
		fmt.Fprintf(w, "  No feature ratings available\n")
	}
	for _, f := range r.FeatureSummary {
		bar := strings.Repeat("█", int(f.Rating*4+0.5))
		fmt.Fprintf(w, "  %-14s %-20s %.2f\n", capitalize(f.Feature), bar, f.Rating)
	}

	fmt.Fprintf(w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

func printCandidate(w io.Writer, rank int, c models.CandidateMetric) {
	fmt.Fprintf(w, "  \033[1m%d.\033[0m %-34s \033[1;32m%-8s\033[0m %10s  (%d reviews)\n",
		rank, truncate(c.DisplayName(), 34), formatRating(c.AvgRating), formatPrice(c.AvgPrice), c.ReviewCount)
}

func formatPrice(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", *p)
}

// PrintCards renders a recommendation card list under heading.
func PrintCards(w io.Writer, heading string, cards []models.RecommendationCard) {
	thin := strings.Repeat("─", width)

	fmt.Fprintf(w, "\n\033[1;33m  %s\033[0m\n", heading)
	fmt.Fprintf(w, "  %s\n", thin)
	for _, c := range cards {
		fmt.Fprintf(w, "  [%s] \033[1m%s\033[0m\n", c.Priority, c.Title)
		fmt.Fprintf(w, "      %s\n", c.Description)
	}
	fmt.Fprintln(w)
}

// PrintBuyer renders the shopper cards followed by the leaderboard and the
// feature tiles.
func PrintBuyer(w io.Writer, heading string, r models.BuyerReport) {
	PrintCards(w, heading, r.Cards)

	if len(r.Leaderboard) > 0 {
		fmt.Fprintf(w, "\033[1;33m  Leaderboard\033[0m\n")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("─", width))
		for i, m := range r.Leaderboard {
			score := "-"
			if m.Score != nil {
				score = fmt.Sprintf("%.2f", *m.Score)
			}
			fmt.Fprintf(w, "  \033[1m%d.\033[0m %-34s %6s  %s%s\n", i+1, truncate(m.DisplayName(), 34), score,
				featureHint("+", m.StrongestFeatures), featureHint(" -", m.WeakestFeatures))
		}
		fmt.Fprintln(w)
	}

	if len(r.FeatureTiles) > 0 {
		fmt.Fprintf(w, "\033[1;33m  Feature Discussion\033[0m\n")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("─", width))
		for _, t := range r.FeatureTiles {
			fmt.Fprintf(w, "  %-14s %6d mentions  %s positive\n", capitalize(t.Feature), t.Total, formatPct(t.PositivePct))
		}
		fmt.Fprintln(w)
	}
}

func featureHint(sign string, scores []models.FeatureScore) string {
	if len(scores) == 0 {
		return ""
	}
	return fmt.Sprintf("%s%s", sign, scores[0].Feature)
}

// PrintSupplier renders the manufacturer cards followed by the regional and
// demographic breakdowns.
func PrintSupplier(w io.Writer, heading string, r models.SupplierReport) {
	PrintCards(w, heading, r.Cards)

	if len(r.Regional) > 0 {
		fmt.Fprintf(w, "\033[1;33m  Regional Sentiment\033[0m\n")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("─", width))
		for _, e := range r.Regional {
			fmt.Fprintf(w, "  %-16s %6d reviews  +%d =%d -%d\n", e.Country, e.TotalReviews, e.Positive, e.Neutral, e.Negative)
		}
		fmt.Fprintln(w)
	}

	if len(r.Demographics) > 0 {
		fmt.Fprintf(w, "\033[1;33m  Demographics\033[0m\n")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("─", width))
		for _, d := range r.Demographics {
			fmt.Fprintf(w, "  %-16s %6d reviews  %s\n", d.AgeGroup, d.TotalReviews, formatRating(d.AvgRating))
		}
		fmt.Fprintln(w)
	}
}

// PrintFilters renders the available filter values.
func PrintFilters(w io.Writer, opts models.FilterOptions) {
	fmt.Fprintf(w, "Brands   : %s\n", strings.Join(opts.Brands, ", "))
	fmt.Fprintf(w, "Models   : %s\n", strings.Join(opts.Models, ", "))
	fmt.Fprintf(w, "Features : %s\n", strings.Join(opts.Features, ", "))
}
