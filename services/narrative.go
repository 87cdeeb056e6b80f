package services

import (
	"fmt"
	"sort"
	"strings"

	"review-advisor/models"
)

// Card caps per audience.
const (
	MaxBuyerCards    = 4
	MaxSupplierCards = 3
)

// cardStep produces candidate cards given how many slots are still free.
// Steps run in order and stop once the cap is reached.
type cardStep func(room int) []models.RecommendationCard

func runSteps(max int, steps ...cardStep) []models.RecommendationCard {
	cards := make([]models.RecommendationCard, 0, max)
	for _, step := range steps {
		room := max - len(cards)
		if room <= 0 {
			break
		}
		produced := step(room)
		if len(produced) > room {
			produced = produced[:room]
		}
		cards = append(cards, produced...)
	}
	return cards
}

// finalize caps the list and assigns priority tiers by position.
func finalize(cards []models.RecommendationCard, max int) []models.RecommendationCard {
	if len(cards) > max {
		cards = cards[:max]
	}
	last := models.PriorityTiers[len(models.PriorityTiers)-1]
	for i := range cards {
		if i < len(models.PriorityTiers) {
			cards[i].Priority = models.PriorityTiers[i]
		} else {
			cards[i].Priority = last
		}
	}
	return cards
}

func card(title, description string) []models.RecommendationCard {
	return []models.RecommendationCard{{Title: title, Description: description}}
}

// BuyerCards builds up to MaxBuyerCards shopper recommendations for scope.
// The result is never empty.
func BuyerCards(snap *models.Snapshot, scope models.Scope) []models.RecommendationCard {
	var buyer models.BuyerInsights
	if snap != nil {
		buyer = snap.Buyer
	}

	ranked := rankByDelight(inScope(buyer.ModelAnalysis, scope))
	var best *models.CandidateMetric
	if len(ranked) > 0 {
		best = &ranked[0]
	}

	cards := runSteps(MaxBuyerCards,
		func(int) []models.RecommendationCard { return topPickCard(best) },
		func(int) []models.RecommendationCard { return standoutFeatureCard(best) },
		func(int) []models.RecommendationCard { return brandCard(buyer, scope) },
		func(int) []models.RecommendationCard { return secondaryOptionCard(buyer, scope, ranked, best) },
	)

	if len(cards) == 0 {
		cards = card("Insufficient data",
			"There are not enough reviews in this view to recommend a model yet. Keep monitoring as new feedback arrives.")
	}
	return finalize(cards, MaxBuyerCards)
}

// rankByDelight orders models by positive share plus average rating.
// Models without a rating follow every rated model.
func rankByDelight(pool []models.CandidateMetric) []models.CandidateMetric {
	ranked := make([]models.CandidateMetric, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if (a.AvgRating == nil) != (b.AvgRating == nil) {
			return a.AvgRating != nil
		}
		return compareFloat(delight(b), delight(a)) < 0
	})
	return ranked
}

func delight(c models.CandidateMetric) float64 {
	if c.AvgRating == nil {
		return c.PositivePct
	}
	return c.PositivePct + *c.AvgRating
}

func inScope(pool []models.CandidateMetric, scope models.Scope) []models.CandidateMetric {
	if scope.All() {
		return pool
	}
	out := make([]models.CandidateMetric, 0, len(pool))
	for _, c := range pool {
		if scope.Matches(c.Brand) {
			out = append(out, c)
		}
	}
	return out
}

func topPickCard(best *models.CandidateMetric) []models.RecommendationCard {
	if best == nil {
		return nil
	}
	name := best.DisplayName()
	return card("Top pick: "+name,
		fmt.Sprintf("%s leads with %s positive sentiment and a %s average rating across %d reviews.",
			name, formatPct(best.PositivePct), formatRating(best.AvgRating), best.ReviewCount))
}

func standoutFeatureCard(best *models.CandidateMetric) []models.RecommendationCard {
	if best == nil || len(best.StrongestFeatures) == 0 {
		return nil
	}
	f := best.StrongestFeatures[0]
	feature := capitalize(f.Feature)
	return card("Standout feature: "+feature,
		fmt.Sprintf("%s earns %s positive mentions (%d mentions) on the %s.",
			feature, formatPct(f.PositivePct), f.Mentions, best.DisplayName()))
}

// brandCard benchmarks the leading brand in the aggregate view, or reports
// the scoped brand's health.
func brandCard(buyer models.BuyerInsights, scope models.Scope) []models.RecommendationCard {
	if scope.All() {
		if len(buyer.BrandAnalysis) == 0 {
			return nil
		}
		lead := buyer.BrandAnalysis[0]
		return card("Benchmark brand: "+lead.Brand,
			fmt.Sprintf("%s sets the bar with %s positive sentiment and a %s average rating across %d reviews.",
				lead.Brand, formatPct(lead.PositivePct), formatRating(lead.AvgRating), lead.ReviewCount))
	}

	name, summary := scopedSummary(buyer, scope)
	if summary == nil {
		return nil
	}
	desc := fmt.Sprintf("%d reviews, %s positive and %s negative, with a %s average rating.",
		summary.TotalReviews, formatPct(summary.PositivePct), formatPct(summary.NegativePct),
		formatRating(summary.AvgRating))
	if summary.HealthScore != nil {
		desc += fmt.Sprintf(" Health score %.1f.", *summary.HealthScore)
	}
	return card("Brand health: "+name, desc)
}

// scopedSummary prefers the brand segment summary and falls back to the
// un-scoped brand analysis entry. The returned name is the snapshot's
// spelling of the brand.
func scopedSummary(buyer models.BuyerInsights, scope models.Scope) (string, *models.BrandSummary) {
	if key, seg, ok := lookupBrand(buyer.BrandSegments, scope.Brand); ok && seg.Summary != nil {
		return key, seg.Summary
	}
	for _, b := range buyer.BrandAnalysis {
		if strings.EqualFold(b.Brand, scope.Brand) {
			return b.Brand, &models.BrandSummary{
				Brand:        b.Brand,
				TotalReviews: b.ReviewCount,
				PositivePct:  b.PositivePct,
				NegativePct:  b.NegativePct,
				AvgRating:    b.AvgRating,
			}
		}
	}
	return "", nil
}

// secondaryOptionCard uses the runner-up of the ranked pool. Without one it
// takes the leaderboard's second entry and matches it back into the model
// analysis by (brand, model); an unmatched entry is skipped.
func secondaryOptionCard(buyer models.BuyerInsights, scope models.Scope, ranked []models.CandidateMetric, best *models.CandidateMetric) []models.RecommendationCard {
	var second *models.CandidateMetric
	if len(ranked) > 1 {
		second = &ranked[1]
	} else {
		second = leaderboardRunnerUp(buyer, scope, best)
	}
	if second == nil {
		return nil
	}

	name := second.DisplayName()
	return card("Secondary option: "+name,
		fmt.Sprintf("%s is a strong alternative with %s positive sentiment and a %s average rating.",
			name, formatPct(second.PositivePct), formatRating(second.AvgRating)))
}

func leaderboardRunnerUp(buyer models.BuyerInsights, scope models.Scope, best *models.CandidateMetric) *models.CandidateMetric {
	board := scopedBoard(buyer, scope)
	if len(board) < 2 {
		return nil
	}

	key := board[1].Key()
	if best != nil && best.Key() == key {
		return nil
	}
	for i := range buyer.ModelAnalysis {
		if buyer.ModelAnalysis[i].Key() == key {
			return &buyer.ModelAnalysis[i]
		}
	}
	return nil
}

// ScopedLeaderboard returns the model leaderboard for scope, highest score
// first. A brand scope uses the brand segment's board when it has one.
func ScopedLeaderboard(snap *models.Snapshot, scope models.Scope) []models.CandidateMetric {
	if snap == nil {
		return []models.CandidateMetric{}
	}
	return scopedBoard(snap.Buyer, scope)
}

func scopedBoard(buyer models.BuyerInsights, scope models.Scope) []models.CandidateMetric {
	board := inScope(buyer.TopModels, scope)
	if !scope.All() {
		if _, seg, ok := lookupBrand(buyer.BrandSegments, scope.Brand); ok && len(seg.TopModels) > 0 {
			board = seg.TopModels
		}
	}
	return RankLeaderboard(board)
}

// SupplierCards builds up to MaxSupplierCards manufacturer recommendations.
// A single-brand scope with a brand summary gets the brand drill-down;
// anything else gets the portfolio view. The result is never empty.
func SupplierCards(snap *models.Snapshot, scope models.Scope) []models.RecommendationCard {
	var supplier models.SupplierInsights
	if snap != nil {
		supplier = snap.Supplier
	}

	if !scope.All() {
		if brand, insight, ok := lookupBrand(supplier.BrandInsights, scope.Brand); ok && insight.Summary != nil {
			_, modelsOfBrand, _ := lookupBrand(supplier.ModelBreakdown, scope.Brand)
			return finalize(brandSupplierCards(brand, insight, modelsOfBrand), MaxSupplierCards)
		}
	}
	return finalize(portfolioSupplierCards(supplier), MaxSupplierCards)
}

func brandSupplierCards(brand string, insight models.BrandInsight, brandModels []models.CandidateMetric) []models.RecommendationCard {
	return runSteps(MaxSupplierCards,
		func(int) []models.RecommendationCard { return pulseCard(brand, insight.Summary) },
		func(room int) []models.RecommendationCard { return complaintCards(insight.ComplaintVolume, room) },
		func(room int) []models.RecommendationCard { return redesignCards(insight.FeatureSentiments, room) },
		func(int) []models.RecommendationCard { return modelRecoveryCard(brandModels) },
		fillerCards,
	)
}

func pulseCard(brand string, s *models.BrandSummary) []models.RecommendationCard {
	return card("Sentiment pulse: "+brand,
		fmt.Sprintf("%d reviews tracked: %s positive, %s negative, average rating %s.",
			s.TotalReviews, formatPct(s.PositivePct), formatPct(s.NegativePct), formatRating(s.AvgRating)))
}

// complaintCards turns the first complaint into an urgent fix and the rest,
// in source order, into stabilization items. Zero counts are not complaints.
func complaintCards(complaints []models.ComplaintMetric, room int) []models.RecommendationCard {
	var cards []models.RecommendationCard
	for _, c := range complaints {
		if len(cards) >= room {
			break
		}
		if c.Count <= 0 {
			continue
		}
		feature := capitalize(c.Feature)
		if len(cards) == 0 {
			cards = append(cards, card("Urgent fix: "+feature,
				fmt.Sprintf("%s drew %d complaints, the most of any feature. Run an engineering review and quality audit now.",
					feature, c.Count))...)
			continue
		}
		cards = append(cards, card("Stabilize: "+feature,
			fmt.Sprintf("%s drew %d complaints. Schedule fixes in the next release cycle.", feature, c.Count))...)
	}
	return cards
}

// redesignCards ranks features by negative ratio, then raw negative count.
// Features with no mentions have no ratio and are left out.
func redesignCards(breakdowns []models.FeatureSentimentBreakdown, room int) []models.RecommendationCard {
	type rated struct {
		models.FeatureSentimentBreakdown
		ratio float64
	}
	candidates := make([]rated, 0, len(breakdowns))
	for _, b := range breakdowns {
		if ratio, ok := b.NegativeRatio(); ok {
			candidates = append(candidates, rated{b, ratio})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if c := compareFloat(candidates[j].ratio, candidates[i].ratio); c != 0 {
			return c < 0
		}
		return candidates[i].Negative > candidates[j].Negative
	})

	if len(candidates) > room {
		candidates = candidates[:room]
	}
	cards := make([]models.RecommendationCard, 0, len(candidates))
	for _, c := range candidates {
		feature := capitalize(c.Feature)
		cards = append(cards, card("Redesign: "+feature,
			fmt.Sprintf("%s of %d %s mentions are negative (%d complaints). Revisit the design for the next product cycle.",
				formatPct(round2(c.ratio*100)), c.Total(), strings.ToLower(feature), c.Negative))...)
	}
	return cards
}

// modelRecoveryCard flags the model with the highest negative share, if any
// model has negative feedback at all. Ties keep the first model.
func modelRecoveryCard(brandModels []models.CandidateMetric) []models.RecommendationCard {
	var worst *models.CandidateMetric
	for i := range brandModels {
		m := &brandModels[i]
		if m.NegativePct <= 0 {
			continue
		}
		if worst == nil || compareFloat(m.NegativePct, worst.NegativePct) > 0 {
			worst = m
		}
	}
	if worst == nil {
		return nil
	}

	name := worst.Model
	if name == "" {
		name = worst.DisplayName()
	}
	return card("Model recovery: "+name,
		fmt.Sprintf("%s carries %s negative feedback. Consider firmware updates or production line changes to recover sentiment.",
			name, formatPct(worst.NegativePct)))
}

func fillerCards(room int) []models.RecommendationCard {
	cards := make([]models.RecommendationCard, 0, room)
	for i := 0; i < room; i++ {
		cards = append(cards, card("Customer delight initiative",
			"Double down on the features customers praise most and feature them in upcoming campaigns.")...)
	}
	return cards
}

// portfolioSupplierCards is the aggregate view: top complaints first, then
// the backend's free-text recommendations, then a monitoring card.
func portfolioSupplierCards(supplier models.SupplierInsights) []models.RecommendationCard {
	cards := runSteps(MaxSupplierCards,
		func(room int) []models.RecommendationCard { return hotspotCards(supplier.ComplaintVolume, room) },
		func(room int) []models.RecommendationCard { return freeTextCards(supplier.Recommendations, room) },
	)
	if len(cards) == 0 {
		cards = card("Monitor customer signals",
			"No complaint hotspots stand out yet. Keep tracking sentiment as new reviews arrive.")
	}
	return cards
}

func hotspotCards(complaints []models.ComplaintMetric, room int) []models.RecommendationCard {
	var cards []models.RecommendationCard
	for _, c := range complaints {
		if len(cards) >= room {
			break
		}
		if c.Count <= 0 {
			continue
		}
		feature := capitalize(c.Feature)
		cards = append(cards, card("Portfolio hotspot: "+feature,
			fmt.Sprintf("%s issues appear in %d reviews across the portfolio. Prioritize cross-team fixes.", feature, c.Count))...)
	}
	return cards
}

func freeTextCards(texts []string, room int) []models.RecommendationCard {
	var cards []models.RecommendationCard
	for _, t := range texts {
		if len(cards) >= room {
			break
		}
		if strings.TrimSpace(t) == "" {
			continue
		}
		cards = append(cards, card("Recommended action", t)...)
	}
	return cards
}
