package services

import (
	"github.com/google/uuid"

	"review-advisor/models"
	"review-advisor/utils"
)

// AdvisorService ties the shortlist, ranker, feature aggregator and card
// generators together for one snapshot. It holds no per-call state and is
// safe for concurrent use.
type AdvisorService struct {
	logger       *utils.Logger
	fallbackRate float64
	featureKeys  []string
}

// NewAdvisorService creates an AdvisorService. fallbackRate converts budgets
// to local currency when the snapshot carries no rate.
func NewAdvisorService(logger *utils.Logger, fallbackRate float64) *AdvisorService {
	return &AdvisorService{
		logger:       logger,
		fallbackRate: fallbackRate,
		featureKeys:  DefaultFeatureKeys,
	}
}

// Scope resolves a raw brand filter, logging when it falls back to all brands.
func (s *AdvisorService) Scope(snap *models.Snapshot, raw string) models.Scope {
	scope, ok := ResolveScope(snap, raw)
	if !ok {
		s.logger.Warn("[advisor] Unknown brand %q, showing all brands", raw)
	}
	return scope
}

// Advise runs the budget advisor for q.
func (s *AdvisorService) Advise(snap *models.Snapshot, q models.BudgetQuery) *models.AdvisorReport {
	report := &models.AdvisorReport{
		RunID:          uuid.NewString(),
		Scope:          q.Scope,
		Brands:         []models.BrandModels{},
		Recommended:    []models.CandidateMetric{},
		CandidatePool:  []models.CandidateMetric{},
		FeatureSummary: []models.FeatureRating{},
	}

	if hasBudget(q.Budget) {
		budget := *q.Budget
		local := round2(budget * s.rate(snap))
		report.Budget = &budget
		report.BudgetLocal = &local
	}

	if snap == nil {
		s.logger.Warn("[advisor] No snapshot loaded, returning empty report %s", report.RunID)
		return report
	}

	report.Summary, report.Brands = Catalog(snap.Advisor, q.Scope)

	pool := Select(snap.Advisor, report.Budget, q.Scope)
	ranked := Rank(pool, report.Budget)

	report.CandidatePool = ranked
	report.Recommended = Recommended(ranked)
	report.FeatureSummary = AggregateFeatures(ranked, s.featureKeys)

	s.logger.Info("[advisor] Run %s: scope=%s pool=%d recommended=%d",
		report.RunID, q.Scope, len(report.CandidatePool), len(report.Recommended))
	return report
}

// BuyerView returns the shopper cards for scope together with the scoped
// leaderboard and the portfolio feature tiles.
func (s *AdvisorService) BuyerView(snap *models.Snapshot, scope models.Scope) models.BuyerReport {
	report := models.BuyerReport{
		Scope:        scope,
		Cards:        BuyerCards(snap, scope),
		Leaderboard:  ScopedLeaderboard(snap, scope),
		FeatureTiles: []models.FeatureTile{},
	}
	if snap != nil {
		report.FeatureTiles = append(report.FeatureTiles, snap.Buyer.FeatureTiles...)
	}
	s.logger.Debug("[advisor] Buyer view for %s: %d cards, %d leaderboard entries",
		scope, len(report.Cards), len(report.Leaderboard))
	return report
}

// SupplierView returns the manufacturer cards for scope with the regional and
// demographic breakdowns. A brand with its own supplier summary gets its own
// breakdowns; anything else gets the portfolio's.
func (s *AdvisorService) SupplierView(snap *models.Snapshot, scope models.Scope) models.SupplierReport {
	report := models.SupplierReport{
		Scope:        scope,
		Cards:        SupplierCards(snap, scope),
		Regional:     []models.RegionalEntry{},
		Demographics: []models.DemographicEntry{},
	}
	if snap != nil {
		regional, demographics := snap.Supplier.Regional, snap.Supplier.Demographics
		if !scope.All() {
			if _, in, ok := lookupBrand(snap.Supplier.BrandInsights, scope.Brand); ok && in.Summary != nil {
				regional, demographics = in.Regional, in.Demographics
			}
		}
		report.Regional = append(report.Regional, regional...)
		report.Demographics = append(report.Demographics, demographics...)
	}
	s.logger.Debug("[advisor] Supplier view for %s: %d cards", scope, len(report.Cards))
	return report
}

// PortfolioView builds the brand drill-down cards for every brand with a
// supplier summary on a bounded worker pool. The result is keyed by brand.
// Brands without a summary are left out rather than shown the portfolio-wide
// cards under their own name.
func (s *AdvisorService) PortfolioView(snap *models.Snapshot, maxWorkers int) map[string][]models.RecommendationCard {
	brands := SupplierBrands(snap)
	results := make([][]models.RecommendationCard, len(brands))

	pool := utils.NewWorkerPool(maxWorkers)
	for i, brand := range brands {
		i, brand := i, brand
		pool.Submit(func() {
			results[i] = SupplierCards(snap, models.Scope{Brand: brand})
		})
	}
	pool.Wait()

	out := make(map[string][]models.RecommendationCard, len(brands))
	for i, brand := range brands {
		out[brand] = results[i]
	}
	s.logger.Info("[advisor] Portfolio view built for %d brands", len(brands))
	return out
}

func (s *AdvisorService) rate(snap *models.Snapshot) float64 {
	if snap != nil && snap.Currency.USDToINR > 0 {
		return snap.Currency.USDToINR
	}
	return s.fallbackRate
}
