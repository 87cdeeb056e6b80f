package models

import (
	"fmt"
	"strings"
)

// Priority is a card tier. Lower values are more urgent.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// PriorityTiers is the fixed tier sequence assigned to cards by position.
var PriorityTiers = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "Critical"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// MarshalText lets JSON/YAML/CSV output carry the tier name.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts a tier name, ignoring case.
func (p *Priority) UnmarshalText(text []byte) error {
	for _, tier := range PriorityTiers {
		if strings.EqualFold(tier.String(), string(text)) {
			*p = tier
			return nil
		}
	}
	return fmt.Errorf("unknown priority %q", text)
}

// RecommendationCard is one narrative insight for the presentation layer.
type RecommendationCard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}

// Scope restricts a view to one brand. The zero value means all brands.
type Scope struct {
	Brand string
}

// All reports whether the scope covers every brand.
func (s Scope) All() bool {
	return s.Brand == ""
}

// Matches reports whether brand falls inside the scope.
func (s Scope) Matches(brand string) bool {
	return s.All() || strings.EqualFold(s.Brand, brand)
}

func (s Scope) String() string {
	if s.All() {
		return "all brands"
	}
	return s.Brand
}

// BudgetQuery is the shopper's input to the model advisor.
type BudgetQuery struct {
	Budget *float64
	Scope  Scope
}

// FeatureRating is an averaged feature-satisfaction score.
type FeatureRating struct {
	Feature string  `json:"feature"`
	Rating  float64 `json:"rating"`
}

// CatalogSummary describes the advisor catalog in scope. Price bounds are
// nil when no model has a known price.
type CatalogSummary struct {
	BrandCount  int      `json:"brand_count"`
	ModelCount  int      `json:"model_count"`
	MinPriceUSD *float64 `json:"min_price_usd"`
	MaxPriceUSD *float64 `json:"max_price_usd"`
}

// BrandModels groups the catalog models of one brand.
type BrandModels struct {
	Brand  string            `json:"brand"`
	Models []CandidateMetric `json:"models"`
}

// AdvisorReport is the budget advisor output for one query.
type AdvisorReport struct {
	RunID          string            `json:"run_id"`
	Scope          Scope             `json:"-"`
	Budget         *float64          `json:"budget_usd"`
	BudgetLocal    *float64          `json:"budget_inr"`
	Summary        CatalogSummary    `json:"summary"`
	Brands         []BrandModels     `json:"brands"`
	Recommended    []CandidateMetric `json:"recommended"`
	CandidatePool  []CandidateMetric `json:"candidate_pool"`
	FeatureSummary []FeatureRating   `json:"feature_summary"`
}

// BuyerReport is the shopper view: cards plus the context they were drawn from.
type BuyerReport struct {
	Scope        Scope                `json:"-"`
	Cards        []RecommendationCard `json:"cards"`
	Leaderboard  []CandidateMetric    `json:"leaderboard"`
	FeatureTiles []FeatureTile        `json:"feature_tiles"`
}

// SupplierReport is the manufacturer view for a brand or the whole portfolio.
type SupplierReport struct {
	Scope        Scope                `json:"-"`
	Cards        []RecommendationCard `json:"cards"`
	Regional     []RegionalEntry      `json:"regional_distribution"`
	Demographics []DemographicEntry   `json:"demographics"`
}

// FilterOptions lists the distinct values available for dashboard filters.
type FilterOptions struct {
	Brands   []string `json:"brands"`
	Models   []string `json:"models"`
	Features []string `json:"features"`
}
