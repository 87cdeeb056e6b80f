package models

import "strings"

// Sentiment labels used by the aggregation backend.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Snapshot is one finished aggregate fetch from the analytics backend.
// It is treated as read-only by everything in this module.
type Snapshot struct {
	Currency CurrencyRates     `json:"currency" yaml:"currency"`
	Advisor  []CandidateMetric `json:"advisor" yaml:"advisor"`
	Buyer    BuyerInsights     `json:"buyer" yaml:"buyer"`
	Supplier SupplierInsights  `json:"supplier" yaml:"supplier"`
}

// CurrencyRates holds the display conversion from the base currency (USD).
type CurrencyRates struct {
	USDToINR float64 `json:"usd_to_inr" yaml:"usd_to_inr"`
}

// CandidateMetric is a brand- or model-level aggregate.
// Pointer fields are nil when the backend did not measure them.
type CandidateMetric struct {
	Brand       string              `json:"brand" yaml:"brand"`
	Model       string              `json:"model,omitempty" yaml:"model,omitempty"`
	ReviewCount int                 `json:"review_count" yaml:"review_count"`
	AvgRating   *float64            `json:"avg_rating" yaml:"avg_rating"`
	AvgPrice    *float64            `json:"avg_price_usd" yaml:"avg_price_usd"`
	Features    map[string]*float64 `json:"features,omitempty" yaml:"features,omitempty"`

	Positive    int     `json:"positive" yaml:"positive"`
	Neutral     int     `json:"neutral" yaml:"neutral"`
	Negative    int     `json:"negative" yaml:"negative"`
	PositivePct float64 `json:"positive_pct" yaml:"positive_pct"`
	NegativePct float64 `json:"negative_pct" yaml:"negative_pct"`

	// Score is the externally blended delight/strength score used by leaderboards.
	Score *float64 `json:"score,omitempty" yaml:"score,omitempty"`

	StrongestFeatures []FeatureScore `json:"strongest_features,omitempty" yaml:"strongest_features,omitempty"`
	WeakestFeatures   []FeatureScore `json:"weakest_features,omitempty" yaml:"weakest_features,omitempty"`
}

// Key identifies a candidate by brand and model.
func (c CandidateMetric) Key() string {
	return strings.ToLower(c.Brand) + "|" + strings.ToLower(c.Model)
}

// DisplayName is "Brand Model", or just the brand for brand-level entries.
func (c CandidateMetric) DisplayName() string {
	if c.Model == "" {
		return c.Brand
	}
	return c.Brand + " " + c.Model
}

// Feature returns the rating for name and whether it was measured.
func (c CandidateMetric) Feature(name string) (float64, bool) {
	v, ok := c.Features[name]
	if !ok || v == nil {
		return 0, false
	}
	return *v, true
}

// FeatureScore is one entry of a pre-ranked strongest/weakest feature list.
type FeatureScore struct {
	Feature     string  `json:"feature" yaml:"feature"`
	PositivePct float64 `json:"positive_pct" yaml:"positive_pct"`
	Mentions    int     `json:"mentions" yaml:"mentions"`
}

// ComplaintMetric is a complaint volume for one feature.
type ComplaintMetric struct {
	Feature string `json:"feature" yaml:"feature"`
	Count   int    `json:"complaints" yaml:"complaints"`
}

// FeatureSentimentBreakdown holds sentiment tallies for one feature.
type FeatureSentimentBreakdown struct {
	Feature  string `json:"feature" yaml:"feature"`
	Positive int    `json:"positive" yaml:"positive"`
	Neutral  int    `json:"neutral" yaml:"neutral"`
	Negative int    `json:"negative" yaml:"negative"`
}

// Total is the number of mentions across all three sentiments.
func (f FeatureSentimentBreakdown) Total() int {
	return f.Positive + f.Neutral + f.Negative
}

// NegativeRatio returns Negative/Total. ok is false when there are no mentions.
func (f FeatureSentimentBreakdown) NegativeRatio() (ratio float64, ok bool) {
	total := f.Total()
	if total == 0 {
		return 0, false
	}
	return float64(f.Negative) / float64(total), true
}

// BrandSummary is the headline sentiment for a brand or scope.
type BrandSummary struct {
	Brand        string   `json:"brand,omitempty" yaml:"brand,omitempty"`
	TotalReviews int      `json:"total_reviews" yaml:"total_reviews"`
	PositivePct  float64  `json:"positive_pct" yaml:"positive_pct"`
	NegativePct  float64  `json:"negative_pct" yaml:"negative_pct"`
	AvgRating    *float64 `json:"avg_rating" yaml:"avg_rating"`
	HealthScore  *float64 `json:"health_score,omitempty" yaml:"health_score,omitempty"`
}

// FeatureTile is a portfolio-wide feature discussion summary.
type FeatureTile struct {
	Feature     string  `json:"feature" yaml:"feature"`
	Total       int     `json:"total" yaml:"total"`
	PositivePct float64 `json:"positive_pct" yaml:"positive_pct"`
}

// BuyerInsights is the buyer-facing section of a snapshot.
type BuyerInsights struct {
	Summary       *BrandSummary           `json:"summary" yaml:"summary"`
	FeatureTiles  []FeatureTile           `json:"feature_tiles" yaml:"feature_tiles"`
	TopModels     []CandidateMetric       `json:"top_models" yaml:"top_models"`
	BrandAnalysis []CandidateMetric       `json:"brand_analysis" yaml:"brand_analysis"`
	ModelAnalysis []CandidateMetric       `json:"model_analysis" yaml:"model_analysis"`
	BrandSegments map[string]BrandSegment `json:"brand_segments" yaml:"brand_segments"`
}

// BrandSegment is the buyer view restricted to one brand.
type BrandSegment struct {
	Summary   *BrandSummary     `json:"summary" yaml:"summary"`
	TopModels []CandidateMetric `json:"top_models" yaml:"top_models"`
}

// SupplierInsights is the supplier-facing section of a snapshot.
type SupplierInsights struct {
	BrandOverview   []CandidateMetric            `json:"brand_overview" yaml:"brand_overview"`
	ModelBreakdown  map[string][]CandidateMetric `json:"model_breakdown" yaml:"model_breakdown"`
	ComplaintVolume []ComplaintMetric            `json:"complaint_volume" yaml:"complaint_volume"`
	BrandInsights   map[string]BrandInsight      `json:"brand_insights" yaml:"brand_insights"`
	Recommendations []string                     `json:"recommendations" yaml:"recommendations"`
	Regional        []RegionalEntry              `json:"regional_distribution" yaml:"regional_distribution"`
	Demographics    []DemographicEntry           `json:"demographics" yaml:"demographics"`
}

// BrandInsight is the supplier drill-down for one brand.
type BrandInsight struct {
	Summary           *BrandSummary               `json:"summary" yaml:"summary"`
	ComplaintVolume   []ComplaintMetric           `json:"complaint_volume" yaml:"complaint_volume"`
	FeatureSentiments []FeatureSentimentBreakdown `json:"feature_sentiments" yaml:"feature_sentiments"`
	Regional          []RegionalEntry             `json:"regional_distribution" yaml:"regional_distribution"`
	Demographics      []DemographicEntry          `json:"demographics" yaml:"demographics"`
}

// RegionalEntry is a per-country sentiment rollup.
type RegionalEntry struct {
	Country      string `json:"country" yaml:"country"`
	TotalReviews int    `json:"total_reviews" yaml:"total_reviews"`
	Positive     int    `json:"positive" yaml:"positive"`
	Neutral      int    `json:"neutral" yaml:"neutral"`
	Negative     int    `json:"negative" yaml:"negative"`
}

// DemographicEntry is a per-age-group sentiment rollup.
type DemographicEntry struct {
	AgeGroup     string   `json:"age_group" yaml:"age_group"`
	TotalReviews int      `json:"total_reviews" yaml:"total_reviews"`
	AvgRating    *float64 `json:"avg_rating" yaml:"avg_rating"`
}

// Float returns a pointer to v. Handy for building snapshots in code and tests.
func Float(v float64) *float64 {
	return &v
}
