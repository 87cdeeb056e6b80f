package services

import (
	"strings"
	"unicode"

	"review-advisor/models"
	"review-advisor/utils"
)

// Cleaner normalizes a freshly loaded snapshot so the ranking code can trust
// its invariants: canonical brand names, non-negative counts, ratings inside
// [0,5], and percentages derived from the counts.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean returns a normalized copy of snap. The input is left untouched.
func (c *Cleaner) Clean(snap *models.Snapshot) *models.Snapshot {
	if snap == nil {
		return &models.Snapshot{}
	}

	out := &models.Snapshot{Currency: snap.Currency}
	out.Advisor = c.cleanAdvisor(snap.Advisor)

	out.Buyer = models.BuyerInsights{
		Summary:       cleanSummary(snap.Buyer.Summary),
		FeatureTiles:  append([]models.FeatureTile(nil), snap.Buyer.FeatureTiles...),
		TopModels:     c.cleanMetrics(snap.Buyer.TopModels),
		BrandAnalysis: c.cleanMetrics(snap.Buyer.BrandAnalysis),
		ModelAnalysis: c.cleanMetrics(snap.Buyer.ModelAnalysis),
	}
	if len(snap.Buyer.BrandSegments) > 0 {
		keys := c.foldBrandKeys("brand segments", sortedKeys(snap.Buyer.BrandSegments))
		out.Buyer.BrandSegments = make(map[string]models.BrandSegment, len(keys))
		for brand, src := range keys {
			seg := snap.Buyer.BrandSegments[src]
			out.Buyer.BrandSegments[brand] = models.BrandSegment{
				Summary:   cleanSummary(seg.Summary),
				TopModels: c.cleanMetrics(seg.TopModels),
			}
		}
	}

	out.Supplier = models.SupplierInsights{
		BrandOverview:   c.cleanMetrics(snap.Supplier.BrandOverview),
		ComplaintVolume: cleanComplaints(snap.Supplier.ComplaintVolume),
		Recommendations: append([]string(nil), snap.Supplier.Recommendations...),
		Regional:        append([]models.RegionalEntry(nil), snap.Supplier.Regional...),
		Demographics:    append([]models.DemographicEntry(nil), snap.Supplier.Demographics...),
	}
	if len(snap.Supplier.ModelBreakdown) > 0 {
		keys := c.foldBrandKeys("model breakdown", sortedKeys(snap.Supplier.ModelBreakdown))
		out.Supplier.ModelBreakdown = make(map[string][]models.CandidateMetric, len(keys))
		for brand, src := range keys {
			out.Supplier.ModelBreakdown[brand] = c.cleanMetrics(snap.Supplier.ModelBreakdown[src])
		}
	}
	if len(snap.Supplier.BrandInsights) > 0 {
		keys := c.foldBrandKeys("brand insights", sortedKeys(snap.Supplier.BrandInsights))
		out.Supplier.BrandInsights = make(map[string]models.BrandInsight, len(keys))
		for brand, src := range keys {
			in := snap.Supplier.BrandInsights[src]
			out.Supplier.BrandInsights[brand] = models.BrandInsight{
				Summary:           cleanSummary(in.Summary),
				ComplaintVolume:   cleanComplaints(in.ComplaintVolume),
				FeatureSentiments: cleanFeatureSentiments(in.FeatureSentiments),
				Regional:          append([]models.RegionalEntry(nil), in.Regional...),
				Demographics:      append([]models.DemographicEntry(nil), in.Demographics...),
			}
		}
	}

	return out
}

// foldBrandKeys maps each canonical brand to the source key whose entry is
// kept when several keys fold onto the same brand. A key already spelled
// canonically wins; otherwise the first key in sorted order does.
func (c *Cleaner) foldBrandKeys(section string, sorted []string) map[string]string {
	chosen := make(map[string]string, len(sorted))
	for _, key := range sorted {
		brand := CanonicalBrand(key)
		prev, taken := chosen[brand]
		if !taken || (key == brand && prev != brand) {
			chosen[brand] = key
		}
	}
	if dropped := len(sorted) - len(chosen); dropped > 0 {
		c.logger.Warn("[cleaner] %d %s keys folded onto an existing brand and were dropped", dropped, section)
	}
	return chosen
}

// cleanAdvisor also drops unknown brands and duplicate (brand, model) pairs;
// the first occurrence wins.
func (c *Cleaner) cleanAdvisor(raw []models.CandidateMetric) []models.CandidateMetric {
	seen := utils.NewKeySet()
	result := make([]models.CandidateMetric, 0, len(raw))

	for _, m := range c.cleanMetrics(raw) {
		if m.Brand == unknownBrand {
			c.logger.Warn("[cleaner] Dropping advisor entry with unknown brand: %q", m.Model)
			continue
		}
		if seen.Contains(m.Key()) {
			c.logger.Debug("[cleaner] Duplicate advisor entry skipped: %s", m.DisplayName())
			continue
		}
		seen.Add(m.Key())
		result = append(result, m)
	}

	c.logger.Info("[cleaner] Cleaned advisor pool %d → %d candidates (%d unique models, dropped %d)",
		len(raw), len(result), seen.Size(), len(raw)-len(result))
	return result
}

func (c *Cleaner) cleanMetrics(raw []models.CandidateMetric) []models.CandidateMetric {
	if raw == nil {
		return nil
	}
	out := make([]models.CandidateMetric, 0, len(raw))
	for _, m := range raw {
		out = append(out, c.cleanMetric(m))
	}
	return out
}

func (c *Cleaner) cleanMetric(m models.CandidateMetric) models.CandidateMetric {
	m.Brand = CanonicalBrand(m.Brand)
	m.Model = normaliseText(m.Model)

	m.ReviewCount = nonNegative(m.ReviewCount)
	m.Positive = nonNegative(m.Positive)
	m.Neutral = nonNegative(m.Neutral)
	m.Negative = nonNegative(m.Negative)

	if m.AvgRating != nil && !validRating(*m.AvgRating) {
		c.logger.Debug("[cleaner] Rating %.2f out of range for %s, marking unmeasured", *m.AvgRating, m.DisplayName())
		m.AvgRating = nil
	}
	if m.AvgPrice != nil && *m.AvgPrice < 0 {
		m.AvgPrice = nil
	}

	if len(m.Features) > 0 {
		features := make(map[string]*float64, len(m.Features))
		for name, v := range m.Features {
			key := strings.ToLower(normaliseText(name))
			if v == nil || !validRating(*v) {
				features[key] = nil
				continue
			}
			features[key] = models.Float(*v)
		}
		m.Features = features
	}

	if total := m.Positive + m.Neutral + m.Negative; total > 0 {
		m.PositivePct = percentage(m.Positive, total)
		m.NegativePct = percentage(m.Negative, total)
	}
	m.PositivePct = clampPct(m.PositivePct)
	m.NegativePct = clampPct(m.NegativePct)

	m.StrongestFeatures = append([]models.FeatureScore(nil), m.StrongestFeatures...)
	m.WeakestFeatures = append([]models.FeatureScore(nil), m.WeakestFeatures...)
	return m
}

func cleanSummary(s *models.BrandSummary) *models.BrandSummary {
	if s == nil {
		return nil
	}
	out := *s
	if out.Brand != "" {
		out.Brand = CanonicalBrand(out.Brand)
	}
	out.TotalReviews = nonNegative(out.TotalReviews)
	out.PositivePct = clampPct(out.PositivePct)
	out.NegativePct = clampPct(out.NegativePct)
	if out.AvgRating != nil && !validRating(*out.AvgRating) {
		out.AvgRating = nil
	}
	return &out
}

func cleanComplaints(raw []models.ComplaintMetric) []models.ComplaintMetric {
	if raw == nil {
		return nil
	}
	out := make([]models.ComplaintMetric, 0, len(raw))
	for _, c := range raw {
		c.Feature = normaliseText(c.Feature)
		c.Count = nonNegative(c.Count)
		out = append(out, c)
	}
	return out
}

func cleanFeatureSentiments(raw []models.FeatureSentimentBreakdown) []models.FeatureSentimentBreakdown {
	if raw == nil {
		return nil
	}
	out := make([]models.FeatureSentimentBreakdown, 0, len(raw))
	for _, f := range raw {
		f.Feature = normaliseText(f.Feature)
		f.Positive = nonNegative(f.Positive)
		f.Neutral = nonNegative(f.Neutral)
		f.Negative = nonNegative(f.Negative)
		out = append(out, f)
	}
	return out
}

func percentage(value, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(value) / float64(total) * 100)
}

func validRating(r float64) bool {
	return r >= 0 && r <= 5
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func clampPct(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
