package services

import (
	"sort"
	"strings"

	"review-advisor/models"
)

// FilterOptions lists the distinct brands, models and features present in a
// snapshot, each sorted alphabetically.
func FilterOptions(snap *models.Snapshot) models.FilterOptions {
	opts := models.FilterOptions{Brands: []string{}, Models: []string{}, Features: []string{}}
	if snap == nil {
		return opts
	}

	opts.Brands = append(opts.Brands, KnownBrands(snap)...)
	sort.Strings(opts.Brands)

	modelSet := make(map[string]struct{})
	featureSet := make(map[string]struct{})
	collect := func(pool []models.CandidateMetric) {
		for _, c := range pool {
			if c.Model != "" {
				modelSet[c.Model] = struct{}{}
			}
			for name := range c.Features {
				featureSet[strings.ToLower(name)] = struct{}{}
			}
		}
	}
	collect(snap.Advisor)
	collect(snap.Buyer.ModelAnalysis)
	for _, ms := range snap.Supplier.ModelBreakdown {
		collect(ms)
	}
	for _, tile := range snap.Buyer.FeatureTiles {
		featureSet[strings.ToLower(tile.Feature)] = struct{}{}
	}
	for _, in := range snap.Supplier.BrandInsights {
		for _, f := range in.FeatureSentiments {
			featureSet[strings.ToLower(f.Feature)] = struct{}{}
		}
	}

	opts.Models = append(opts.Models, sortedKeys(modelSet)...)
	opts.Features = append(opts.Features, sortedKeys(featureSet)...)
	return opts
}
