package services

import "review-advisor/models"

// Catalog summarizes the advisor pool in scope and groups its models by
// brand. Brands are sorted by name; each brand's models are in Rank order
// without a budget.
func Catalog(pool []models.CandidateMetric, scope models.Scope) (models.CatalogSummary, []models.BrandModels) {
	var summary models.CatalogSummary
	byBrand := make(map[string][]models.CandidateMetric)

	for _, c := range inScope(pool, scope) {
		byBrand[c.Brand] = append(byBrand[c.Brand], c)
		summary.ModelCount++

		if c.AvgPrice == nil {
			continue
		}
		price := *c.AvgPrice
		if summary.MinPriceUSD == nil || price < *summary.MinPriceUSD {
			summary.MinPriceUSD = models.Float(price)
		}
		if summary.MaxPriceUSD == nil || price > *summary.MaxPriceUSD {
			summary.MaxPriceUSD = models.Float(price)
		}
	}
	summary.BrandCount = len(byBrand)
	if summary.MinPriceUSD != nil {
		*summary.MinPriceUSD = round2(*summary.MinPriceUSD)
		*summary.MaxPriceUSD = round2(*summary.MaxPriceUSD)
	}

	groups := make([]models.BrandModels, 0, len(byBrand))
	for _, brand := range sortedKeys(byBrand) {
		groups = append(groups, models.BrandModels{Brand: brand, Models: Rank(byBrand[brand], nil)})
	}
	return summary, groups
}
