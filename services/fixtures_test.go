package services

import "review-advisor/models"

var f = models.Float

func phone(brand, model string, rating, price *float64) models.CandidateMetric {
	return models.CandidateMetric{Brand: brand, Model: model, ReviewCount: 100, AvgRating: rating, AvgPrice: price}
}

// advisorPool has five priced and rated models plus two ineligible ones.
func advisorPool() []models.CandidateMetric {
	s24 := phone("Samsung", "Galaxy S24", f(4.6), f(720))
	s24.Features = map[string]*float64{"camera": f(4.6), "battery": nil, "performance": f(0)}

	iphone := phone("Apple", "iPhone 15", f(4.6), f(650))
	iphone.Features = map[string]*float64{"camera": f(4.8), "battery": f(4.1), "performance": f(0)}

	pixel := phone("Google", "Pixel 8", f(4.4), f(480))
	pixel.Features = map[string]*float64{"camera": f(4.7), "battery": f(4.3), "performance": f(0)}

	return []models.CandidateMetric{
		s24,
		iphone,
		pixel,
		phone("OnePlus", "12", f(4.7), f(1000)),
		phone("Xiaomi", "Redmi Note 13", f(4.2), f(250)),
		phone("Nokia", "G42", nil, f(200)),
		phone("Motorola", "Edge 40", f(4.0), nil),
	}
}

func buyerSnapshot() *models.Snapshot {
	iphone := models.CandidateMetric{Brand: "Apple", Model: "iPhone 15", ReviewCount: 340, PositivePct: 82, AvgRating: f(4.5),
		StrongestFeatures: []models.FeatureScore{{Feature: "camera", PositivePct: 91.2, Mentions: 140}}}
	s24 := models.CandidateMetric{Brand: "Samsung", Model: "Galaxy S24", ReviewCount: 410, PositivePct: 78, AvgRating: f(4.6)}
	pixel := models.CandidateMetric{Brand: "Google", Model: "Pixel 8", ReviewCount: 90, PositivePct: 80}
	a55 := models.CandidateMetric{Brand: "Samsung", Model: "Galaxy A55", ReviewCount: 120, PositivePct: 60, AvgRating: f(4.0)}

	return &models.Snapshot{
		Buyer: models.BuyerInsights{
			ModelAnalysis: []models.CandidateMetric{s24, pixel, iphone, a55},
			BrandAnalysis: []models.CandidateMetric{
				{Brand: "Samsung", ReviewCount: 530, PositivePct: 74.5, AvgRating: f(4.4)},
				{Brand: "Apple", ReviewCount: 340, PositivePct: 82, AvgRating: f(4.5)},
			},
			TopModels: []models.CandidateMetric{iphone, s24},
			BrandSegments: map[string]models.BrandSegment{
				"Samsung": {Summary: &models.BrandSummary{Brand: "Samsung", TotalReviews: 530, PositivePct: 74.5, NegativePct: 11.2, AvgRating: f(4.4)}},
			},
		},
	}
}

func supplierSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Supplier: models.SupplierInsights{
			BrandInsights: map[string]models.BrandInsight{
				"Samsung": {
					Summary: &models.BrandSummary{Brand: "Samsung", TotalReviews: 1200, PositivePct: 70, NegativePct: 18, AvgRating: f(4.3)},
					ComplaintVolume: []models.ComplaintMetric{
						{Feature: "battery", Count: 120},
						{Feature: "heating", Count: 45},
						{Feature: "camera", Count: 0},
					},
					FeatureSentiments: []models.FeatureSentimentBreakdown{
						{Feature: "display", Positive: 50, Neutral: 10, Negative: 5},
						{Feature: "battery", Positive: 20, Neutral: 5, Negative: 40},
					},
				},
			},
			ComplaintVolume: []models.ComplaintMetric{{Feature: "battery", Count: 300}},
		},
	}
}

func titles(cards []models.RecommendationCard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Title
	}
	return out
}

func names(pool []models.CandidateMetric) []string {
	out := make([]string, len(pool))
	for i, c := range pool {
		out[i] = c.DisplayName()
	}
	return out
}
