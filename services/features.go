package services

import "review-advisor/models"

// DefaultFeatureKeys is the feature order shown on the advisor dashboard.
var DefaultFeatureKeys = []string{"camera", "battery", "display", "performance"}

// AggregateFeatures averages each feature across the pool, skipping
// candidates that did not measure it. Means are rounded to two decimals and
// a mean of exactly zero is dropped.
func AggregateFeatures(pool []models.CandidateMetric, featureKeys []string) []models.FeatureRating {
	out := make([]models.FeatureRating, 0, len(featureKeys))
	for _, key := range featureKeys {
		var sum float64
		n := 0
		for _, c := range pool {
			if v, ok := c.Feature(key); ok {
				sum += v
				n++
			}
		}
		if n == 0 {
			continue
		}

		mean := round2(sum / float64(n))
		if mean == 0 {
			continue
		}
		out = append(out, models.FeatureRating{Feature: key, Rating: mean})
	}
	return out
}
