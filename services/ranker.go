package services

import (
	"math"
	"sort"

	"review-advisor/models"
)

const (
	epsilon = 1e-6
	// RecommendedCount is the size of the "recommended" prefix.
	RecommendedCount = 3
)

// Rank orders pool by rating (desc), distance to budget (asc, when a budget
// is set) and price (asc, unknown last). The sort is stable, so fully tied
// candidates keep their snapshot order. pool is not modified.
func Rank(pool []models.CandidateMetric, budget *float64) []models.CandidateMetric {
	ranked := make([]models.CandidateMetric, len(pool))
	copy(ranked, pool)

	sort.SliceStable(ranked, func(i, j int) bool {
		return compareCandidates(ranked[i], ranked[j], budget) < 0
	})
	return ranked
}

// Recommended returns the first RecommendedCount entries of a ranked pool.
func Recommended(ranked []models.CandidateMetric) []models.CandidateMetric {
	n := len(ranked)
	if n > RecommendedCount {
		n = RecommendedCount
	}
	return ranked[:n:n]
}

// RankLeaderboard orders entries by their composite score, highest first.
// There is no secondary key; entries without a score go last.
func RankLeaderboard(entries []models.CandidateMetric) []models.CandidateMetric {
	ranked := make([]models.CandidateMetric, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return compareOptional(ranked[i].Score, ranked[j].Score, true) < 0
	})
	return ranked
}

// compareCandidates returns <0 when a ranks before b.
func compareCandidates(a, b models.CandidateMetric, budget *float64) int {
	if c := compareOptional(a.AvgRating, b.AvgRating, true); c != 0 {
		return c
	}

	if hasBudget(budget) {
		if c := compareFloat(budgetDistance(a, *budget), budgetDistance(b, *budget)); c != 0 {
			return c
		}
	}

	return compareOptional(a.AvgPrice, b.AvgPrice, false)
}

// budgetDistance treats an unknown price as sitting exactly on budget.
func budgetDistance(c models.CandidateMetric, budget float64) float64 {
	if c.AvgPrice == nil {
		return 0
	}
	return math.Abs(*c.AvgPrice - budget)
}

// compareOptional orders known values before unknown ones, descending when
// desc is set and ascending otherwise.
func compareOptional(a, b *float64, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	if desc {
		return compareFloat(*b, *a)
	}
	return compareFloat(*a, *b)
}

// compareFloat treats values within epsilon as equal.
func compareFloat(a, b float64) int {
	switch {
	case a < b-epsilon:
		return -1
	case a > b+epsilon:
		return 1
	default:
		return 0
	}
}
