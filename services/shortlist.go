package services

import (
	"math"

	"review-advisor/models"
)

const (
	// minShortlist is the smallest tolerance-filtered pool that replaces the
	// full eligible pool.
	minShortlist   = 3
	toleranceRatio = 0.25
	minTolerance   = 100.0
)

// BudgetTolerance is the allowed distance from budget, in price units.
func BudgetTolerance(budget float64) float64 {
	return math.Max(budget*toleranceRatio, minTolerance)
}

// Select narrows pool to the candidates worth ranking for a budget.
//
// Entries outside scope, or missing either price or rating, are dropped. With
// a budget, candidates within BudgetTolerance of it form the pool when there
// are at least three of them; otherwise the whole eligible pool is kept.
// Input order is preserved.
func Select(pool []models.CandidateMetric, budget *float64, scope models.Scope) []models.CandidateMetric {
	eligible := make([]models.CandidateMetric, 0, len(pool))
	for _, c := range pool {
		if !scope.Matches(c.Brand) {
			continue
		}
		if c.AvgPrice == nil || c.AvgRating == nil {
			continue
		}
		eligible = append(eligible, c)
	}

	if len(eligible) == 0 || !hasBudget(budget) {
		return eligible
	}

	tolerance := BudgetTolerance(*budget)
	near := make([]models.CandidateMetric, 0, len(eligible))
	for _, c := range eligible {
		if math.Abs(*c.AvgPrice-*budget) <= tolerance {
			near = append(near, c)
		}
	}

	if len(near) >= minShortlist {
		return near
	}
	return eligible
}

func hasBudget(budget *float64) bool {
	return budget != nil && *budget > 0
}
