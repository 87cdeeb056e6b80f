package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-advisor/models"
)

func assertTiers(t *testing.T, cards []models.RecommendationCard, max int) {
	t.Helper()
	require.NotEmpty(t, cards)
	require.LessOrEqual(t, len(cards), max)
	for i, c := range cards {
		assert.Equal(t, models.PriorityTiers[i], c.Priority, "card %d (%s)", i, c.Title)
	}
}

func TestBuyerCardsAllBrands(t *testing.T) {
	cards := BuyerCards(buyerSnapshot(), models.Scope{})

	assert.Equal(t, []string{
		"Top pick: Apple iPhone 15",
		"Standout feature: Camera",
		"Benchmark brand: Samsung",
		"Secondary option: Samsung Galaxy S24",
	}, titles(cards))
	assertTiers(t, cards, MaxBuyerCards)

	assert.Contains(t, cards[0].Description, "82.0% positive")
	assert.Contains(t, cards[0].Description, "4.50/5")
	assert.Contains(t, cards[1].Description, "140 mentions")
}

func TestBuyerCardsSingleBrandUsesSegmentSummary(t *testing.T) {
	cards := BuyerCards(buyerSnapshot(), models.Scope{Brand: "Samsung"})

	assert.Equal(t, []string{
		"Top pick: Samsung Galaxy S24",
		"Brand health: Samsung",
		"Secondary option: Samsung Galaxy A55",
	}, titles(cards))
	assert.Contains(t, cards[1].Description, "530 reviews")
	assertTiers(t, cards, MaxBuyerCards)
}

func TestBuyerCardsBrandHealthFallsBackToBrandAnalysis(t *testing.T) {
	cards := BuyerCards(buyerSnapshot(), models.Scope{Brand: "Apple"})

	assert.Equal(t, []string{
		"Top pick: Apple iPhone 15",
		"Standout feature: Camera",
		"Brand health: Apple",
	}, titles(cards))
	assert.Contains(t, cards[2].Description, "340 reviews")
}

func TestBuyerCardsUnratedModelsRankLast(t *testing.T) {
	snap := &models.Snapshot{Buyer: models.BuyerInsights{ModelAnalysis: []models.CandidateMetric{
		{Brand: "Google", Model: "Pixel 8", PositivePct: 99},
		{Brand: "Nokia", Model: "G42", PositivePct: 40, AvgRating: f(3.1)},
	}}}

	cards := BuyerCards(snap, models.Scope{})
	assert.Equal(t, []string{"Top pick: Nokia G42", "Secondary option: Google Pixel 8"}, titles(cards))
}

func TestBuyerCardsLeaderboardFallback(t *testing.T) {
	pixel := models.CandidateMetric{Brand: "Google", Model: "Pixel 8", PositivePct: 70, AvgRating: f(4.2)}
	iphone := models.CandidateMetric{Brand: "Apple", Model: "iPhone 15", PositivePct: 82, AvgRating: f(4.5)}

	snap := &models.Snapshot{Buyer: models.BuyerInsights{
		ModelAnalysis: []models.CandidateMetric{pixel, iphone},
		BrandSegments: map[string]models.BrandSegment{
			"Google": {TopModels: []models.CandidateMetric{pixel, iphone}},
		},
	}}

	cards := BuyerCards(snap, models.Scope{Brand: "Google"})
	assert.Equal(t, []string{"Top pick: Google Pixel 8", "Secondary option: Apple iPhone 15"}, titles(cards))
}

func TestBuyerCardsLeaderboardFallbackSkipsUnmatched(t *testing.T) {
	pixel := models.CandidateMetric{Brand: "Google", Model: "Pixel 8", PositivePct: 70, AvgRating: f(4.2)}
	pixel7a := models.CandidateMetric{Brand: "Google", Model: "Pixel 7a", PositivePct: 65, AvgRating: f(4.0)}

	snap := &models.Snapshot{Buyer: models.BuyerInsights{
		ModelAnalysis: []models.CandidateMetric{pixel},
		BrandSegments: map[string]models.BrandSegment{
			"Google": {TopModels: []models.CandidateMetric{pixel, pixel7a}},
		},
	}}

	cards := BuyerCards(snap, models.Scope{Brand: "Google"})
	assert.Equal(t, []string{"Top pick: Google Pixel 8"}, titles(cards))
}

func TestBuyerCardsLeaderboardFallbackUsesScoreOrder(t *testing.T) {
	pixel := models.CandidateMetric{Brand: "Google", Model: "Pixel 8", PositivePct: 70, AvgRating: f(4.2), Score: f(9)}
	pixel7a := models.CandidateMetric{Brand: "Google", Model: "Pixel 7a", Score: f(6)}
	iphone := models.CandidateMetric{Brand: "Apple", Model: "iPhone 15", PositivePct: 82, AvgRating: f(4.5), Score: f(8)}

	snap := &models.Snapshot{Buyer: models.BuyerInsights{
		ModelAnalysis: []models.CandidateMetric{pixel, iphone},
		BrandSegments: map[string]models.BrandSegment{
			"Google": {TopModels: []models.CandidateMetric{pixel, pixel7a, iphone}},
		},
	}}

	cards := BuyerCards(snap, models.Scope{Brand: "Google"})
	assert.Equal(t, []string{"Top pick: Google Pixel 8", "Secondary option: Apple iPhone 15"}, titles(cards))
}

func TestScopedLeaderboard(t *testing.T) {
	snap := buyerSnapshot()
	snap.Buyer.TopModels[0].Score = f(7.5)
	snap.Buyer.TopModels[1].Score = f(8.9)

	assert.Equal(t, []string{"Samsung Galaxy S24", "Apple iPhone 15"}, names(ScopedLeaderboard(snap, models.Scope{})))
	assert.Equal(t, []string{"Apple iPhone 15"}, names(ScopedLeaderboard(snap, models.Scope{Brand: "apple"})))
	assert.NotNil(t, ScopedLeaderboard(nil, models.Scope{}))
}

func TestBuyerCardsInsufficientData(t *testing.T) {
	snap := &models.Snapshot{Buyer: models.BuyerInsights{
		TopModels: []models.CandidateMetric{
			{Brand: "Apple", Model: "iPhone 15"},
			{Brand: "Samsung", Model: "Galaxy S24"},
		},
	}}

	for _, s := range []*models.Snapshot{snap, {}, nil} {
		cards := BuyerCards(s, models.Scope{})
		require.Len(t, cards, 1)
		assert.Equal(t, "Insufficient data", cards[0].Title)
		assert.Equal(t, models.PriorityCritical, cards[0].Priority)
	}
}

func TestSupplierCardsComplaints(t *testing.T) {
	cards := SupplierCards(supplierSnapshot(), models.Scope{Brand: "Samsung"})

	assert.Equal(t, []string{
		"Sentiment pulse: Samsung",
		"Urgent fix: Battery",
		"Stabilize: Heating",
	}, titles(cards))
	assertTiers(t, cards, MaxSupplierCards)
	assert.Contains(t, cards[0].Description, "1200 reviews")
	assert.Contains(t, cards[1].Description, "120 complaints")
}

func TestSupplierCardsScopeIsCaseInsensitive(t *testing.T) {
	upper := SupplierCards(supplierSnapshot(), models.Scope{Brand: "Samsung"})
	lower := SupplierCards(supplierSnapshot(), models.Scope{Brand: "samsung"})
	assert.Equal(t, titles(upper), titles(lower))
	assert.Equal(t, "Sentiment pulse: Samsung", lower[0].Title)
}

func TestBuyerCardsScopeIsCaseInsensitive(t *testing.T) {
	upper := BuyerCards(buyerSnapshot(), models.Scope{Brand: "Samsung"})
	lower := BuyerCards(buyerSnapshot(), models.Scope{Brand: "sAMSUNG"})
	assert.Equal(t, titles(upper), titles(lower))
	assert.Contains(t, titles(lower), "Brand health: Samsung")

	// brand-analysis fallback keeps the snapshot spelling too
	assert.Contains(t, titles(BuyerCards(buyerSnapshot(), models.Scope{Brand: "apple"})), "Brand health: Apple")
}

func TestBuyerCardsBrandHealthShowsHealthScore(t *testing.T) {
	snap := buyerSnapshot()
	seg := snap.Buyer.BrandSegments["Samsung"]
	seg.Summary.HealthScore = f(7.8)

	cards := BuyerCards(snap, models.Scope{Brand: "Samsung"})
	require.Equal(t, "Brand health: Samsung", cards[1].Title)
	assert.Contains(t, cards[1].Description, "Health score 7.8.")
}

func TestSupplierCardsSummaryOnlyFillsWithDelight(t *testing.T) {
	snap := &models.Snapshot{Supplier: models.SupplierInsights{
		BrandInsights: map[string]models.BrandInsight{
			"Sony": {Summary: &models.BrandSummary{TotalReviews: 40, PositivePct: 55, NegativePct: 20}},
		},
	}}

	cards := SupplierCards(snap, models.Scope{Brand: "Sony"})
	assert.Equal(t, []string{
		"Sentiment pulse: Sony",
		"Customer delight initiative",
		"Customer delight initiative",
	}, titles(cards))
	assert.Contains(t, cards[0].Description, "unrated")
	assertTiers(t, cards, MaxSupplierCards)
}

func TestSupplierCardsRedesignOrdering(t *testing.T) {
	snap := &models.Snapshot{Supplier: models.SupplierInsights{
		BrandInsights: map[string]models.BrandInsight{
			"Samsung": {
				Summary: &models.BrandSummary{TotalReviews: 100},
				FeatureSentiments: []models.FeatureSentimentBreakdown{
					{Feature: "display", Positive: 50, Neutral: 10, Negative: 5},
					{Feature: "battery", Positive: 20, Neutral: 5, Negative: 40},
					{Feature: "camera"},
					{Feature: "heating", Positive: 5, Negative: 20},
				},
			},
		},
	}}

	cards := SupplierCards(snap, models.Scope{Brand: "Samsung"})
	assert.Equal(t, []string{
		"Sentiment pulse: Samsung",
		"Redesign: Heating",
		"Redesign: Battery",
	}, titles(cards))
	assert.Contains(t, cards[1].Description, "80.0% of 25 heating mentions")
}

func TestSupplierCardsRedesignTieBreaksOnNegativeCount(t *testing.T) {
	snap := &models.Snapshot{Supplier: models.SupplierInsights{
		BrandInsights: map[string]models.BrandInsight{
			"Samsung": {
				Summary: &models.BrandSummary{TotalReviews: 10},
				FeatureSentiments: []models.FeatureSentimentBreakdown{
					{Feature: "audio", Positive: 1, Negative: 1},
					{Feature: "speaker", Positive: 2, Negative: 2},
				},
			},
		},
	}}

	cards := SupplierCards(snap, models.Scope{Brand: "Samsung"})
	assert.Equal(t, []string{"Sentiment pulse: Samsung", "Redesign: Speaker", "Redesign: Audio"}, titles(cards))
}

func TestSupplierCardsModelRecovery(t *testing.T) {
	snap := &models.Snapshot{Supplier: models.SupplierInsights{
		BrandInsights: map[string]models.BrandInsight{
			"Samsung": {Summary: &models.BrandSummary{TotalReviews: 300}},
		},
		ModelBreakdown: map[string][]models.CandidateMetric{
			"Samsung": {
				{Model: "Galaxy S24", NegativePct: 12},
				{Model: "Galaxy A55", NegativePct: 25},
				{Model: "Galaxy Z Flip", NegativePct: 25},
			},
		},
	}}

	cards := SupplierCards(snap, models.Scope{Brand: "Samsung"})
	assert.Equal(t, []string{
		"Sentiment pulse: Samsung",
		"Model recovery: Galaxy A55",
		"Customer delight initiative",
	}, titles(cards))
}

func TestSupplierCardsModelRecoveryNeedsNegativeFeedback(t *testing.T) {
	snap := &models.Snapshot{Supplier: models.SupplierInsights{
		BrandInsights: map[string]models.BrandInsight{
			"Samsung": {Summary: &models.BrandSummary{TotalReviews: 300}},
		},
		ModelBreakdown: map[string][]models.CandidateMetric{
			"Samsung": {{Model: "Galaxy S24"}},
		},
	}}

	cards := SupplierCards(snap, models.Scope{Brand: "Samsung"})
	assert.NotContains(t, titles(cards), "Model recovery: Galaxy S24")
	assert.Len(t, cards, MaxSupplierCards)
}

func TestSupplierCardsPortfolioView(t *testing.T) {
	snap := &models.Snapshot{Supplier: models.SupplierInsights{
		ComplaintVolume: []models.ComplaintMetric{
			{Feature: "battery", Count: 300},
			{Feature: "camera", Count: 0},
			{Feature: "heating", Count: 120},
		},
		Recommendations: []string{"Audit the battery supply chain.", "  "},
	}}

	cards := SupplierCards(snap, models.Scope{})
	assert.Equal(t, []string{
		"Portfolio hotspot: Battery",
		"Portfolio hotspot: Heating",
		"Recommended action",
	}, titles(cards))
	assert.Equal(t, "Audit the battery supply chain.", cards[2].Description)
	assertTiers(t, cards, MaxSupplierCards)
}

func TestSupplierCardsFreeTextCappedAtThree(t *testing.T) {
	snap := &models.Snapshot{Supplier: models.SupplierInsights{
		Recommendations: []string{"one", "two", "three", "four"},
	}}

	cards := SupplierCards(snap, models.Scope{})
	require.Len(t, cards, 3)
	assert.Equal(t, "three", cards[2].Description)
}

func TestSupplierCardsMonitorFallback(t *testing.T) {
	for _, snap := range []*models.Snapshot{nil, {}} {
		cards := SupplierCards(snap, models.Scope{})
		require.Len(t, cards, 1)
		assert.Equal(t, "Monitor customer signals", cards[0].Title)
	}
}

func TestSupplierCardsBrandWithoutSummaryUsesPortfolio(t *testing.T) {
	snap := supplierSnapshot()
	snap.Supplier.BrandInsights["Apple"] = models.BrandInsight{
		ComplaintVolume: []models.ComplaintMetric{{Feature: "price", Count: 90}},
	}

	cards := SupplierCards(snap, models.Scope{Brand: "Apple"})
	assert.Equal(t, []string{"Portfolio hotspot: Battery"}, titles(cards))
}
