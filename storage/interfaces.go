package storage

import (
	"context"

	"review-advisor/models"
)

// SnapshotSource is the interface any snapshot backend must satisfy.
type SnapshotSource interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Close() error
}

// ReportWriter is the interface for exporting derived views.
type ReportWriter interface {
	WriteAdvisor(report *models.AdvisorReport) error
	WriteCards(runID, audience string, cards []models.RecommendationCard) error
	Close() error
}
