package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"review-advisor/models"
)

var csvHeader = []string{
	"run_id", "kind", "position", "brand", "model", "avg_rating", "avg_price_usd",
	"review_count", "title", "description", "priority",
}

// CSVWriter exports advisor reports and card lists to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteAdvisor writes one row per candidate pool entry, flagging the
// recommended prefix, then one row per feature rating.
func (c *CSVWriter) WriteAdvisor(r *models.AdvisorReport) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, m := range r.CandidatePool {
		kind := "candidate"
		if i < len(r.Recommended) {
			kind = "recommended"
		}
		row := []string{
			r.RunID, kind, strconv.Itoa(i + 1), m.Brand, m.Model,
			optional(m.AvgRating), optional(m.AvgPrice), strconv.Itoa(m.ReviewCount),
			"", "", "",
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	for i, f := range r.FeatureSummary {
		row := []string{
			r.RunID, "feature", strconv.Itoa(i + 1), "", "",
			strconv.FormatFloat(f.Rating, 'f', 2, 64), "", "",
			f.Feature, "", "",
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// WriteCards writes one row per card, tagged with the audience.
func (c *CSVWriter) WriteCards(runID, audience string, cards []models.RecommendationCard) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, card := range cards {
		row := []string{
			runID, audience + "_card", strconv.Itoa(i + 1), "", "", "", "", "",
			card.Title, card.Description, card.Priority.String(),
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
