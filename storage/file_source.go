package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"review-advisor/models"
)

// FileSource reads a snapshot exported by the aggregation backend. Files
// ending in .yaml or .yml are decoded as YAML, everything else as JSON.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the snapshot file.
func (f *FileSource) Load(ctx context.Context) (*models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("file: read %q: %w", f.path, err)
	}
	return decodeSnapshot(data, filepath.Ext(f.path))
}

func (f *FileSource) Close() error {
	return nil
}

func decodeSnapshot(data []byte, ext string) (*models.Snapshot, error) {
	var snap models.Snapshot
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("file: decode yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("file: decode json: %w", err)
		}
	}
	return &snap, nil
}
