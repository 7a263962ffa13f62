package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"algocat/internal/config"
	"algocat/internal/domain"
)

// Storage persists and loads the last run's report (e.g. for the faills viewer).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.Report, error)
}

// New returns the Storage matching the configured output format
func New(cfg *config.Config) (Storage, error) {
	switch cfg.OutputFormat {
	case "json":
		return NewJSONStorage(cfg), nil
	case "yaml":
		return NewYAMLStorage(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", cfg.OutputFormat)
	}
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
