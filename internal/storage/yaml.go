package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"algocat/internal/config"
	"algocat/internal/domain"
)

// YAMLStorage stores the report in a YAML file under the configured output path.
type YAMLStorage struct {
	cfg *config.Config
}

// NewYAMLStorage returns a Storage that reads/writes the config's output YAML path.
func NewYAMLStorage(cfg *config.Config) *YAMLStorage {
	return &YAMLStorage{cfg: cfg}
}

// Save writes the report to the configured YAML output file.
func (s *YAMLStorage) Save(report *domain.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return writeOutput(s.cfg.GetOutputPath(), data)
}

// Load reads the last report from the configured YAML output file.
func (s *YAMLStorage) Load() (*domain.Report, error) {
	data, err := os.ReadFile(s.cfg.GetOutputPath())
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var report domain.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &report, nil
}
