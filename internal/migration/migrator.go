package migration

import (
	"context"

	"algocat/internal/domain"
)

// Migrator brings a database schema up to date
type Migrator interface {
	Run(ctx context.Context) ([]domain.MigrationResult, error)
}
