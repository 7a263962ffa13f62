package domain

// MigrationResult represents the result of applying one schema migration
type MigrationResult struct {
	Version int
	Name    string
	Applied bool // False when the migration was already recorded
	Error   error
}
