package migration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"algocat/internal/config"
	"algocat/internal/logging"
)

// DatabaseManager opens the run history database
type DatabaseManager struct {
	config *config.Config
	logger *zap.Logger
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config, logger *zap.Logger) *DatabaseManager {
	return &DatabaseManager{config: cfg, logger: logging.OrNop(logger)}
}

// Open connects to the configured history database. A missing sqlite file
// or mysql database is created first.
func (dm *DatabaseManager) Open(ctx context.Context) (*sql.DB, error) {
	driver := dm.config.HistoryDriver
	dsn := dm.config.GetHistoryDSN()

	switch driver {
	case "sqlite":
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
				return nil, fmt.Errorf("create history dir: %w", err)
			}
		}
	case "mysql":
		if err := dm.ensureDatabase(ctx, dsn); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported history driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if driver == "sqlite" {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	dm.logger.Debug("history database opened", zap.String("driver", driver))
	return db, nil
}

// ensureDatabase creates the DSN's database on the mysql server if it does not exist
func (dm *DatabaseManager) ensureDatabase(ctx context.Context, dsn string) error {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return fmt.Errorf("parse mysql dsn: %w", err)
	}
	dbName := mc.DBName
	if dbName == "" {
		return nil
	}

	// Connect to the server without selecting a database
	mc.DBName = ""
	server, err := sql.Open("mysql", mc.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer server.Close()

	if err := server.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database server: %w", err)
	}

	exists, err := databaseExists(ctx, server, dbName)
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", dbName, err)
	}
	if exists {
		return nil
	}
	if err := createDatabase(ctx, server, dbName); err != nil {
		return fmt.Errorf("failed to create database %s: %w", dbName, err)
	}
	dm.logger.Info("history database created", zap.String("database", dbName))
	return nil
}

func databaseExists(ctx context.Context, db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRowContext(ctx, query, dbName).Scan(&exists)
	return exists, err
}

func createDatabase(ctx context.Context, db *sql.DB, dbName string) error {
	// Identifiers cannot be bound as parameters
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName))
	return err
}

// isValidDatabaseName accepts unquoted mysql identifiers up to 64 characters
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
		default:
			return false
		}
	}
	return true
}
