package history

import (
	"fmt"
	"strings"
)

// StoreConfig holds configuration for the history backend.
type StoreConfig struct {
	Backend string // "sqlite" or "postgres"
	DSN     string // File path for SQLite, connection string for Postgres
}

// DefaultSQLitePath is used when no DSN is configured for the sqlite backend.
const DefaultSQLitePath = ".phspbench.db"

// NewStore creates a Store based on the provided configuration.
func NewStore(config StoreConfig) (Store, error) {
	switch strings.ToLower(config.Backend) {
	case "postgres", "postgresql":
		if config.DSN == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.DSN)
	case "sqlite", "sqlite3", "":
		if config.DSN == "" {
			config.DSN = DefaultSQLitePath
		}
		return NewSQLiteStore(config.DSN)
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", config.Backend)
	}
}
