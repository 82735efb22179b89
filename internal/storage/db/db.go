package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akuhn/pt/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

var schema = map[string]string{
	DriverSQLite: `
		CREATE TABLE IF NOT EXISTS quiz_v2 (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference VARCHAR(8) NOT NULL,
			form_a TEXT NOT NULL,
			form_b TEXT NOT NULL,
			dir CHAR(2) NOT NULL,
			success BOOLEAN NOT NULL,
			answer TEXT,
			ts DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	DriverPostgres: `
		CREATE TABLE IF NOT EXISTS quiz_v2 (
			id BIGSERIAL PRIMARY KEY,
			reference VARCHAR(8) NOT NULL,
			form_a TEXT NOT NULL,
			form_b TEXT NOT NULL,
			dir CHAR(2) NOT NULL,
			success BOOLEAN NOT NULL,
			answer TEXT,
			ts TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,
}

// InitDB opens the attempt store and creates its table when missing.
func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	ddl, ok := schema[cfg.Driver]
	if !ok {
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	if cfg.Driver == DriverSQLite {
		if err := ensureDir(cfg.DSN); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed create schema: %w", err)
	}

	return db, nil
}

func ensureDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}
	return nil
}
