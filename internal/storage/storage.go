// Package storage mirrors the profile and the append-only training log to a
// libsql database. It is an optional collaborator: every command works from
// the local state file alone when no database is configured.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// ErrNotConfigured means no database URL is set; callers treat the
// persistence collaborator as absent.
var ErrNotConfigured = errors.New("no database configured")

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the configured database. connectionString may come from
// the config file; TURSO_DATABASE_URL (optionally via .env) overrides it.
func NewStorage(connectionString string) (*Storage, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded .env")
	}

	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" {
		connectionString = url
	}
	if connectionString == "" {
		return nil, ErrNotConfigured
	}

	db, err := sql.Open("libsql", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := initializeDB(db); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func initializeDB(db *sql.DB) error {
	_, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS profiles (
            id TEXT PRIMARY KEY,
            height REAL NOT NULL,
            body_weight REAL NOT NULL,
            current_1rm REAL NOT NULL,
            sessions_per_week INTEGER NOT NULL,
            target_weeks INTEGER NOT NULL,
            start_date TEXT NOT NULL,
            target_date TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS training_logs (
            id TEXT PRIMARY KEY,
            date TEXT NOT NULL,
            current_1rm REAL NOT NULL,
            note TEXT
        );
    `)
	return err
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
