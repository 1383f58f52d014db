package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path     string
	ReadOnly bool
}

// DSN builds the modernc sqlite connection string. Read-only sources use a
// file: URI, so the path is percent-escaped.
func (c Config) DSN() string {
	if !c.ReadOnly {
		return c.Path
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Add("_pragma", "query_only(1)")
	u := url.URL{
		Scheme:   "file",
		Path:     filepath.ToSlash(c.Path),
		OmitHost: true,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// Open opens the database and verifies the connection
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", cfg.Path, err)
	}

	log.WithFields(log.Fields{
		"path":      cfg.Path,
		"read_only": cfg.ReadOnly,
	}).Debug("Database opened")
	return db, nil
}
