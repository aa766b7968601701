// Package store writes derived projections into a SQLite snapshot file so
// other tools can query them. The snapshot is a write-only output artifact;
// the analysis pipeline never reads it back.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS Event (
  timestamp TEXT,
  artist TEXT,
  track TEXT,
  album TEXT,
  duration_ms INTEGER
);

CREATE TABLE IF NOT EXISTS Daily (
  date TEXT PRIMARY KEY,
  minutes_listened INTEGER,
  tracks_played INTEGER,
  unique_artists INTEGER
);

CREATE TABLE IF NOT EXISTS ArtistTotal (
  artist TEXT PRIMARY KEY,
  total_minutes INTEGER,
  play_count INTEGER
);

CREATE TABLE IF NOT EXISTS HourlyProfile (
  hour INTEGER,
  artist TEXT,
  minutes INTEGER,
  PRIMARY KEY (hour, artist)
);

CREATE TABLE IF NOT EXISTS Session (
  id INTEGER PRIMARY KEY,
  start_time TEXT,
  end_time TEXT,
  duration_minutes INTEGER,
  tracks_count INTEGER
);
`

// New opens (or creates) a snapshot database and ensures the schema.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating tables: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// withTx clears a table and runs inserts in a single transaction, so a
// re-export fully replaces the previous snapshot contents.
func (s *Store) withTx(table string, insert func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
