package siteconf

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoSnapshot is returned when a store holds no rows for the requested profile.
var ErrNoSnapshot = errors.New("siteconf: no snapshot")

// Store is a SQLite snapshot of settings records, one row per key, for
// build tools that read their settings from a database file.
type Store struct {
	db *sql.DB
}

// OpenStore opens (or creates) the SQLite file at path, ensuring its
// directory exists and the schema is in place.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("siteconf: create store dir: %w", err)
		}
	}
	s, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSchema(); err != nil {
		s.Close()
		return nil, fmt.Errorf("siteconf: ensure schema: %w", err)
	}
	return s, nil
}

// openExisting opens a store file that must already exist. Nothing is
// created on disk, neither the file nor its directory nor the schema.
func openExisting(path string) (*Store, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return openDB(path)
}

func openDB(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("siteconf: open store: %w", err)
	}
	if _, err := db.Exec(`
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("siteconf: configure store: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS settings (
    profile TEXT NOT NULL,
    key TEXT NOT NULL,
    position INTEGER NOT NULL,
    value TEXT NOT NULL,
    PRIMARY KEY (profile, key)
);
`)
	return err
}

// Save replaces the snapshot for profile p with c.
func (s *Store) Save(p Profile, c SiteConfig) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM settings WHERE profile = ?`, string(p)); err != nil {
		return err
	}
	for i, st := range c.Settings() {
		value, err := json.Marshal(st.Value)
		if err != nil {
			return fmt.Errorf("siteconf: encode %s: %w", st.Key, err)
		}
		if _, err := tx.Exec(`INSERT INTO settings (profile, key, position, value) VALUES (?, ?, ?, ?)`,
			string(p), st.Key, i, string(value)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Load reads the snapshot for profile p back into a record.
func (s *Store) Load(p Profile) (SiteConfig, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings WHERE profile = ? ORDER BY position`, string(p))
	if err != nil {
		return SiteConfig{}, err
	}
	defer rows.Close()

	obj := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return SiteConfig{}, err
		}
		obj[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return SiteConfig{}, err
	}
	if len(obj) == 0 {
		return SiteConfig{}, fmt.Errorf("%w for profile %s", ErrNoSnapshot, p)
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return SiteConfig{}, err
	}
	return DecodeJSON(bytes.NewReader(b))
}

// Profiles lists the profiles present in the store, sorted by name.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query(`SELECT DISTINCT profile FROM settings ORDER BY profile`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, Profile(p))
	}
	return out, rows.Err()
}

// ExportSQLite writes c as profile p into the SQLite file at path.
func ExportSQLite(path string, p Profile, c SiteConfig) error {
	s, err := OpenStore(path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Save(p, c)
}

// ImportSQLite reads profile p from the existing SQLite file at path. A
// missing file is reported as such and left missing.
func ImportSQLite(path string, p Profile) (SiteConfig, error) {
	s, err := openExisting(path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("siteconf: import %s: %w", path, err)
	}
	defer s.Close()
	c, err := s.Load(p)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("siteconf: import %s: %w", path, err)
	}
	return c, nil
}
