package db

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const ThemeKey = "theme"

// Open opens (creating if needed) the preference database at path.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

// GetPreference reports ok=false when the key was never written.
func GetPreference(db *sql.DB, key string) (value string, ok bool, err error) {
	err = db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func SetPreference(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		`INSERT INTO preferences(key, value, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key,
		value,
		time.Now().Unix(),
	)
	return err
}

// Prefs adapts the preference table to the theme store used by the UI.
type Prefs struct {
	DB *sql.DB
}

func (p Prefs) LoadTheme() (string, bool, error) {
	return GetPreference(p.DB, ThemeKey)
}

func (p Prefs) SaveTheme(theme string) error {
	return SetPreference(p.DB, ThemeKey, theme)
}
