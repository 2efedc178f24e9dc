// Package storage reads word lists from a SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database is opened read-only: the game never writes anything.
//
// Expected schema:
//
//	CREATE TABLE words (
//		word     TEXT NOT NULL,
//		category TEXT NOT NULL DEFAULT ''
//	);
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages a read-only SQLite connection.
type Store struct {
	db *sql.DB
}

// OpenReadOnly opens an existing SQLite database at the given path.
// Unlike a writable open it never creates the file.
func OpenReadOnly(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("storage: cannot open database %s: %w", dbPath, err)
	}

	dsn := "file:" + (&url.URL{Path: dbPath}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Words returns the words of a category in insertion order.
// An empty category returns every word.
func (s *Store) Words(ctx context.Context, category string) ([]string, error) {
	query := "SELECT word FROM words ORDER BY rowid"
	args := []any{}
	if category != "" {
		query = "SELECT word FROM words WHERE category = ? ORDER BY rowid"
		args = append(args, category)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return words, nil
}

// CategoryCount is the number of words in one category.
type CategoryCount struct {
	Category string
	Words    int
}

// Categories lists the categories present in the database.
func (s *Store) Categories(ctx context.Context) ([]CategoryCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*)
		 FROM words
		 GROUP BY category
		 ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query categories: %w", err)
	}
	defer rows.Close()

	var result []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Words); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
