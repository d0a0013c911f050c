// internal/words/sqlite.go
//
// SQLite-backed dictionary for large word lists.
// Responsibilities:
//   - Opening the word database with safe defaults (WAL, busy timeout).
//   - Bootstrapping the words table.
//   - Bulk-importing word list files inside one transaction.
//   - Membership lookups for the generator.
//
// The database is a dictionary cache, not game state: generation itself
// never writes to it.

package words

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a sqlite-backed dictionary. It satisfies the same membership
// contract as Set while keeping the word list out of process memory.
type DB struct {
	sql *sql.DB
}

// OpenDB opens (and creates if missing) a word database file and ensures
// the words table exists.
func OpenDB(path string) (*DB, error) {
	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS words (word TEXT PRIMARY KEY);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create words table: %w", err)
	}
	return &DB{sql: db}, nil
}

// Close releases the underlying database handle.
func (d *DB) Close() error { return d.sql.Close() }

// Contains reports whether w is in the word table.
func (d *DB) Contains(w string) bool {
	var one int
	err := d.sql.QueryRow(`SELECT 1 FROM words WHERE word=?`, strings.ToLower(w)).Scan(&one)
	return err == nil
}

// Count returns the number of stored words.
func (d *DB) Count() (int, error) {
	var n int
	err := d.sql.QueryRow(`SELECT COUNT(1) FROM words`).Scan(&n)
	return n, err
}

// Import loads a word list file into the database. Words are normalized the
// same way as file-backed sets; when length > 0, other lengths are skipped.
// Existing rows are kept (INSERT OR IGNORE), so imports are idempotent.
// Returns the number of rows written.
func (d *DB) Import(path string, length int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	tx, err := d.sql.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT OR IGNORE INTO words(word) VALUES (?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w := normalize(line, length)
		if w == "" {
			continue
		}
		res, err := stmt.Exec(w)
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if rows, _ := res.RowsAffected(); rows > 0 {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return n, nil
}
