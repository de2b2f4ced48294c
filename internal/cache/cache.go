// Package cache implements the persistent module export cache named
// in SPEC_FULL.md's Domain Stack: a cross-run record of each module's
// (name, arity) export set keyed by (module path, content hash). The
// compiler writes these records after each run and does not read them
// back, so an unchanged file is still retranslated in full.
//
// Adapted from the teacher's internal/ext/cache.go key-by-hash,
// lookup/store shape, but backed by modernc.org/sqlite rather than a
// binary blob on disk, since what's cached here is structured export
// data rather than an opaque build artifact.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache wraps a sqlite-backed export table.
type Cache struct {
	db *sql.DB
}

// Entry is one module's cached export set.
type Entry struct {
	Functions []NameArity
	Macros    []NameArity
}

type NameArity struct {
	Name  string
	Arity int
}

// Open opens (creating if necessary) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS module_exports (
	module_path TEXT NOT NULL,
	content_hash TEXT NOT NULL,
	exports_json TEXT NOT NULL,
	PRIMARY KEY (module_path, content_hash)
);
`

// ContentHash computes the cache key's content half from a source
// file's raw bytes.
func ContentHash(source []byte) string {
	sum := sha256.Sum256(source)
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached export set for modulePath at contentHash,
// or ok=false on a cache miss.
func (c *Cache) Lookup(modulePath, contentHash string) (Entry, bool, error) {
	row := c.db.QueryRow(
		`SELECT exports_json FROM module_exports WHERE module_path = ? AND content_hash = ?`,
		modulePath, contentHash,
	)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("cache: lookup %s: %w", modulePath, err)
	}
	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return Entry{}, false, fmt.Errorf("cache: decode %s: %w", modulePath, err)
	}
	return entry, true, nil
}

// Store records modulePath's export set under contentHash, replacing
// any entry already cached for that exact (path, hash) pair.
func (c *Cache) Store(modulePath, contentHash string, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", modulePath, err)
	}
	_, err = c.db.Exec(
		`INSERT OR REPLACE INTO module_exports (module_path, content_hash, exports_json) VALUES (?, ?, ?)`,
		modulePath, contentHash, string(raw),
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", modulePath, err)
	}
	return nil
}
