// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Collection names used by the server.
const (
	CollectionUsers = "users"
	CollectionGames = "games"
)

// ErrConflict is returned when an update loses the optimistic version race
// more times than the retry budget allows.
var ErrConflict = errors.New("collection version conflict")

const maxUpdateRetries = 5

// Store persists whole JSON collections in a single SQL table. Every
// collection is one document: reads load the full document, writes replace
// it. Update serializes read-modify-write cycles per collection with an
// in-process mutex and an optimistic version check, so concurrent
// transitions never drop each other's writes.
type Store struct {
	db *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open connects to the database. Supported drivers are "sqlite"
// (modernc.org/sqlite) and "postgres" (lib/pq); the same SQL works on both.
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{db: db, locks: make(map[string]*sync.Mutex)}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the raw handle for schema setup in tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

const schema = `
CREATE TABLE IF NOT EXISTS collection (
    name TEXT PRIMARY KEY,
    data TEXT NOT NULL,
    version BIGINT NOT NULL DEFAULT 0
);
`

// Init creates the schema and seeds the known collections with empty
// documents. Safe to call multiple times.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	for _, name := range []string{CollectionUsers, CollectionGames} {
		_, err := s.db.Exec(`
			INSERT INTO collection (name, data, version) VALUES ($1, '[]', 0)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			return fmt.Errorf("seed collection %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *Store) read(name string) ([]byte, int64, error) {
	var data string
	var version int64
	err := s.db.QueryRow(`
		SELECT data, version FROM collection WHERE name = $1
	`, name).Scan(&data, &version)
	if err == sql.ErrNoRows {
		return []byte("[]"), -1, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("load collection %s: %w", name, err)
	}
	return []byte(data), version, nil
}

func (s *Store) write(name string, data []byte, version int64) (bool, error) {
	if version < 0 {
		res, err := s.db.Exec(`
			INSERT INTO collection (name, data, version) VALUES ($1, $2, 0)
			ON CONFLICT (name) DO NOTHING
		`, name, string(data))
		if err != nil {
			return false, fmt.Errorf("insert collection %s: %w", name, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("insert collection %s: %w", name, err)
		}
		// A lost insert race rereads under the next attempt
		return n == 1, nil
	}
	res, err := s.db.Exec(`
		UPDATE collection SET data = $2, version = version + 1
		WHERE name = $1 AND version = $3
	`, name, string(data), version)
	if err != nil {
		return false, fmt.Errorf("save collection %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("save collection %s: %w", name, err)
	}
	return n == 1, nil
}

// Load decodes the named collection. A missing collection is an empty one.
func Load[T any](s *Store, name string) ([]T, error) {
	raw, _, err := s.read(name)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", name, err)
	}
	return items, nil
}

// Update runs one atomic read-modify-write cycle against the named
// collection. fn receives the current items and returns the replacement;
// any error from fn aborts the update and is returned unchanged, leaving
// the stored collection untouched. The optimistic version check retries a
// few times to cover writers outside this process.
func Update[T any](s *Store, name string, fn func(items []T) ([]T, error)) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	for attempt := 0; attempt < maxUpdateRetries; attempt++ {
		raw, version, err := s.read(name)
		if err != nil {
			return err
		}
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("decode collection %s: %w", name, err)
		}

		updated, err := fn(items)
		if err != nil {
			return err
		}

		out, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("encode collection %s: %w", name, err)
		}

		ok, err := s.write(name, out, version)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}
	return fmt.Errorf("update collection %s: %w", name, ErrConflict)
}
