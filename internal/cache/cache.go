// Package cache stores fetched sheet payloads in a local sqlite file so
// separate CLI invocations share one TTL window instead of re-fetching
// the published export on every run.
package cache

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Cache struct {
	db *sql.DB
}

// Snapshot is one cached fetch of a published sheet export.
type Snapshot struct {
	URL       string
	Payload   []byte
	FetchedAt time.Time
	ExpiresAt time.Time
}

func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot cache: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping snapshot cache: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the snapshot for url if one exists and has not expired.
// An expired snapshot reads as not found; expiry is the only
// invalidation path.
func (c *Cache) Get(url string) (Snapshot, bool, error) {
	var snap Snapshot
	var fetchedRaw, expiresRaw string
	err := c.db.QueryRow(`
SELECT url, payload, fetched_at, expires_at
FROM sheet_snapshots
WHERE url = ?
`, url).Scan(&snap.URL, &snap.Payload, &fetchedRaw, &expiresRaw)
	if err == sql.ErrNoRows {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("lookup snapshot: %w", err)
	}
	snap.FetchedAt, err = time.Parse(time.RFC3339, fetchedRaw)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("parse snapshot fetched_at: %w", err)
	}
	snap.ExpiresAt, err = time.Parse(time.RFC3339, expiresRaw)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("parse snapshot expiry: %w", err)
	}
	if time.Now().After(snap.ExpiresAt) {
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

// Put records a fetch of url, replacing any prior snapshot for it.
func (c *Cache) Put(url string, payload []byte, fetchedAt time.Time, ttl time.Duration) error {
	_, err := c.db.Exec(`
INSERT INTO sheet_snapshots(url, payload, fetched_at, expires_at)
VALUES(?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
  payload=excluded.payload,
  fetched_at=excluded.fetched_at,
  expires_at=excluded.expires_at
`, url, payload, fetchedAt.Format(time.RFC3339), fetchedAt.Add(ttl).Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
